package config

import (
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ethereum/go-ethereum/common"
)

// AdminConfig is the administrator allow-list. Every admin action must carry a
// verified signature whose recovered address appears here, there is no bypass.
type AdminConfig struct {
	Addresses []common.Address `yaml:"addresses"`
}

func (a *AdminConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Addresses []string `yaml:"addresses"`
	}

	if err := unmarshal(&raw); err != nil {
		return err
	}

	addresses := make([]common.Address, 0, len(raw.Addresses))
	for _, address := range raw.Addresses {
		if !common.IsHexAddress(address) {
			return &yaml.TypeError{Errors: []string{"invalid admin address: " + address}}
		}

		addresses = append(addresses, common.HexToAddress(address))
	}

	a.Addresses = addresses
	return nil
}

func (a *AdminConfig) IsAdmin(address string) bool {
	for _, admin := range a.Addresses {
		if strings.EqualFold(admin.Hex(), address) {
			return true
		}
	}

	return false
}
