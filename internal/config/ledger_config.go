package config

import (
	"encoding/hex"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ethereum/go-ethereum/common"
)

type LedgerConfig struct {
	RpcUrl          string         `yaml:"rpc-url"`
	ContractAddress common.Address `yaml:"contract-address"`
	ChainId         int64          `yaml:"chain-id"`
	RelayerKey      []byte         `yaml:"relayer-key"`
	TimeoutSeconds  uint32         `yaml:"timeout-seconds"`
	GasLimit        uint64         `yaml:"gas-limit"`
}

func (l *LedgerConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		RpcUrl          string `yaml:"rpc-url"`
		ContractAddress string `yaml:"contract-address"`
		ChainId         int64  `yaml:"chain-id"`
		RelayerKey      string `yaml:"relayer-key"`
		TimeoutSeconds  uint32 `yaml:"timeout-seconds"`
		GasLimit        uint64 `yaml:"gas-limit"`
	}

	if err := unmarshal(&raw); err != nil {
		return err
	}

	if !common.IsHexAddress(raw.ContractAddress) {
		return &yaml.TypeError{Errors: []string{"invalid contract address: " + raw.ContractAddress}}
	}

	relayerKey, err := hex.DecodeString(strings.TrimPrefix(raw.RelayerKey, "0x"))
	if err != nil {
		return &yaml.TypeError{Errors: []string{"invalid relayer key: " + err.Error()}}
	}

	l.RpcUrl = raw.RpcUrl
	l.ContractAddress = common.HexToAddress(raw.ContractAddress)
	l.ChainId = raw.ChainId
	l.RelayerKey = relayerKey
	l.TimeoutSeconds = raw.TimeoutSeconds
	l.GasLimit = raw.GasLimit

	return nil
}
