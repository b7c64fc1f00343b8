package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	DatabaseConfig  DatabaseConfig  `yaml:"database"`
	LedgerConfig    LedgerConfig    `yaml:"ledger"`
	AdminConfig     AdminConfig     `yaml:"admin"`
	ApiConfig       ApiConfig       `yaml:"api"`
	RateLimitConfig RateLimitConfig `yaml:"rate-limit"`
}

type DatabaseConfig struct {
	File string `yaml:"file"`
}

type ApiConfig struct {
	Port uint16 `yaml:"port"`
}

type RateLimitConfig struct {
	WindowSeconds uint32 `yaml:"window-seconds"`
	MaxRequests   int    `yaml:"max-requests"`
}

var GlobalConfig *Config = nil

func InitializeGlobalConfig(path string) error {
	if GlobalConfig != nil {
		return nil
	}

	var err error
	GlobalConfig, err = LoadConfigFile(path)

	return err
}

func LoadConfigFile(path string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)

	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}
