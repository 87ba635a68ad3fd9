package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Store  Store  `yaml:"store"`
	Cache  Cache  `yaml:"cache"`
}

type Server struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

type Store struct {
	// Driver selects the authoritative store: "mysql" or "postgres".
	Driver   string `yaml:"driver"`
	MySQL    string `yaml:"mysql"`
	Postgres string `yaml:"postgres"`
}

type Cache struct {
	Enabled   bool   `yaml:"enabled"`
	RedisAddr string `yaml:"redis_addr"`

	// WarmProducts lists product ids whose stock counts are pushed into the
	// cache at startup; anything else passes through to the store.
	WarmProducts []int64 `yaml:"warm_products"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	if config.Store.Driver != "mysql" && config.Store.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported store driver: %q", config.Store.Driver)
	}

	return config, nil
}
