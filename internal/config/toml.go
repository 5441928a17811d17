package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

func fromTomlFile(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown field %q", undec[0].String())
	}

	return &cfg, nil
}

func searchTomlFile(customPath string, lookupPaths []string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("no such file: %s", customPath)
		}
		return customPath, nil
	}

	for _, p := range lookupPaths {
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err == nil { // Path exists
			return p, nil
		}
	}

	// Not finding a config file in lookupPaths is fine
	return "", nil
}
