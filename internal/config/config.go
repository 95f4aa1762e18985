package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Roots      []string `toml:"roots"`
	Extensions []string `toml:"extensions"`
	DBPath     string   `toml:"db_path"`
	Editor     string   `toml:"editor"`
}

// Path returns the config file location for the given home directory.
func Path(home string) string {
	return filepath.Join(home, ".config", "hl7v", "config.toml")
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(home)
}

// LoadFrom builds the config using home for defaults and the config file.
func LoadFrom(home string) (*Config, error) {
	cfg := &Config{
		Roots:      []string{filepath.Join(home, "hl7")},
		Extensions: []string{".hl7", ".txt"},
		DBPath:     filepath.Join(home, ".config", "hl7v", "catalog.db"),
		Editor:     os.Getenv("EDITOR"),
	}

	cfgPath := Path(home)
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	for i, r := range cfg.Roots {
		cfg.Roots[i] = expandHome(r, home)
	}
	cfg.DBPath = expandHome(cfg.DBPath, home)

	if cfg.Editor == "" {
		cfg.Editor = "less"
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
