package chipdiff

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional settings of the tool, read from a chipdiff.toml
// file in the working directory. Every field has a sensible default so the
// file is never required.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Columns ColumnsConfig `toml:"columns"`
}

// ServerConfig configures the `chipdiff serve` command.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DataConfig configures where the CSV exports are looked up.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// ColumnsConfig lists extra header names accepted for each record field, on
// top of the built-in aliases.
type ColumnsConfig struct {
	ID       []string `toml:"id"`
	Customer []string `toml:"customer"`
	PDM      []string `toml:"pdm"`
}

// DefaultConfig returns the configuration used when no chipdiff.toml exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8696},
		Data:   DataConfig{Dir: "."},
	}
}

// Aliases returns the configured extra column aliases in the form the CSV
// parser consumes.
func (c *Config) Aliases() ColumnAliases {
	return ColumnAliases{
		ID:       c.Columns.ID,
		Customer: c.Columns.Customer,
		PDM:      c.Columns.PDM,
	}
}

// LoadConfig reads chipdiff.toml from 'path'. A missing file is not an
// error: defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return cfg, nil
}
