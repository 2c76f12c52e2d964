// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/nydiokar/Gary/internal/domain"
)

// ConfigFileName is the configuration file gary looks for.
const ConfigFileName = "gary.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a new Loader for the given config file path.
// An empty path means defaults only.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// fileConfig mirrors domain.Config with TOML tags. Pointer fields
// distinguish "absent" from "set to the zero value" when merging.
type fileConfig struct {
	Store struct {
		Path *string `toml:"path"`
	} `toml:"store"`
	Log struct {
		Level *string `toml:"level"`
		Path  *string `toml:"path"`
	} `toml:"log"`
	Scheduler struct {
		Interval *string `toml:"interval"`
	} `toml:"scheduler"`
	Seed struct {
		Path *string `toml:"path"`
	} `toml:"seed"`
}

// Load returns the configuration. A missing file yields the defaults;
// file values override defaults section by section.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}

	if file.Store.Path != nil {
		cfg.Store.Path = *file.Store.Path
	}
	if file.Log.Level != nil {
		cfg.Log.Level = *file.Log.Level
	}
	if file.Log.Path != nil {
		cfg.Log.Path = *file.Log.Path
	}
	if file.Scheduler.Interval != nil {
		cfg.Scheduler.Interval = *file.Scheduler.Interval
	}
	if file.Seed.Path != nil {
		cfg.Seed.Path = *file.Seed.Path
	}
	return cfg, nil
}
