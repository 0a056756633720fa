// GameHunt
// Copyright (c) 2026 The GameHunt Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of GameHunt.
//
// GameHunt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameHunt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameHunt.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "GAMEHUNT_CFG"

	DefaultBaseURL        = "https://api.rawg.io/api/"
	DefaultTimeoutSeconds = 50
)

// Values is the on-disk TOML shape of the config file.
type Values struct {
	API          API  `toml:"api"`
	ConfigSchema int  `toml:"config_schema"`
	DebugLogging bool `toml:"debug_logging"`
}

// API holds the catalog service connection settings.
type API struct {
	Key            string `toml:"key"             validate:"required"`
	BaseURL        string `toml:"base_url"        validate:"omitempty,url"`
	TimeoutSeconds int    `toml:"timeout_seconds" validate:"omitempty,gte=1,lte=300"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	API: API{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	},
}

// Instance is a thread-safe view of the loaded config file.
type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// DefaultConfigPath resolves the config file location, honoring the
// GAMEHUNT_CFG environment variable over the XDG config dir.
func DefaultConfigPath() (string, error) {
	if env, ok := os.LookupEnv(CfgEnv); ok && env != "" {
		return env, nil
	}
	path, err := xdg.ConfigFile(filepath.Join("gamehunt", "config.toml"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

// NewConfig loads the config file at cfgPath, creating it with defaults
// if it doesn't exist yet.
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	cfg := &Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		defaults: defaults,
	}
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// Load reads and validates the config file, writing defaults first if
// the file is missing.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	exists, err := afero.Exists(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("error checking config file: %w", err)
	}
	if !exists {
		log.Info().Str("path", c.cfgPath).Msg("config file not found, creating default")
		c.vals = c.defaults
		if err := c.save(); err != nil {
			return err
		}
		// Validate after writing so the user has a file to fill in,
		// but a missing API key still fails the same way every run.
		if err := validator.New().Struct(&c.vals); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return nil
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if newVals.API.BaseURL == "" {
		newVals.API.BaseURL = DefaultBaseURL
	}
	if newVals.API.TimeoutSeconds == 0 {
		newVals.API.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if err := validator.New().Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	log.Debug().Str("path", c.cfgPath).Msg("loaded config file")
	return nil
}

// Save writes the current values back to the config file.
func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

func (c *Instance) save() error {
	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}
	if err := c.fs.MkdirAll(filepath.Dir(c.cfgPath), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func (c *Instance) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.API.Key
}

func (c *Instance) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.API.Key = key
}

func (c *Instance) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.API.BaseURL
}

func (c *Instance) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.API.TimeoutSeconds) * time.Second
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}
