// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads settings for the algoperf commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default database settings.
const (
	DefaultDriver = "sqlite3"
	DefaultDSN    = "results/metrics.db"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Database.Driver = DefaultDriver
	c.Database.DSN = DefaultDSN
	return c
}

// Load reads the YAML file at path. Settings missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
