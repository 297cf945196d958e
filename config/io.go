// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the config file at path into cfg, choosing the format
// from the extension: .toml, or .yaml / .yml. Fields not present in
// the file keep their current values.
func Open(cfg any, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config.Open %s: unsupported config file extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("config.Open %s: %w", path, err)
	}
	return nil
}
