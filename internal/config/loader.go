/*
Copyright 2025 The newman-xlsx Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/newman-reporters/newman-xlsx/internal/utils"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Config represents the main configuration structure.
type Config struct {
	Reporter *Reporter `json:"reporter,omitempty" jsonschema:"description=Options of the xlsx reporter"`
	Run      RunOptions `json:"run,omitempty"      jsonschema:"description=Collection run options passed through to the reporter"`
}

// Reporter holds the options of the xlsx reporter.
type Reporter struct {
	Export         string  `json:"export,omitempty"           jsonschema:"description=Path of the generated report. Defaults to newman/newman-run-report-<timestamp>0.xlsx"`
	MinColumnWidth float64 `json:"min-column-width,omitempty" jsonschema:"description=Minimum width of the worksheet columns in characters,minimum=0,maximum=255"`
}

// RunOptions are the collection run options. They are carried along with the reporter options but not interpreted.
type RunOptions map[string]any

const (
	// DefaultConfigPath is the default location of the config file.
	DefaultConfigPath = "~/.config/newman-xlsx.yaml"

	// DefaultMinColumnWidth is the default minimum column width in characters.
	DefaultMinColumnWidth = 10

	// MaxColumnWidth is the widest column a worksheet accepts.
	MaxColumnWidth = 255
)

// Load loads a newman-xlsx configuration file.
func Load(fs afero.Fs, configPath string) (*Config, error) {
	if !strings.HasSuffix(configPath, ".yaml") && !strings.HasSuffix(configPath, ".yml") {
		return nil, fmt.Errorf("Config file must have .yaml extension")
	}

	expandedPath, err := utils.ExpandTildeAbs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := afero.ReadFile(fs, expandedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate the YAML before unmarshalling
	if err := utils.ValidateYAML(data); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if cfg.Reporter == nil {
		cfg.Reporter = &Reporter{}
	}

	if cfg.Run == nil {
		cfg.Run = make(RunOptions)
	}

	if cfg.Reporter.MinColumnWidth == 0 {
		cfg.Reporter.MinColumnWidth = DefaultMinColumnWidth
	}

	return &cfg, nil
}

// Fallback returns the configuration used when no config file exists.
func Fallback() *Config {
	return &Config{
		Reporter: &Reporter{
			MinColumnWidth: DefaultMinColumnWidth,
		},
		Run: make(RunOptions),
	}
}
