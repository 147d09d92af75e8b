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

// Package check provides the check subcommand for newman-xlsx.
package check

import (
	"fmt"
	"sort"

	"github.com/alecthomas/kong"
	configtypes "github.com/newman-reporters/newman-xlsx/internal/config"
	"github.com/newman-reporters/newman-xlsx/internal/reporter"
	"github.com/newman-reporters/newman-xlsx/internal/utils"
)

// Cmd represents the check subcommand.
type Cmd struct {
	Config     *configtypes.Config `kong:"-"`
	ConfigPath string              `kong:"-"`
}

// Run executes the check subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	if c.ConfigPath == "" {
		utils.OutputPrintf("No configuration file provided, using defaults\n")
	} else {
		utils.OutputPrintf("Configuration file: %s\n\n", c.ConfigPath)
	}

	if err := c.Config.Check(); err != nil {
		return fmt.Errorf("configuration check failed:\n%s", err)
	}

	utils.OutputPrintf("Configuration check successful\n")

	if c.Config.Reporter != nil {
		utils.OutputPrintf("\nReporter:\n")

		if c.Config.Reporter.Export != "" {
			utils.OutputPrintf("- export: %s\n", c.Config.Reporter.Export)
		} else {
			utils.OutputPrintf("- export: %s/ (timestamped)\n", reporter.DefaultExportDir)
		}

		utils.OutputPrintf("- min-column-width: %g\n", c.Config.Reporter.MinColumnWidth)
	}

	if len(c.Config.Run) > 0 {
		utils.OutputPrintf("\nRun options:\n")

		names := make([]string, 0, len(c.Config.Run))
		for name := range c.Config.Run {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			utils.OutputPrintf("- %s: %v\n", name, c.Config.Run[name])
		}
	}

	return nil
}
