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

// Package main is the main package for the newman-xlsx tool.
package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	checkCmd "github.com/newman-reporters/newman-xlsx/cmd/newman-xlsx/check"
	"github.com/newman-reporters/newman-xlsx/cmd/newman-xlsx/report"
	"github.com/newman-reporters/newman-xlsx/cmd/newman-xlsx/schema"
	"github.com/newman-reporters/newman-xlsx/cmd/newman-xlsx/version"
	internalConfig "github.com/newman-reporters/newman-xlsx/internal/config"
	"github.com/spf13/afero"
)

// CLI represents the command-line interface.
type CLI struct {
	ConfigFile string       `default:"${config_path}" help:"Path to newman-xlsx config file"                          name:"config" short:"c" type:"path"`
	Check      checkCmd.Cmd `cmd:""                   help:"Check the configuration"`
	Report     report.Cmd   `cmd:""                   help:"Write the assertions of a newman run to a spreadsheet"`
	Schema     schema.Cmd   `cmd:""                   help:"Print the JSON schema of the config file"`
	Version    version.Cmd  `cmd:""                   help:"Print the version of newman-xlsx"`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli, options()...)

	if needsConfig(ctx.Command()) {
		cfg, configPath, err := loadConfig(afero.NewOsFs(), cli.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// Set config in the command structs
		cli.Check.Config = cfg
		cli.Check.ConfigPath = configPath
		cli.Report.Config = cfg
	}

	// Run the selected command
	if err := ctx.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// options returns the kong options of the newman-xlsx command line.
func options() []kong.Option {
	return []kong.Option{
		kong.Name("newman-xlsx"),
		kong.Description("Spreadsheet reports for newman collection runs."),
		kong.UsageOnError(),
		kong.Vars{"config_path": internalConfig.DefaultConfigPath},
	}
}

// needsConfig reports whether the selected command reads the config file.
func needsConfig(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	return name == "report" || name == "check"
}

// loadConfig loads the config file, falling back to the defaults when it does not exist.
// The returned path is empty when the defaults are used.
func loadConfig(fs afero.Fs, configPath string) (*internalConfig.Config, string, error) {
	cfg, err := internalConfig.Load(fs, configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return internalConfig.Fallback(), "", nil
		}

		return nil, "", err
	}

	return cfg, configPath, nil
}
