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

// Package report provides the report subcommand for newman-xlsx.
package report

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gertd/go-pluralize"
	"github.com/newman-reporters/newman-xlsx/internal/api"
	internalcfg "github.com/newman-reporters/newman-xlsx/internal/config"
	"github.com/newman-reporters/newman-xlsx/internal/reporter"
	"github.com/newman-reporters/newman-xlsx/internal/utils"
	"github.com/spf13/afero"
)

// Cmd represents the report subcommand.
type Cmd struct {
	Summary        string              `arg:""                                                                       help:"Run summary exported by newman's json reporter, or '-' to read it from stdin"`
	Export         string              `help:"Path of the generated report. Overrides the export option of the config file" short:"o" type:"path"`
	MinColumnWidth float64             `help:"Minimum column width in characters. Overrides the config file"                name:"min-column-width"`
	FailOnError    bool                `help:"Exit with an error when the run has failed assertions"                        name:"fail-on-error"`
	Verbose        bool                `help:"List every assertion, not only the failed ones"                               short:"v"`
	Debug          bool                `help:"Show detailed debug information about the report generation"`
	Config         *internalcfg.Config `kong:"-"`
	fs             afero.Fs
}

// AfterApply implements kong.AfterApply.
func (c *Cmd) AfterApply() error {
	c.fs = afero.NewOsFs()
	return nil
}

// Run executes the report subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	options, err := c.newOptions(c.Config)
	if err != nil {
		return err
	}

	if c.Debug {
		utils.DebugPrintf("Loading run summary from %s\n", c.Summary)
	}

	summary, err := api.Load(c.fs, c.Summary)
	if err != nil {
		return err
	}

	if len(summary.Executions()) == 0 {
		utils.WarningPrintf("Run summary %s has no executions, the report only holds the header row\n", c.Summary)
	}

	var runOptions internalcfg.RunOptions
	if c.Config != nil {
		runOptions = c.Config.Run
	}

	rep, err := reporter.New(c.fs, options, runOptions)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	if _, err := rep.Done(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	result := rep.Result()
	result.Print(os.Stdout)

	if c.FailOnError && result.HasFailures() {
		_, failed := result.Counts()
		return fmt.Errorf("%s failed", pluralize.NewClient().Pluralize("assertion", failed, true))
	}

	return nil
}

// newOptions merges the reporter options of the config file with the command flags and checks the result.
func (c *Cmd) newOptions(cfg *internalcfg.Config) (*reporter.Options, error) {
	merged := internalcfg.Reporter{MinColumnWidth: internalcfg.DefaultMinColumnWidth}
	if cfg != nil && cfg.Reporter != nil {
		merged = *cfg.Reporter
	}

	// Flags take precedence over the config file
	if c.Export != "" {
		merged.Export = c.Export
	}

	if c.MinColumnWidth != 0 {
		merged.MinColumnWidth = c.MinColumnWidth
	}

	if err := (&internalcfg.Config{Reporter: &merged}).Check(); err != nil {
		return nil, err
	}

	return &reporter.Options{
		Export:         merged.Export,
		MinColumnWidth: merged.MinColumnWidth,
		Verbose:        c.Verbose,
		Debug:          c.Debug,
	}, nil
}
