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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	internalConfig "github.com/newman-reporters/newman-xlsx/internal/config"
	unittestsUtils "github.com/newman-reporters/newman-xlsx/internal/unittests/utils"
	"github.com/spf13/afero"
)

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()

	parser, err := kong.New(cli, append(options(), kong.Exit(func(int) { t.Fatal("unexpected exit") }))...)
	assert.NoError(t, err)

	return parser
}

func TestCLI_Parse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{
			name:    "report with flags",
			args:    []string{"report", "summary.json", "--min-column-width", "12", "--fail-on-error", "-v", "--debug"},
			command: "report <summary>",
			check: func(t *testing.T, cli *CLI) {
				t.Helper()
				assert.Equal(t, "summary.json", cli.Report.Summary)
				assert.Equal(t, 12.0, cli.Report.MinColumnWidth)
				assert.True(t, cli.Report.FailOnError)
				assert.True(t, cli.Report.Verbose)
				assert.True(t, cli.Report.Debug)
				assert.Equal(t, "", cli.Report.Export)
			},
		},
		{
			name:    "report from stdin",
			args:    []string{"report", "-"},
			command: "report <summary>",
			check: func(t *testing.T, cli *CLI) {
				t.Helper()
				assert.Equal(t, "-", cli.Report.Summary)
			},
		},
		{
			name:    "config file",
			args:    []string{"--config", "/etc/newman-xlsx.yaml", "check"},
			command: "check",
			check: func(t *testing.T, cli *CLI) {
				t.Helper()
				assert.Equal(t, "/etc/newman-xlsx.yaml", cli.ConfigFile)
			},
		},
		{
			name:    "default config file",
			args:    []string{"version"},
			command: "version",
			check: func(t *testing.T, cli *CLI) {
				t.Helper()
				assert.True(t, strings.HasSuffix(cli.ConfigFile, filepath.Join(".config", "newman-xlsx.yaml")))
			},
		},
		{
			name:    "schema",
			args:    []string{"schema"},
			command: "schema",
		},
		{
			name:    "version",
			args:    []string{"version"},
			command: "version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI

			ctx, err := newParser(t, &cli).Parse(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.command, ctx.Command())

			if tt.check != nil {
				tt.check(t, &cli)
			}
		})
	}
}

func TestCLI_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "report without summary", args: []string{"report"}},
		{name: "unknown command", args: []string{"render"}},
		{name: "non numeric width", args: []string{"report", "summary.json", "--min-column-width", "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI

			_, err := newParser(t, &cli).Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestNeedsConfig(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: []string{"report", "summary.json"}, want: true},
		{args: []string{"check"}, want: true},
		{args: []string{"schema"}, want: false},
		{args: []string{"version"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var cli CLI

			ctx, err := newParser(t, &cli).Parse(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, needsConfig(ctx.Command()))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, path, err := loadConfig(afero.NewMemMapFs(), "/config/newman-xlsx.yaml")
		assert.NoError(t, err)
		assert.Equal(t, "", path)
		assert.Equal(t, internalConfig.Fallback(), cfg)
	})

	t.Run("existing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		unittestsUtils.WriteTestFile(t, fs, "/config/newman-xlsx.yaml", "reporter:\n  export: out/run.xlsx\n")

		cfg, path, err := loadConfig(fs, "/config/newman-xlsx.yaml")
		assert.NoError(t, err)
		assert.Equal(t, "/config/newman-xlsx.yaml", path)
		assert.Equal(t, "out/run.xlsx", cfg.Reporter.Export)
		assert.Equal(t, float64(internalConfig.DefaultMinColumnWidth), cfg.Reporter.MinColumnWidth)
	})

	t.Run("invalid file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		unittestsUtils.WriteTestFile(t, fs, "/config/newman-xlsx.yaml", "reporter: [\n")

		_, _, err := loadConfig(fs, "/config/newman-xlsx.yaml")
		assert.Error(t, err)
		assert.False(t, os.IsNotExist(err))
	})
}
