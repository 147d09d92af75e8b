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
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestReporter_CheckExport(t *testing.T) {
	tests := []struct {
		name           string
		export         string
		wantErrContain string
	}{
		{name: "empty export is allowed", export: ""},
		{name: "relative xlsx path", export: "reports/run.xlsx"},
		{name: "absolute xlsx path", export: "/tmp/run.xlsx"},
		{name: "upper case extension", export: "RUN.XLSX"},
		{name: "wrong extension", export: "reports/run.csv", wantErrContain: "must have .xlsx extension"},
		{name: "no extension", export: "reports/run", wantErrContain: "must have .xlsx extension"},
		{name: "surrounding whitespace", export: " run.xlsx", wantErrContain: "leading or trailing whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Reporter{Export: tt.export}).CheckExport()
			if tt.wantErrContain == "" {
				assert.NoError(t, err)
				return
			}

			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErrContain)
			}
		})
	}
}

func TestReporter_CheckMinColumnWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		wantErr bool
	}{
		{"zero uses the default", 0, false},
		{"default", DefaultMinColumnWidth, false},
		{"maximum", MaxColumnWidth, false},
		{"negative", -1, true},
		{"too wide", MaxColumnWidth + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Reporter{MinColumnWidth: tt.width}).CheckMinColumnWidth()
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMinColumnWidth() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Check(t *testing.T) {
	t.Run("nil reporter", func(t *testing.T) {
		assert.NoError(t, (&Config{}).Check())
	})

	t.Run("valid reporter", func(t *testing.T) {
		cfg := &Config{Reporter: &Reporter{Export: "run.xlsx", MinColumnWidth: 12}}
		assert.NoError(t, cfg.Check())
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := &Config{Reporter: &Reporter{Export: "run.txt", MinColumnWidth: -3}}

		err := cfg.Check()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "invalid reporter options:")
			assert.Contains(t, err.Error(), "must have .xlsx extension")
			assert.Contains(t, err.Error(), "min-column-width -3 must be between 0 and 255")
		}
	})
}
