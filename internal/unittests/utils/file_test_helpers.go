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

// Package utils from internal/unittests provides helper functions for unit tests.
package utils

import (
	"path/filepath"
	"testing"

	"github.com/newman-reporters/newman-xlsx/internal/api"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// WriteTestFile writes content to a file on fs, creating parent directories if needed.
func WriteTestFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}

	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}

	return path
}

// WriteSummaryFile writes a run summary as newman's JSON reporter would.
// Example:
//
//	path := testutils.WriteSummaryFile(t, fs, "/run.json", testutils.NewSummary(
//		[]api.Assertion{{Assertion: "status is 200"}},
//	))
func WriteSummaryFile(t *testing.T, fs afero.Fs, path string, summary *api.Summary) string {
	t.Helper()

	data, err := yaml.Marshal(summary)
	if err != nil {
		t.Fatalf("Failed to marshal summary: %v", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		t.Fatalf("Failed to convert summary to JSON: %v", err)
	}

	return WriteTestFile(t, fs, path, string(jsonData))
}

// NewSummary builds a summary with one execution per assertion list.
func NewSummary(executions ...[]api.Assertion) *api.Summary {
	run := &api.Run{}
	for _, assertions := range executions {
		run.Executions = append(run.Executions, api.Execution{Assertions: assertions})
	}

	return &api.Summary{Run: run}
}
