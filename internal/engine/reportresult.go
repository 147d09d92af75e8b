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

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gertd/go-pluralize"
)

const (
	spaces = "    " // Indentation for listed assertions.
)

// ReportResult aggregates the rows written to a report file.
type ReportResult struct {
	FilePath  string
	Rows      []Row
	Duration  time.Duration
	Status    Status // StatusOK or StatusFail - overall status
	StartTime time.Time
	Verbose   bool // Formatting flag for output
}

// NewReportResult creates a new report result.
func NewReportResult(verbose bool) *ReportResult {
	return &ReportResult{
		Status:    StatusOK(), // Default to OK
		StartTime: time.Now(),
		Verbose:   verbose,
	}
}

// AddRow adds a row to the result.
func (rr *ReportResult) AddRow(row Row) {
	rr.Rows = append(rr.Rows, row)

	if row.State == StatusFail() {
		rr.Status = StatusFail()
	}
}

// Complete records the written file and the total duration, and returns the result for chaining.
func (rr *ReportResult) Complete(filePath string) *ReportResult {
	rr.FilePath = filePath
	rr.Duration = time.Since(rr.StartTime)

	return rr
}

// HasFailures returns true if any assertion failed.
func (rr *ReportResult) HasFailures() bool {
	return rr.Status == StatusFail()
}

// Counts returns the number of passed and failed rows.
func (rr *ReportResult) Counts() (passed, failed int) {
	for _, r := range rr.Rows {
		if r.State == StatusFail() {
			failed++
		} else {
			passed++
		}
	}

	return passed, failed
}

// Print prints the report summary in go test format.
// In verbose mode every assertion is listed, otherwise only failed ones.
func (rr *ReportResult) Print(w io.Writer) {
	fmt.Fprint(w, rr.formatAssertions()) //nolint:errcheck // output function, error handling not practical

	// Convert absolute paths to relative paths when possible (matches Go's testing package behavior)
	displayPath := rr.FilePath
	if pwd, err := os.Getwd(); err == nil && filepath.IsAbs(rr.FilePath) {
		if rel, err := filepath.Rel(pwd, rr.FilePath); err == nil && !strings.HasPrefix(rel, "..") {
			displayPath = rel
		}
	}

	if rr.HasFailures() {
		fmt.Fprintf(w, "%s\t%s\t%.3fs\n", StatusFail(), displayPath, rr.Duration.Seconds()) //nolint:errcheck // output function, error handling not practical
		return
	}

	fmt.Fprintf(w, "ok\t%s\t%.3fs\n", displayPath, rr.Duration.Seconds()) //nolint:errcheck // output function, error handling not practical
}

// formatAssertions lists the assertions followed by a total line.
// Returns "" when there is nothing to list.
func (rr *ReportResult) formatAssertions() string {
	if len(rr.Rows) == 0 || (!rr.Verbose && !rr.HasFailures()) {
		return ""
	}

	passed, failed := rr.Counts()

	lines := make([]string, 0, 2+len(rr.Rows))
	lines = append(lines, "Assertions:")

	for _, r := range rr.Rows {
		if !rr.Verbose && r.State != StatusFail() {
			continue
		}

		if r.Error != "" {
			lines = append(lines, fmt.Sprintf("%s%s %s - %s", spaces, r.State.Symbol, r.Test, r.Error))
		} else {
			lines = append(lines, fmt.Sprintf("%s%s %s", spaces, r.State.Symbol, r.Test))
		}
	}

	plural := pluralize.NewClient()
	lines = append(lines, fmt.Sprintf("%sTotal: %s, %d successful, %d failed", spaces, plural.Pluralize("assertion", len(rr.Rows), true), passed, failed))

	return strings.Join(lines, "\n") + "\n"
}
