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

package reporter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/newman-reporters/newman-xlsx/internal/utils"
)

const (
	// DefaultExportDir is the directory of reports written without an export path.
	DefaultExportDir = "newman"

	defaultExportPrefix = "newman-run-report-"
	defaultExportSuffix = "0.xlsx"
)

var nonDigits = regexp.MustCompile(`[^\d]+`)

// ExportPath returns the file a report is written to. An explicit export path is used as is, with a
// leading ~/ expanded. Otherwise the file is newman/newman-run-report-<timestamp>0.xlsx, where the
// timestamp is the ISO 8601 UTC time with millisecond precision and every run of non-digits
// replaced by a hyphen.
func ExportPath(export string, now time.Time) (string, error) {
	if export != "" {
		path, err := utils.ExpandTilde(export)
		if err != nil {
			return "", fmt.Errorf("failed to expand export path %s: %w", export, err)
		}

		return path, nil
	}

	return filepath.Join(DefaultExportDir, defaultExportPrefix+timestamp(now)+defaultExportSuffix), nil
}

// timestamp renders now like 2025-01-02-03-04-05-678-.
func timestamp(now time.Time) string {
	iso := now.UTC().Format("2006-01-02T15:04:05.000") + "Z"
	return nonDigits.ReplaceAllString(iso, "-")
}
