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

// Package config provides loading and checking of the newman-xlsx configuration file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CheckExport checks that the export path, when set, names an .xlsx file.
func (r *Reporter) CheckExport() error {
	if r.Export == "" {
		return nil // the export path is optional
	}

	if strings.TrimSpace(r.Export) != r.Export {
		return fmt.Errorf("export path %q has leading or trailing whitespace", r.Export)
	}

	if !strings.EqualFold(filepath.Ext(r.Export), ".xlsx") {
		return fmt.Errorf("export path %s must have .xlsx extension", r.Export)
	}

	return nil
}

// CheckMinColumnWidth checks that the minimum column width is within the range a worksheet accepts.
func (r *Reporter) CheckMinColumnWidth() error {
	if r.MinColumnWidth < 0 || r.MinColumnWidth > MaxColumnWidth {
		return fmt.Errorf("min-column-width %g must be between 0 and %d", r.MinColumnWidth, MaxColumnWidth)
	}

	return nil
}

// Check checks the reporter options and returns all problems found.
func (c *Config) Check() error {
	if c.Reporter == nil {
		return nil
	}

	var allErrors []string

	if err := c.Reporter.CheckExport(); err != nil {
		allErrors = append(allErrors, err.Error())
	}

	if err := c.Reporter.CheckMinColumnWidth(); err != nil {
		allErrors = append(allErrors, err.Error())
	}

	if len(allErrors) > 0 {
		return fmt.Errorf("invalid reporter options:\n- %s", strings.Join(allErrors, "\n- "))
	}

	return nil
}
