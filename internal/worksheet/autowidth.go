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

// Package worksheet provides layout helpers for spreadsheet worksheets.
package worksheet

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultMinWidth is the minimum column width, in characters, applied by AutoWidth.
	DefaultMinWidth = 10

	// padding is added to the widest value of a column.
	padding = 2
)

// AutoWidth widens every column of the sheet to fit its longest rendered value.
// Each column is set to max(minWidth, longest cell) + 2 characters; empty cells count as zero.
// A non-positive minWidth uses DefaultMinWidth.
func AutoWidth(f *excelize.File, sheet string, minWidth float64) error {
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}

	cols, err := f.GetCols(sheet)
	if err != nil {
		return fmt.Errorf("failed to read columns of sheet %s: %w", sheet, err)
	}

	for i, cells := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(sheet, name, name, ColumnWidth(cells, minWidth)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}

	return nil
}

// ColumnWidth returns the width that fits the longest of the given cell values.
func ColumnWidth(cells []string, minWidth float64) float64 {
	var longest int
	for _, v := range cells {
		longest = max(longest, runewidth.StringWidth(v))
	}

	return max(minWidth, float64(longest)) + padding
}
