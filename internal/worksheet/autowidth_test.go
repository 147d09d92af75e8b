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

package worksheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"  //nolint:depguard // testify is widely used for testing
	"github.com/stretchr/testify/require" //nolint:depguard // testify is widely used for testing
	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// newFile creates a workbook whose default sheet holds the given rows starting at A1.
func newFile(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	return f
}

func colWidth(t *testing.T, f *excelize.File, col string) float64 {
	t.Helper()

	width, err := f.GetColWidth(sheet, col)
	require.NoError(t, err)

	return width
}

func TestAutoWidth(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]any
		minWidth float64
		want     map[string]float64
	}{
		{
			name:     "short values get the minimum width plus padding",
			rows:     [][]any{{"abc"}, {"de"}},
			minWidth: DefaultMinWidth,
			want:     map[string]float64{"A": 12},
		},
		{
			name:     "longest value wins",
			rows:     [][]any{{"Test", "State"}, {strings.Repeat("x", 25), "OK"}},
			minWidth: DefaultMinWidth,
			want:     map[string]float64{"A": 27, "B": 12},
		},
		{
			name:     "non-positive minimum falls back to the default",
			rows:     [][]any{{"abc"}},
			minWidth: 0,
			want:     map[string]float64{"A": 12},
		},
		{
			name:     "custom minimum",
			rows:     [][]any{{"abc"}},
			minWidth: 2,
			want:     map[string]float64{"A": 5},
		},
		{
			name:     "empty cells count as zero",
			rows:     [][]any{{"a", nil, strings.Repeat("y", 14)}},
			minWidth: DefaultMinWidth,
			want:     map[string]float64{"A": 12, "B": 12, "C": 16},
		},
		{
			name:     "numbers are measured by their text",
			rows:     [][]any{{1234567890}, {42}},
			minWidth: 5,
			want:     map[string]float64{"A": 12},
		},
		{
			name:     "wide characters count double",
			rows:     [][]any{{"日本語日本語"}},
			minWidth: DefaultMinWidth,
			want:     map[string]float64{"A": 14},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFile(t, tt.rows)

			require.NoError(t, AutoWidth(f, sheet, tt.minWidth))

			for col, want := range tt.want {
				assert.InDelta(t, want, colWidth(t, f, col), 0.001, "column %s", col)
			}
		})
	}
}

func TestAutoWidth_Idempotent(t *testing.T) {
	f := newFile(t, [][]any{
		{"Test", "State", "Error"},
		{"status is 200", "OK", nil},
		{"body has id", "FAIL", "expected id to be present in the response"},
	})

	require.NoError(t, AutoWidth(f, sheet, DefaultMinWidth))

	first := map[string]float64{}
	for _, col := range []string{"A", "B", "C"} {
		first[col] = colWidth(t, f, col)
	}

	require.NoError(t, AutoWidth(f, sheet, DefaultMinWidth))

	for col, want := range first {
		assert.InDelta(t, want, colWidth(t, f, col), 0.001, "column %s", col)
	}
}

func TestAutoWidth_UnknownSheet(t *testing.T) {
	f := newFile(t, nil)

	err := AutoWidth(f, "Missing", DefaultMinWidth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read columns of sheet Missing")
}

func TestColumnWidth(t *testing.T) {
	assert.InDelta(t, 12.0, ColumnWidth(nil, DefaultMinWidth), 0.001)
	assert.InDelta(t, 12.0, ColumnWidth([]string{"", "abc", ""}, DefaultMinWidth), 0.001)
	assert.InDelta(t, 22.0, ColumnWidth([]string{strings.Repeat("z", 20)}, DefaultMinWidth), 0.001)
}
