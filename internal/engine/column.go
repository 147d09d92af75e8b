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

// Column describes one worksheet column: a stable key and its header text.
type Column struct {
	Key    string
	Header string
}

// Keys of the report columns.
const (
	KeyTest  = "test"
	KeyState = "state"
	KeyError = "error"
)

// Columns is the fixed, ordered column layout of the assertions worksheet.
//
//nolint:gochecknoglobals // static column registry
var Columns = []Column{
	{Key: KeyTest, Header: "Test"},
	{Key: KeyState, Header: "State"},
	{Key: KeyError, Header: "Error"},
}

// Headers returns the header texts in column order.
func Headers() []any {
	headers := make([]any, 0, len(Columns))
	for _, c := range Columns {
		headers = append(headers, c.Header)
	}

	return headers
}

// ColumnIndex returns the 1-based position of the column with the given key, or 0 if there is none.
func ColumnIndex(key string) int {
	for i, c := range Columns {
		if c.Key == key {
			return i + 1
		}
	}

	return 0
}
