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

// Package engine provides the report data model: row states, the fixed column layout and the aggregated result.
package engine

import "github.com/newman-reporters/newman-xlsx/internal/api"

// Row represents one worksheet row derived from a single assertion.
type Row struct {
	Test  string
	State Status // StatusOK or StatusFail
	Error string // Empty when the assertion has no error
}

// NewRow derives a row from an assertion record.
// The state is FAIL exactly when the assertion carries an error; no other field is consulted.
// An error with an empty message still yields FAIL, with an empty Error cell.
func NewRow(assertion api.Assertion) Row {
	row := Row{
		Test:  assertion.Assertion,
		State: StatusOK(),
	}

	if assertion.HasError() {
		row.State = StatusFail()
		row.Error = assertion.Error.Message
	}

	return row
}

// RowsFromSummary returns one row per assertion, executions in order and assertions in order within each execution.
// A nil summary, run or missing lists yield no rows.
func RowsFromSummary(summary *api.Summary) []Row {
	var rows []Row

	for _, execution := range summary.Executions() {
		for _, assertion := range execution.Assertions {
			rows = append(rows, NewRow(assertion))
		}
	}

	return rows
}

// Values returns the row's cell values in column order.
func (r Row) Values() []any {
	return []any{r.Test, r.State.Value, r.Error}
}
