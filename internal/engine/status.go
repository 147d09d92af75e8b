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

// Status represents the state of an assertion row, including how to display it on the console.
type Status struct {
	Value  string // Canonical value (OK, FAIL) written to the State column.
	Symbol string // Display symbol for console output.
}

// String implements fmt.Stringer so status prints as its canonical value.
func (s Status) String() string {
	return s.Value
}

// StatusOK returns the status for an assertion that passed.
func StatusOK() Status { return Status{Value: "OK", Symbol: "[✓]"} }

// StatusFail returns the status for an assertion that carried an error.
func StatusFail() Status { return Status{Value: "FAIL", Symbol: "[x]"} }

// States returns the values allowed in the State column, in display order.
func States() []string {
	return []string{StatusOK().Value, StatusFail().Value}
}
