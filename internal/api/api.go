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

// Package api provides the type definitions of a newman run summary and its loader.
package api

// Summary represents the run summary handed to reporters once a collection run is done.
// The same structure is written by newman's JSON reporter.
type Summary struct {
	Run *Run `json:"run,omitempty"`
}

// Run holds the recorded executions of a collection run.
type Run struct {
	Executions []Execution `json:"executions,omitempty"`
}

// Execution represents one executed request together with the assertions of its test scripts.
type Execution struct {
	ID         string      `json:"id,omitempty"`
	Item       *Item       `json:"item,omitempty"`
	Assertions []Assertion `json:"assertions,omitempty"`
}

// Item identifies the collection item (request) of an execution.
type Item struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Assertion represents the outcome of a single test assertion.
//
// Newman stores the test's descriptive name in the "assertion" field, not the assertion expression.
type Assertion struct {
	Assertion string          `json:"assertion"`
	Skipped   bool            `json:"skipped,omitempty"`
	Error     *AssertionError `json:"error,omitempty"`
}

// AssertionError describes why an assertion failed.
type AssertionError struct {
	Name    string `json:"name,omitempty"`
	Index   int    `json:"index,omitempty"`
	Test    string `json:"test,omitempty"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Executions returns the executions of the run, or nil when the summary or the run is missing.
func (s *Summary) Executions() []Execution {
	if s == nil || s.Run == nil {
		return nil
	}

	return s.Run.Executions
}

// AssertionCount returns the total number of assertions across all executions.
func (s *Summary) AssertionCount() int {
	var n int
	for _, e := range s.Executions() {
		n += len(e.Assertions)
	}

	return n
}

// HasError returns true if the assertion carries an error.
func (a *Assertion) HasError() bool {
	return a.Error != nil
}
