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

package utils

import (
	"bytes"
	"io"
	"os"
)

// capture redirects the given stream to a pipe while f runs and returns what was written.
// The stream is restored even if f panics.
func capture(stream **os.File, f func()) string {
	old := *stream
	r, w, _ := os.Pipe()
	*stream = w

	// Drain the pipe concurrently so large outputs cannot block f
	done := make(chan string, 1)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	defer func() {
		*stream = old
		_ = recover()
	}()

	func() {
		defer w.Close() //nolint:errcheck // cleanup function, error handling not practical

		f()
	}()

	return <-done
}

// CaptureStderr captures output written to os.Stderr during the execution of function f.
// Example:
//
//	output := testutils.CaptureStderr(func() {
//	   utils.DebugPrintf("Writing report to %s\n", path)
//	})
//	assert.Contains(t, output, "DEBUG: Writing report")
func CaptureStderr(f func()) string {
	return capture(&os.Stderr, f)
}

// CaptureStdout captures output written to os.Stdout during the execution of function f.
// Example:
//
//	output := testutils.CaptureStdout(func() {
//	   result.Print(os.Stdout)
//	})
//	assert.Contains(t, output, "ok")
func CaptureStdout(f func()) string {
	return capture(&os.Stdout, f)
}

// CapturedOutput represents the captured stdout and stderr output from a function.
type CapturedOutput struct {
	Stdout string
	Stderr string
}

// CaptureOutput captures both stdout and stderr output simultaneously during the execution of function f.
func CaptureOutput(f func()) CapturedOutput {
	var output CapturedOutput

	output.Stdout = CaptureStdout(func() {
		output.Stderr = CaptureStderr(f)
	})

	return output
}
