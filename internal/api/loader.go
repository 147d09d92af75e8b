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

package api

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// StdinPath is the path that makes Load read the summary from standard input.
const StdinPath = "-"

// Load reads a run summary written by newman's JSON reporter.
func Load(fs afero.Fs, path string) (*Summary, error) {
	var (
		data []byte
		err  error
	)

	if path == StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = afero.ReadFile(fs, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read run summary %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a run summary. JSON and YAML documents are both accepted.
func Parse(data []byte) (*Summary, error) {
	var summary Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse run summary: %w", err)
	}

	return &summary, nil
}
