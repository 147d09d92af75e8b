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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DirPerm is the permission used for directories created for report files.
const DirPerm = 0o755

// ExpandTilde replaces leading ~ with the user's home directory in a path.
// It handles paths like "~/path". If the path doesn't start with a tilde, it returns the path unchanged.
func ExpandTilde(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

// ExpandAbs returns the absolute path for the given path (does not expand tilde).
func ExpandAbs(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}

	return filepath.Abs(path)
}

// ExpandTildeAbs expands tilde and then returns the absolute path.
func ExpandTildeAbs(path string) (string, error) {
	tildeExpanded, err := ExpandTilde(path)
	if err != nil {
		return "", err
	}

	return ExpandAbs(tildeExpanded)
}

// EnsureParentDir creates the directory holding the given file path, including any missing parents.
// Paths in the current directory need no directory and are left alone.
func EnsureParentDir(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := fs.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// ValidateYAML checks if the output is valid YAML.
func ValidateYAML(yamlData []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	return nil
}
