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

// Package schema provides the schema subcommand, printing the JSON schema of the config file.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/invopop/jsonschema"
	internalcfg "github.com/newman-reporters/newman-xlsx/internal/config"
	"github.com/newman-reporters/newman-xlsx/internal/utils"
)

// schemaID identifies the generated schema.
const schemaID = "https://github.com/newman-reporters/newman-xlsx/config.schema.json"

// Cmd represents the schema subcommand.
type Cmd struct{}

// Run executes the schema subcommand.
func (c *Cmd) Run(_ *kong.Context) error {
	out, err := Generate()
	if err != nil {
		return err
	}

	utils.OutputPrintf("%s\n", out)

	return nil
}

// Generate returns the indented JSON schema of the config file.
func Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	s := r.Reflect(&internalcfg.Config{})
	s.ID = schemaID
	s.Title = "newman-xlsx configuration"

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config schema: %w", err)
	}

	return out, nil
}
