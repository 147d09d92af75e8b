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

// Package version reports the version of the newman-xlsx binary.
package version

import "runtime/debug"

// version is set at build time via ldflags: -ldflags "-X github.com/newman-reporters/newman-xlsx/internal/version.version=X.Y.Z"
var version = ""

// readBuildInfo is a mockable wrapper around debug.ReadBuildInfo.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version set at build time, the module version when installed
// with go install, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}

	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}
