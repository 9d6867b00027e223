// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package appinfo

// EUniverse values that may appear in the file header
const (
	UniverseInvalid  uint32 = 0
	UniversePublic   uint32 = 1
	UniverseBeta     uint32 = 2
	UniverseInternal uint32 = 3
	UniverseDev      uint32 = 4
)

// Map of accepted universes to display names
//
// Universe 0 is explicitly invalid and anything above dev is unknown, so both
// are rejected during header validation
var universeNames = map[uint32]string{
	UniversePublic:   "public",
	UniverseBeta:     "beta",
	UniverseInternal: "internal",
	UniverseDev:      "dev",
}

// UniverseSupported returns whether the given universe value passes header
// validation
func UniverseSupported(universe uint32) bool {
	_, ok := universeNames[universe]
	return ok
}

// UniverseName returns the display name for a universe value
func UniverseName(universe uint32) string {
	if name, ok := universeNames[universe]; ok {
		return name
	}
	return "unknown"
}
