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

// Package keyvalues decodes Valve's binary KeyValues wire format into a tree
// of typed nodes.
//
// The format is a flat byte stream with no length prefixes: each node is a
// single type tag, a NUL-terminated name, and a value whose shape depends on
// the tag. Map nodes nest recursively and are closed by a terminator tag.
// Decoding is a single left-to-right pass over a fully-resident buffer via
// Reader, which performs all bounds checking.
package keyvalues
