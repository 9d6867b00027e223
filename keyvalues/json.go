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

package keyvalues

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the node's externalized value. Map children are written
// in decoded order rather than going through a Go map, which would lose the
// ordering. Duplicate child names are emitted as duplicate keys; JSON parsers
// that keep the last occurrence match Value()'s last-write-wins semantics
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.Type {
	case TypeMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(child.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(child)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case TypeString:
		return json.Marshal(n.Str)
	case TypeInt32:
		return json.Marshal(n.Int32)
	default:
		return []byte("null"), nil
	}
}
