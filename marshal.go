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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

// getEncMode returns a cached EncMode, initializing it on first use
func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		encOptions := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = encOptions.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// MarshalCBOR encodes the externalized document as CBOR with deterministic
// map key ordering
func (d *Document) MarshalCBOR() ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(d.Value())
}

// MarshalCBOR encodes a single entry's externalized view as CBOR
func (e *Entry) MarshalCBOR() ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(e.Value())
}

// MarshalJSON renders the externalized document. Entries keep their decoded
// order
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(
		&buf,
		`{"signature":%d,"universe":%d,"entry_count":%d,"entries":`,
		d.Signature,
		d.Universe,
		len(d.Entries),
	)
	entries, err := json.Marshal(d.Entries)
	if err != nil {
		return nil, err
	}
	buf.Write(entries)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders the entry's externalized view: the default header
// fields first, then the root node's children in decoded order. A child that
// shares a name with a header field comes later in the object, so parsers
// that keep the last occurrence see the child win, matching Value()
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(
		&buf,
		`{"appid":%d,"state":%d,"last_updated":%d,"change_number":%d`,
		e.AppID,
		e.State,
		e.LastUpdated,
		e.ChangeNumber,
	)
	for _, child := range e.Root.Children {
		buf.WriteByte(',')
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
}
