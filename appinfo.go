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

// Package appinfo decodes the Steam appinfo.vdf binary file format: a file
// header followed by a sequence of per-application entries, each a fixed
// header plus one binary KeyValues tree.
package appinfo

import (
	"errors"

	"github.com/blinklabs-io/go-appinfo/keyvalues"
)

// Signature is the single accepted value for the first 4 bytes of the file
const Signature uint32 = 0x07564427

// Document is the decoded form of one appinfo.vdf buffer
type Document struct {
	Signature uint32
	Universe  uint32
	Entries   []Entry
}

// Decode decodes a fully-resident appinfo.vdf buffer. The returned Document
// owns its entire tree and shares no mutable state with any other decode of
// the same buffer
func Decode(data []byte, options ...DecodeOptionFunc) (*Document, error) {
	cfg := NewDecodeConfig(options...)
	r := keyvalues.NewReader(data)
	doc := &Document{}
	var err error
	if doc.Signature, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if doc.Signature != Signature {
		return nil, InvalidSignatureError{Signature: doc.Signature}
	}
	if doc.Universe, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if !UniverseSupported(doc.Universe) {
		return nil, InvalidUniverseError{Universe: doc.Universe}
	}
	for r.Remaining() {
		entryOffset := r.Offset()
		entry, err := decodeEntry(r, cfg)
		if err != nil {
			if errors.Is(err, keyvalues.ErrUnexpectedEnd) {
				// The format has no entry count: the end of the entry list is
				// the end of the buffer, usually padded with a partial header
				// (a zero app ID). Running out of bytes mid-entry is therefore
				// the normal end-of-list condition, but we keep it
				// distinguishable for callers that want tighter framing
				truncErr := TruncatedEntryError{Offset: entryOffset, Err: err}
				if cfg.strict {
					return nil, truncErr
				}
				cfg.logger.Debug(
					"discarding truncated trailing entry",
					"offset", entryOffset,
					"error", err,
				)
				break
			}
			return nil, err
		}
		doc.Entries = append(doc.Entries, *entry)
	}
	return doc, nil
}

// GetEntry returns the first entry with the given app ID
func (d *Document) GetEntry(appID uint32) (*Entry, bool) {
	for i := range d.Entries {
		if d.Entries[i].AppID == appID {
			return &d.Entries[i], true
		}
	}
	return nil, false
}

// Value externalizes the document as a plain map for generic consumers
func (d *Document) Value() map[string]any {
	entries := make([]any, 0, len(d.Entries))
	for i := range d.Entries {
		entries = append(entries, d.Entries[i].Value())
	}
	return map[string]any{
		"signature":   d.Signature,
		"universe":    d.Universe,
		"entry_count": len(d.Entries),
		"entries":     entries,
	}
}
