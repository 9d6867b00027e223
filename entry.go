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
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/blinklabs-io/go-appinfo/keyvalues"
)

// Entry is one per-application record: a fixed header followed by one binary
// KeyValues tree holding the application's fields
type Entry struct {
	AppID uint32
	// DeclaredSize is the byte size of the entry after the app ID as recorded
	// in the file. It is retained for callers but not used to bound parsing
	DeclaredSize uint32
	State        uint32
	LastUpdated  uint32
	AccessToken  uint64
	// Digest is the entry's 160-bit content hash as 40 lowercase hex digits
	Digest       string
	ChangeNumber uint32
	Root         keyvalues.Node

	// Raw encoding of the root node, kept for digest verification
	segment []byte
}

func decodeEntry(r *keyvalues.Reader, cfg *DecodeConfig) (*Entry, error) {
	e := &Entry{}
	var err error
	if e.AppID, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if e.DeclaredSize, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if e.State, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if e.LastUpdated, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if e.AccessToken, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Digest, err = r.ReadHex(20); err != nil {
		return nil, err
	}
	if e.ChangeNumber, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	rootOffset := r.Offset()
	if e.Root, err = keyvalues.DecodeNode(r, cfg.keyValues()); err != nil {
		return nil, err
	}
	segment, err := r.Range(rootOffset, r.Offset())
	if err != nil {
		return nil, err
	}
	e.segment = segment
	return e, nil
}

// LastUpdatedTime returns the entry's last-updated field as a time value
func (e *Entry) LastUpdatedTime() time.Time {
	return time.Unix(int64(e.LastUpdated), 0)
}

// VerifyDigest recomputes the SHA-1 of the entry's raw KeyValues segment and
// compares it to the recorded digest
func (e *Entry) VerifyDigest() bool {
	if len(e.segment) == 0 {
		return false
	}
	sum := sha1.Sum(e.segment)
	return hex.EncodeToString(sum[:]) == e.Digest
}

// Value externalizes the entry: the header fields most callers want, merged
// with the root node's children, children winning on name collision. The
// access token and digest stay off the default view
func (e *Entry) Value() map[string]any {
	ret := map[string]any{
		"appid":         e.AppID,
		"state":         e.State,
		"last_updated":  e.LastUpdated,
		"change_number": e.ChangeNumber,
	}
	for _, child := range e.Root.Children {
		ret[child.Name] = child.Value()
	}
	return ret
}
