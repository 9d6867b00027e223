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

package test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Builder assembles little-endian binary fixtures for tests. Methods chain
// and any encoding failure panics, which keeps fixture definitions inline
type Builder struct {
	buf bytes.Buffer
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Uint8(v uint8) *Builder {
	b.buf.WriteByte(v)
	return b
}

func (b *Builder) Uint32(v uint32) *Builder {
	if err := binary.Write(&b.buf, binary.LittleEndian, v); err != nil {
		panic(fmt.Sprintf("error writing uint32: %s", err))
	}
	return b
}

func (b *Builder) Uint64(v uint64) *Builder {
	if err := binary.Write(&b.buf, binary.LittleEndian, v); err != nil {
		panic(fmt.Sprintf("error writing uint64: %s", err))
	}
	return b
}

// CString writes the string followed by a NUL terminator
func (b *Builder) CString(s string) *Builder {
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	return b
}

func (b *Builder) Bytes(data []byte) *Builder {
	b.buf.Write(data)
	return b
}

// Hex appends bytes given as a hex string
func (b *Builder) Hex(hexData string) *Builder {
	b.buf.Write(DecodeHexString(hexData))
	return b
}

func (b *Builder) Data() []byte {
	return b.buf.Bytes()
}
