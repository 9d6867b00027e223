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

package keyvalues_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/go-appinfo/internal/test"
	"github.com/blinklabs-io/go-appinfo/keyvalues"
)

func TestReaderMonotonicOffsets(t *testing.T) {
	data := test.DecodeHexString("0102030405060708090a0b0c0d")
	r := keyvalues.NewReader(data)
	if r.Offset() != 0 {
		t.Fatalf("unexpected initial offset: %d", r.Offset())
	}
	v8, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v8 != 0x01 {
		t.Fatalf("unexpected uint8 value: 0x%02x", v8)
	}
	if r.Offset() != 1 {
		t.Fatalf("offset after uint8 read: expected 1, got %d", r.Offset())
	}
	v32, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v32 != 0x05040302 {
		t.Fatalf("unexpected uint32 value: 0x%08x", v32)
	}
	if r.Offset() != 5 {
		t.Fatalf("offset after uint32 read: expected 5, got %d", r.Offset())
	}
	v64, err := r.ReadUint64()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v64 != 0x0d0c0b0a09080706 {
		t.Fatalf("unexpected uint64 value: 0x%016x", v64)
	}
	if r.Offset() != 13 {
		t.Fatalf("offset after uint64 read: expected 13, got %d", r.Offset())
	}
	if r.Remaining() {
		t.Fatalf("expected no remaining bytes")
	}
}

func TestReaderShortReadDoesNotAdvance(t *testing.T) {
	r := keyvalues.NewReader([]byte{0x01, 0x02})
	_, err := r.ReadUint32()
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if !errors.Is(err, keyvalues.ErrUnexpectedEnd) {
		t.Fatalf("unexpected error: %s", err)
	}
	var endErr keyvalues.UnexpectedEndError
	if !errors.As(err, &endErr) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if endErr.Offset != 0 || endErr.Wanted != 4 || endErr.Have != 2 {
		t.Fatalf("unexpected error detail: %+v", endErr)
	}
	// A failed read must not move the offset
	if r.Offset() != 0 {
		t.Fatalf("offset moved on failed read: %d", r.Offset())
	}
	// The bytes that were present are still readable
	for _, expected := range []uint8{0x01, 0x02} {
		v, err := r.ReadUint8()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if v != expected {
			t.Fatalf("unexpected value: 0x%02x", v)
		}
	}
	if _, err := r.ReadUint8(); !errors.Is(err, keyvalues.ErrUnexpectedEnd) {
		t.Fatalf("unexpected error: %s", err)
	}
}

type readCStringTestDefinition struct {
	hexData        string
	expectedValue  string
	expectedOffset int
	expectedErr    error
}

var readCStringTests = []readCStringTestDefinition{
	{
		hexData:        "68656c6c6f00",
		expectedValue:  "hello",
		expectedOffset: 6,
	},
	{
		hexData:        "00",
		expectedValue:  "",
		expectedOffset: 1,
	},
	{
		// No terminator before end of buffer
		hexData:     "6869",
		expectedErr: keyvalues.ErrUnexpectedEnd,
	},
}

func TestReadCString(t *testing.T) {
	for _, testDef := range readCStringTests {
		r := keyvalues.NewReader(test.DecodeHexString(testDef.hexData))
		value, err := r.ReadCString()
		if testDef.expectedErr != nil {
			if !errors.Is(err, testDef.expectedErr) {
				t.Fatalf("unexpected error: %s", err)
			}
			if r.Offset() != 0 {
				t.Fatalf("offset moved on failed read: %d", r.Offset())
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != testDef.expectedValue {
			t.Fatalf(
				"string did not decode to expected value\n  got: %q\n  wanted: %q",
				value,
				testDef.expectedValue,
			)
		}
		if r.Offset() != testDef.expectedOffset {
			t.Fatalf(
				"unexpected offset: expected %d, got %d",
				testDef.expectedOffset,
				r.Offset(),
			)
		}
	}
}

func TestReadHex(t *testing.T) {
	r := keyvalues.NewReader(test.DecodeHexString("001affb2"))
	value, err := r.ReadHex(3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "001aff" {
		t.Fatalf("unexpected hex value: %q", value)
	}
	if r.Offset() != 3 {
		t.Fatalf("unexpected offset: %d", r.Offset())
	}
	if _, err := r.ReadHex(2); !errors.Is(err, keyvalues.ErrUnexpectedEnd) {
		t.Fatalf("unexpected error: %s", err)
	}
	if r.Offset() != 3 {
		t.Fatalf("offset moved on failed read: %d", r.Offset())
	}
}

func TestReaderRange(t *testing.T) {
	data := test.DecodeHexString("0102030405")
	r := keyvalues.NewReader(data)
	if _, err := r.ReadUint32(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	segment, err := r.Range(1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(segment) != string(data[1:4]) {
		t.Fatalf("unexpected range content: %x", segment)
	}
	// Range must not move the read position
	if r.Offset() != 4 {
		t.Fatalf("unexpected offset: %d", r.Offset())
	}
	if _, err := r.Range(3, 9); err == nil {
		t.Fatalf("expected error for out-of-bounds range")
	}
}
