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
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// Sentinel error for read-past-end failures so callers can use errors.Is
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// UnexpectedEndError indicates a read that wanted more bytes than remain in
// the buffer
type UnexpectedEndError struct {
	Offset int
	Wanted int
	Have   int
}

func (e UnexpectedEndError) Error() string {
	return fmt.Sprintf(
		"unexpected end of input at offset %d: wanted %d byte(s), have %d",
		e.Offset,
		e.Wanted,
		e.Have,
	)
}

func (UnexpectedEndError) Is(target error) bool {
	return target == ErrUnexpectedEnd
}

// Reader tracks a read offset over a fully-resident byte buffer. All
// multi-byte reads are little-endian. The offset only ever moves forward, and
// a failed read never advances it. The buffer is never modified.
type Reader struct {
	data   []byte
	offset int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position
func (r *Reader) Offset() int {
	return r.offset
}

// Len returns the number of unread bytes
func (r *Reader) Len() int {
	return len(r.data) - r.offset
}

// Remaining returns whether at least one unread byte exists
func (r *Reader) Remaining() bool {
	return r.offset < len(r.data)
}

func (r *Reader) require(wanted int) error {
	if have := len(r.data) - r.offset; have < wanted {
		return UnexpectedEndError{Offset: r.offset, Wanted: wanted, Have: have}
	}
	return nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	ret := r.data[r.offset]
	r.offset++
	return ret, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	ret := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return ret, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	ret := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return ret, nil
}

// ReadCString reads bytes up to a NUL terminator. The NUL is consumed but not
// included in the returned string
func (r *Reader) ReadCString() (string, error) {
	for i := r.offset; i < len(r.data); i++ {
		if r.data[i] == 0 {
			ret := string(r.data[r.offset:i])
			r.offset = i + 1
			return ret, nil
		}
	}
	// No terminator before end of buffer
	return "", UnexpectedEndError{
		Offset: r.offset,
		Wanted: len(r.data) - r.offset + 1,
		Have:   len(r.data) - r.offset,
	}
}

// ReadBytes returns the next length bytes as a view into the underlying
// buffer. Callers must not modify the returned slice
func (r *Reader) ReadBytes(length int) ([]byte, error) {
	if err := r.require(length); err != nil {
		return nil, err
	}
	ret := r.data[r.offset : r.offset+length]
	r.offset += length
	return ret, nil
}

// ReadHex reads length bytes and renders them as a lowercase hex string, two
// digits per byte, in buffer order
func (r *Reader) ReadHex(length int) (string, error) {
	data, err := r.ReadBytes(length)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// Range returns the bytes between two previously-observed offsets without
// moving the read position. Used to recover the raw encoding of a decoded
// region (such as for digest checks)
func (r *Reader) Range(start int, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(r.data) {
		return nil, fmt.Errorf(
			"invalid range [%d, %d) for buffer of %d byte(s)",
			start,
			end,
			len(r.data),
		)
	}
	return r.data[start:end], nil
}
