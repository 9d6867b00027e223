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
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is without depending on the
// concrete error types
var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidUniverse  = errors.New("invalid universe")
	ErrTruncatedEntry   = errors.New("truncated entry")
)

// InvalidSignatureError indicates the file does not start with the accepted
// appinfo signature
type InvalidSignatureError struct {
	Signature uint32
}

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf(
		"invalid signature 0x%08x (expected 0x%08x)",
		e.Signature,
		Signature,
	)
}

func (InvalidSignatureError) Is(target error) bool {
	return target == ErrInvalidSignature
}

// InvalidUniverseError indicates a universe value outside the accepted set
type InvalidUniverseError struct {
	Universe uint32
}

func (e InvalidUniverseError) Error() string {
	return fmt.Sprintf("invalid universe %d", e.Universe)
}

func (InvalidUniverseError) Is(target error) bool {
	return target == ErrInvalidUniverse
}

// TruncatedEntryError indicates an entry that started but ran out of bytes
// before completing. This is the normal end-of-list condition for the format
// and is absorbed by Decode unless strict mode is enabled
type TruncatedEntryError struct {
	Offset int
	Err    error
}

func (e TruncatedEntryError) Error() string {
	return fmt.Sprintf("truncated entry starting at offset %d: %v", e.Offset, e.Err)
}

func (e TruncatedEntryError) Unwrap() error {
	return e.Err
}

func (TruncatedEntryError) Is(target error) bool {
	return target == ErrTruncatedEntry
}
