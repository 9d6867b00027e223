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
	"slices"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of the document that shares no mutable state
// with the original
func (d *Document) Clone() (*Document, error) {
	var ret Document
	if err := copier.CopyWithOption(
		&ret,
		d,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	// copier only sees exported fields, so carry over the raw segments used
	// for digest verification
	for i := range ret.Entries {
		ret.Entries[i].segment = slices.Clone(d.Entries[i].segment)
	}
	return &ret, nil
}
