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
	"log/slog"

	"github.com/blinklabs-io/go-appinfo/keyvalues"
)

// DecodeConfig holds the resolved options for one decode call
type DecodeConfig struct {
	logger      *slog.Logger
	strict      bool
	strictTypes bool
}

// DecodeOptionFunc is a type that represents functions that modify the decode config
type DecodeOptionFunc func(*DecodeConfig)

// NewDecodeConfig applies the given options on top of the defaults
func NewDecodeConfig(options ...DecodeOptionFunc) *DecodeConfig {
	c := &DecodeConfig{
		logger: slog.Default(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) DecodeOptionFunc {
	return func(c *DecodeConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict specifies whether a truncated trailing entry fails the decode.
// The default is to discard it and treat the entry list as complete, which
// matches how the format marks its end
func WithStrict(strict bool) DecodeOptionFunc {
	return func(c *DecodeConfig) {
		c.strict = strict
	}
}

// WithStrictTypes specifies whether node types without decode support fail
// the decode. The default is to record them as valueless nodes and log a
// warning
func WithStrictTypes(strictTypes bool) DecodeOptionFunc {
	return func(c *DecodeConfig) {
		c.strictTypes = strictTypes
	}
}

func (c *DecodeConfig) keyValues() *keyvalues.DecodeConfig {
	return &keyvalues.DecodeConfig{
		Logger:      c.logger,
		StrictTypes: c.strictTypes,
	}
}
