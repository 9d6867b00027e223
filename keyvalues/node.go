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
	"errors"
	"fmt"
	"log/slog"
)

// NodeType is the single-byte wire tag that prefixes every node
type NodeType uint8

const (
	TypeMap        NodeType = 0x00
	TypeString     NodeType = 0x01
	TypeInt32      NodeType = 0x02
	TypeFloat32    NodeType = 0x03
	TypePointer    NodeType = 0x04
	TypeWideString NodeType = 0x05
	TypeColor      NodeType = 0x06
	TypeUint64     NodeType = 0x07
	// TypeEnd marks the end of a map's children. It carries no name or value
	// and never appears in a decoded tree
	TypeEnd NodeType = 0x08
)

func (t NodeType) String() string {
	switch t {
	case TypeMap:
		return "map"
	case TypeString:
		return "string"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypePointer:
		return "pointer"
	case TypeWideString:
		return "wstring"
	case TypeColor:
		return "color"
	case TypeUint64:
		return "uint64"
	case TypeEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown (0x%02x)", uint8(t))
	}
}

// This defaults to 32 in comparable decoders, but real appinfo trees nest
// deeper than you'd expect
const maxNestedLevels = 256

// Sentinel error for map nesting beyond maxNestedLevels
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// Sentinel error for node types the decoder carries no value logic for, so
// callers can use errors.Is
var ErrUnsupportedType = errors.New("unsupported node type")

// UnsupportedTypeError indicates a node whose wire tag has no decode support.
// Only returned when decoding with StrictTypes enabled
type UnsupportedTypeError struct {
	Offset int
	Type   NodeType
	Name   string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf(
		"unsupported node type %s for %q at offset %d",
		e.Type,
		e.Name,
		e.Offset,
	)
}

func (UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// DecodeConfig adjusts node decoding behavior
type DecodeConfig struct {
	// Logger receives a warning for each node whose type has no decode
	// support. Defaults to slog.Default()
	Logger *slog.Logger
	// StrictTypes turns nodes with unsupported types into decode failures
	// instead of valueless nodes
	StrictTypes bool
}

// Node is one decoded (type, name, value) unit. Map nodes own an ordered
// sequence of child nodes; scalar nodes carry exactly one of the value
// fields, selected by Type
type Node struct {
	Type     NodeType
	Name     string
	Children []Node
	Str      string
	Int32    int32
}

// Unhandled returns whether this node's wire type is one the decoder reads no
// value bytes for (float32, pointer, wstring, color, uint64, or anything
// outside the known tag set)
func (n Node) Unhandled() bool {
	switch n.Type {
	case TypeMap, TypeString, TypeInt32, TypeEnd:
		return false
	default:
		return true
	}
}

// DecodeNode decodes a single node (recursing into children for map nodes)
// from the reader's current position. A nil config uses defaults
func DecodeNode(r *Reader, cfg *DecodeConfig) (Node, error) {
	if cfg == nil {
		cfg = &DecodeConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return decodeNode(r, logger, cfg.StrictTypes, 0)
}

func decodeNode(r *Reader, logger *slog.Logger, strictTypes bool, depth int) (Node, error) {
	if depth > maxNestedLevels {
		return Node{}, ErrMaxDepth
	}
	tagOffset := r.Offset()
	tag, err := r.ReadUint8()
	if err != nil {
		return Node{}, err
	}
	node := Node{Type: NodeType(tag)}
	if node.Type == TypeEnd {
		// Terminator nodes have no name or value. The caller consumes this
		// node as an end-of-children marker and discards it
		return node, nil
	}
	if node.Name, err = r.ReadCString(); err != nil {
		return Node{}, err
	}
	switch node.Type {
	case TypeMap:
		for {
			child, err := decodeNode(r, logger, strictTypes, depth+1)
			if err != nil {
				return Node{}, err
			}
			if child.Type == TypeEnd {
				break
			}
			node.Children = append(node.Children, child)
		}
	case TypeString:
		if node.Str, err = r.ReadCString(); err != nil {
			return Node{}, err
		}
	case TypeInt32:
		tmpValue, err := r.ReadUint32()
		if err != nil {
			return Node{}, err
		}
		node.Int32 = int32(tmpValue)
	default:
		// Tags we have no value logic for. We've already consumed the tag
		// byte and the name, so the cursor is positioned consistently for
		// the caller either way
		if strictTypes {
			return Node{}, UnsupportedTypeError{
				Offset: tagOffset,
				Type:   node.Type,
				Name:   node.Name,
			}
		}
		logger.Warn(
			"skipping value for unsupported node type",
			"type", node.Type.String(),
			"name", node.Name,
			"offset", tagOffset,
		)
	}
	return node, nil
}

// Value externalizes the node: map nodes become a map from child name to
// child value (last write wins on duplicate names), string and int32 nodes
// become their scalar value, and unhandled nodes become nil
func (n Node) Value() any {
	switch n.Type {
	case TypeMap:
		ret := make(map[string]any, len(n.Children))
		for _, child := range n.Children {
			ret[child.Name] = child.Value()
		}
		return ret
	case TypeString:
		return n.Str
	case TypeInt32:
		return n.Int32
	default:
		return nil
	}
}

// Get walks map children by name and returns the node at the given path. On
// duplicate names the last child wins, matching Value(). Returns false if any
// path segment is missing or reached through a non-map node
func (n *Node) Get(path ...string) (*Node, bool) {
	cur := n
	for _, name := range path {
		if cur.Type != TypeMap {
			return nil, false
		}
		var found *Node
		for i := range cur.Children {
			if cur.Children[i].Name == name {
				found = &cur.Children[i]
			}
		}
		if found == nil {
			return nil, false
		}
		cur = found
	}
	return cur, true
}
