// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pbcodec defines the contract a generator would emit for each
// message type: a pure {encode, decode, byte_size} triple (spec §4.4).
// This package does not generate that code from .proto files (schema
// parsing and code generation are out of scope per spec §1); it only
// provides the Serializer contract and the field-level helpers
// (default elision, embedded-message, map and repeated-scalar framing)
// that hand-written or generated message types use to implement it.
// There is no oneof helper: a message type's own Decode keeps the last
// variant seen. Sub-message merging is likewise done by the message
// type's Decode, which ReadEmbeddedMessageInto calls on the existing value.
package pbcodec

import "github.com/jethome-iot/litepb-sub000/wire"

// Serializer is the per-message-type contract: Encode appends the wire
// form of v to w, Decode reads r into v (merging with any values v
// already holds; Unmarshal passes a fresh zero T), and ByteSize reports
// the exact length Encode would produce. ByteSize(v) must equal
// len(Encode(v)) for every v, and Decode must accept any output of
// Encode plus any semantically equivalent field-order permutation.
type Serializer[T any] struct {
	Encode   func(v *T, w *wire.Writer) error
	Decode   func(v *T, r *wire.Reader) error
	ByteSize func(v *T) int
}

// Marshal encodes v into a freshly allocated byte slice using a dynamic
// (never-fails-on-capacity) writer.
func Marshal[T any](s Serializer[T], v *T) ([]byte, error) {
	dw := wire.NewDynamicWriter()
	w := wire.NewWriter(dw)
	if err := s.Encode(v, w); err != nil {
		return nil, err
	}
	return dw.Bytes(), nil
}

// Unmarshal decodes data into a freshly allocated T.
func Unmarshal[T any](s Serializer[T], data []byte) (*T, error) {
	v := new(T)
	r := wire.NewReader(wire.NewMemoryReader(data))
	if err := s.Decode(v, r); err != nil {
		return nil, err
	}
	return v, nil
}
