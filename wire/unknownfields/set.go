// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package unknownfields stores protobuf fields that were not recognized
// during decoding, so that re-encoding a message can reproduce them
// (spec §3, §4.3). Each field is stored as its encoded wire body and
// replayed as stored. Varint values and length prefixes are passed in
// decoded and re-encoded in shortest form, so a field whose varint
// arrived in a longer (non-canonical) encoding replays in shortest
// form, not byte-for-byte; fixed-width bodies and length-delimited
// contents replay unchanged.
package unknownfields

// WireType mirrors wire.Type without importing package wire, so that
// this package has no dependency on the codec that uses it.
type WireType uint8

const (
	Varint          WireType = 0
	Fixed64         WireType = 1
	LengthDelimited WireType = 2
	StartGroup      WireType = 3
	EndGroup        WireType = 4
	Fixed32         WireType = 5
)

// Field is one captured unknown field: the field number and wire type it
// carried, plus its raw wire body (see package doc for per-type layout).
type Field struct {
	FieldNumber uint32
	WireType    WireType
	Data        []byte
}

// Set is an ordered collection of unknown fields, in wire order. Replay
// reproduces the captured byte sequence exactly, including a synthesized
// END_GROUP tag when re-emitting a group.
type Set struct {
	fields []Field
}

// AddVarint stores a varint field. value is the pre-varint-encoded body.
func (s *Set) AddVarint(fieldNumber uint32, value uint64) {
	s.fields = append(s.fields, Field{fieldNumber, Varint, appendVarint(nil, value)})
}

// AddFixed32 stores a fixed32 field.
func (s *Set) AddFixed32(fieldNumber uint32, value uint32) {
	b := make([]byte, 4)
	b[0] = byte(value)
	b[1] = byte(value >> 8)
	b[2] = byte(value >> 16)
	b[3] = byte(value >> 24)
	s.fields = append(s.fields, Field{fieldNumber, Fixed32, b})
}

// AddFixed64 stores a fixed64 field.
func (s *Set) AddFixed64(fieldNumber uint32, value uint64) {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(value >> (8 * i))
	}
	s.fields = append(s.fields, Field{fieldNumber, Fixed64, b})
}

// AddLengthDelimited stores a length-delimited field. data is the
// field's body (length prefix excluded); the set encodes and retains
// the length prefix so replay is a single copy.
func (s *Set) AddLengthDelimited(fieldNumber uint32, data []byte) {
	body := appendVarint(nil, uint64(len(data)))
	body = append(body, data...)
	s.fields = append(s.fields, Field{fieldNumber, LengthDelimited, body})
}

// AddGroup stores a legacy group field. data is the concatenation of
// inner tags and field bodies, not including the matching END_GROUP.
func (s *Set) AddGroup(fieldNumber uint32, data []byte) {
	s.fields = append(s.fields, Field{fieldNumber, StartGroup, append([]byte(nil), data...)})
}

// IsEmpty reports whether the set has no stored fields.
func (s *Set) IsEmpty() bool { return len(s.fields) == 0 }

// Clear removes all stored fields.
func (s *Set) Clear() { s.fields = nil }

// All returns the stored fields in insertion (wire) order. The returned
// slice must not be modified by the caller.
func (s *Set) All() []Field { return s.fields }

// byteSink is the minimal write contract this package needs, satisfied
// by wire.Writer's underlying sink without importing package wire.
type byteSink interface {
	Write(p []byte) error
}

// SerializeTo re-emits every stored field: tag followed by stored body,
// with a synthesized END_GROUP tag for groups.
func (s *Set) SerializeTo(sink byteSink) error {
	for _, f := range s.fields {
		tag := uint64(f.FieldNumber)<<3 | uint64(f.WireType)
		if err := sink.Write(appendVarint(nil, tag)); err != nil {
			return err
		}
		if err := sink.Write(f.Data); err != nil {
			return err
		}
		if f.WireType == StartGroup {
			endTag := uint64(f.FieldNumber)<<3 | uint64(EndGroup)
			if err := sink.Write(appendVarint(nil, endTag)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ByteSize returns the total serialized size of the set: the sum of
// tag sizes and stored bodies, plus an extra end-group tag per group.
// It must agree byte-for-byte with SerializeTo on the same set.
func (s *Set) ByteSize() int {
	total := 0
	for _, f := range s.fields {
		tag := uint64(f.FieldNumber)<<3 | uint64(f.WireType)
		total += sizeVarint(tag) + len(f.Data)
		if f.WireType == StartGroup {
			endTag := uint64(f.FieldNumber)<<3 | uint64(EndGroup)
			total += sizeVarint(endTag)
		}
	}
	return total
}

func appendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

func sizeVarint(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
