// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pbcodec

import "github.com/jethome-iot/litepb-sub000/wire"

// FieldCodec bundles the wire type and read/write/size operations for a
// scalar field type, so that generic repeated-field and map-field
// helpers can operate over any of them uniformly.
type FieldCodec[T any] struct {
	WireType wire.Type
	Size     func(T) int
	Write    func(*wire.Writer, T) error
	Read     func(*wire.Reader) (T, error)
}

// Int32Codec handles proto3 int32 (two's complement varint, sign
// extended when negative).
var Int32Codec = FieldCodec[int32]{
	WireType: wire.Varint,
	Size:     func(v int32) int { return wire.SizeVarint(uint64(int64(v))) },
	Write:    func(w *wire.Writer, v int32) error { return w.WriteInt32(v) },
	Read:     func(r *wire.Reader) (int32, error) { return r.ReadInt32() },
}

// Int64Codec handles proto3 int64.
var Int64Codec = FieldCodec[int64]{
	WireType: wire.Varint,
	Size:     func(v int64) int { return wire.SizeVarint(uint64(v)) },
	Write:    func(w *wire.Writer, v int64) error { return w.WriteInt64(v) },
	Read:     func(r *wire.Reader) (int64, error) { return r.ReadInt64() },
}

// Uint32Codec handles proto3 uint32.
var Uint32Codec = FieldCodec[uint32]{
	WireType: wire.Varint,
	Size:     func(v uint32) int { return wire.SizeVarint(uint64(v)) },
	Write:    func(w *wire.Writer, v uint32) error { return w.WriteUint32(v) },
	Read:     func(r *wire.Reader) (uint32, error) { return r.ReadUint32() },
}

// Uint64Codec handles proto3 uint64.
var Uint64Codec = FieldCodec[uint64]{
	WireType: wire.Varint,
	Size:     func(v uint64) int { return wire.SizeVarint(v) },
	Write:    func(w *wire.Writer, v uint64) error { return w.WriteVarint(v) },
	Read:     func(r *wire.Reader) (uint64, error) { return r.ReadVarint() },
}

// Sint32Codec handles proto3 sint32 (zigzag varint).
var Sint32Codec = FieldCodec[int32]{
	WireType: wire.Varint,
	Size:     func(v int32) int { return wire.SizeVarint(uint64(wire.ZigzagEncode32(v))) },
	Write:    func(w *wire.Writer, v int32) error { return w.WriteSint32(v) },
	Read:     func(r *wire.Reader) (int32, error) { return r.ReadSint32() },
}

// Sint64Codec handles proto3 sint64 (zigzag varint).
var Sint64Codec = FieldCodec[int64]{
	WireType: wire.Varint,
	Size:     func(v int64) int { return wire.SizeVarint(wire.ZigzagEncode64(v)) },
	Write:    func(w *wire.Writer, v int64) error { return w.WriteSint64(v) },
	Read:     func(r *wire.Reader) (int64, error) { return r.ReadSint64() },
}

// BoolCodec handles proto3 bool.
var BoolCodec = FieldCodec[bool]{
	WireType: wire.Varint,
	Size:     func(v bool) int { return 1 },
	Write:    func(w *wire.Writer, v bool) error { return w.WriteBool(v) },
	Read:     func(r *wire.Reader) (bool, error) { return r.ReadBool() },
}

// Fixed32Codec handles proto3 fixed32.
var Fixed32Codec = FieldCodec[uint32]{
	WireType: wire.Fixed32,
	Size:     func(v uint32) int { return 4 },
	Write:    func(w *wire.Writer, v uint32) error { return w.WriteFixed32(v) },
	Read:     func(r *wire.Reader) (uint32, error) { return r.ReadFixed32() },
}

// Sfixed32Codec handles proto3 sfixed32.
var Sfixed32Codec = FieldCodec[int32]{
	WireType: wire.Fixed32,
	Size:     func(v int32) int { return 4 },
	Write:    func(w *wire.Writer, v int32) error { return w.WriteSfixed32(v) },
	Read:     func(r *wire.Reader) (int32, error) { return r.ReadSfixed32() },
}

// Fixed64Codec handles proto3 fixed64.
var Fixed64Codec = FieldCodec[uint64]{
	WireType: wire.Fixed64,
	Size:     func(v uint64) int { return 8 },
	Write:    func(w *wire.Writer, v uint64) error { return w.WriteFixed64(v) },
	Read:     func(r *wire.Reader) (uint64, error) { return r.ReadFixed64() },
}

// Sfixed64Codec handles proto3 sfixed64.
var Sfixed64Codec = FieldCodec[int64]{
	WireType: wire.Fixed64,
	Size:     func(v int64) int { return 8 },
	Write:    func(w *wire.Writer, v int64) error { return w.WriteSfixed64(v) },
	Read:     func(r *wire.Reader) (int64, error) { return r.ReadSfixed64() },
}

// FloatCodec handles proto3 float.
var FloatCodec = FieldCodec[float32]{
	WireType: wire.Fixed32,
	Size:     func(v float32) int { return 4 },
	Write:    func(w *wire.Writer, v float32) error { return w.WriteFloat(v) },
	Read:     func(r *wire.Reader) (float32, error) { return r.ReadFloat() },
}

// DoubleCodec handles proto3 double.
var DoubleCodec = FieldCodec[float64]{
	WireType: wire.Fixed64,
	Size:     func(v float64) int { return 8 },
	Write:    func(w *wire.Writer, v float64) error { return w.WriteDouble(v) },
	Read:     func(r *wire.Reader) (float64, error) { return r.ReadDouble() },
}

// StringCodec handles proto3 string. Not packable: always one
// length-delimited entry per element in a repeated field.
var StringCodec = FieldCodec[string]{
	WireType: wire.LengthDelimited,
	Size:     func(v string) int { return wire.SizeVarint(uint64(len(v))) + len(v) },
	Write:    func(w *wire.Writer, v string) error { return w.WriteString(v) },
	Read:     func(r *wire.Reader) (string, error) { return r.ReadString() },
}

// BytesCodec handles proto3 bytes. Not packable.
var BytesCodec = FieldCodec[[]byte]{
	WireType: wire.LengthDelimited,
	Size:     func(v []byte) int { return wire.SizeVarint(uint64(len(v))) + len(v) },
	Write:    func(w *wire.Writer, v []byte) error { return w.WriteBytes(v) },
	Read:     func(r *wire.Reader) ([]byte, error) { return r.ReadBytes() },
}
