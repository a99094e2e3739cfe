// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pbcodec

import "github.com/jethome-iot/litepb-sub000/wire"

// packable reports whether a scalar wire type can be packed into a
// single length-delimited entry (varint/fixed32/fixed64 families).
// string and bytes (LengthDelimited) cannot be packed.
func packable(wireType wire.Type) bool {
	return wireType == wire.Varint || wireType == wire.Fixed32 || wireType == wire.Fixed64
}

// WriteRepeatedScalar writes values as a repeated scalar field. When
// packed is true and the element type is packable, all elements are
// written as a single length-delimited entry; otherwise one tag/value
// pair is written per element (spec §4.4).
func WriteRepeatedScalar[T any](w *wire.Writer, fieldNumber uint32, values []T, codec FieldCodec[T], packed bool) error {
	if len(values) == 0 {
		return nil
	}
	if packed && packable(codec.WireType) {
		size := 0
		for _, v := range values {
			size += codec.Size(v)
		}
		if err := w.WriteTag(fieldNumber, wire.LengthDelimited); err != nil {
			return err
		}
		if err := w.WriteVarint(uint64(size)); err != nil {
			return err
		}
		for _, v := range values {
			if err := codec.Write(w, v); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range values {
		if err := w.WriteTag(fieldNumber, codec.WireType); err != nil {
			return err
		}
		if err := codec.Write(w, v); err != nil {
			return err
		}
	}
	return nil
}

// SizeRepeatedScalar returns the byte size WriteRepeatedScalar would
// produce for the same arguments.
func SizeRepeatedScalar[T any](fieldNumber uint32, values []T, codec FieldCodec[T], packed bool) int {
	if len(values) == 0 {
		return 0
	}
	if packed && packable(codec.WireType) {
		size := 0
		for _, v := range values {
			size += codec.Size(v)
		}
		return wire.SizeVarint(wire.MakeTag(fieldNumber, wire.LengthDelimited)) + wire.SizeVarint(uint64(size)) + size
	}
	total := 0
	tagSize := wire.SizeVarint(wire.MakeTag(fieldNumber, codec.WireType))
	for _, v := range values {
		total += tagSize + codec.Size(v)
	}
	return total
}

// ReadRepeatedScalarField consumes one occurrence of a repeated scalar
// field (the tag has already been read as tag) and appends the decoded
// element(s) to values. Both packed (a single LengthDelimited entry
// holding concatenated elements) and unpacked (one tag per element)
// encodings are accepted regardless of how the field is configured,
// per spec §4.4.
func ReadRepeatedScalarField[T any](r *wire.Reader, tag wire.Tag, codec FieldCodec[T], values []T) ([]T, error) {
	if tag.WireType == wire.LengthDelimited && codec.WireType != wire.LengthDelimited {
		data, err := r.ReadBytes()
		if err != nil {
			return values, err
		}
		sub := wire.NewReader(wire.NewMemoryReader(data))
		for sub.Available() > 0 {
			v, err := codec.Read(sub)
			if err != nil {
				return values, err
			}
			values = append(values, v)
		}
		return values, nil
	}
	v, err := codec.Read(r)
	if err != nil {
		return values, err
	}
	return append(values, v), nil
}
