// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wellknown

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
)

// wrapperSerializer builds the Serializer for a single-field{1} scalar
// wrapper type (StringValue, Int32Value, ...): absence or the default
// value both encode as zero bytes, matching spec §4.5.
func wrapperSerializer[T any](codec pbcodec.FieldCodec[T], isDefault func(T) bool) pbcodec.Serializer[T] {
	return pbcodec.Serializer[T]{
		Encode: func(v *T, w *wire.Writer) error {
			if isDefault(*v) {
				return nil
			}
			if err := w.WriteTag(1, codec.WireType); err != nil {
				return err
			}
			return codec.Write(w, *v)
		},
		Decode: func(v *T, r *wire.Reader) error {
			for r.Available() > 0 {
				tag, err := r.ReadTag()
				if err != nil {
					return err
				}
				if tag.FieldNumber == 1 {
					*v, err = codec.Read(r)
					if err != nil {
						return err
					}
					continue
				}
				if err := r.SkipField(tag.WireType); err != nil {
					return err
				}
			}
			return nil
		},
		ByteSize: func(v *T) int {
			if isDefault(*v) {
				return 0
			}
			return wire.SizeVarint(wire.MakeTag(1, codec.WireType)) + codec.Size(*v)
		},
	}
}

// StringValue mirrors google.protobuf.StringValue.
type StringValue = string

// StringValueSerializer is the Serializer for StringValue.
var StringValueSerializer = wrapperSerializer(pbcodec.StringCodec, func(v string) bool { return v == "" })

// BytesValue mirrors google.protobuf.BytesValue.
type BytesValue = []byte

// BytesValueSerializer is the Serializer for BytesValue.
var BytesValueSerializer = wrapperSerializer(pbcodec.BytesCodec, pbcodec.IsZeroBytes)

// Int32Value mirrors google.protobuf.Int32Value.
type Int32Value = int32

// Int32ValueSerializer is the Serializer for Int32Value.
var Int32ValueSerializer = wrapperSerializer(pbcodec.Int32Codec, pbcodec.IsZero[int32])

// Int64Value mirrors google.protobuf.Int64Value.
type Int64Value = int64

// Int64ValueSerializer is the Serializer for Int64Value.
var Int64ValueSerializer = wrapperSerializer(pbcodec.Int64Codec, pbcodec.IsZero[int64])

// UInt32Value mirrors google.protobuf.UInt32Value.
type UInt32Value = uint32

// UInt32ValueSerializer is the Serializer for UInt32Value.
var UInt32ValueSerializer = wrapperSerializer(pbcodec.Uint32Codec, pbcodec.IsZero[uint32])

// UInt64Value mirrors google.protobuf.UInt64Value.
type UInt64Value = uint64

// UInt64ValueSerializer is the Serializer for UInt64Value.
var UInt64ValueSerializer = wrapperSerializer(pbcodec.Uint64Codec, pbcodec.IsZero[uint64])

// FloatValue mirrors google.protobuf.FloatValue.
type FloatValue = float32

// FloatValueSerializer is the Serializer for FloatValue.
var FloatValueSerializer = wrapperSerializer(pbcodec.FloatCodec, pbcodec.IsZero[float32])

// DoubleValue mirrors google.protobuf.DoubleValue.
type DoubleValue = float64

// DoubleValueSerializer is the Serializer for DoubleValue.
var DoubleValueSerializer = wrapperSerializer(pbcodec.DoubleCodec, pbcodec.IsZero[float64])

// BoolValue mirrors google.protobuf.BoolValue.
type BoolValue = bool

// BoolValueSerializer is the Serializer for BoolValue.
var BoolValueSerializer = wrapperSerializer(pbcodec.BoolCodec, func(v bool) bool { return !v })
