// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package wellknown implements the built-in serializers for Google's
// well-known protobuf types with fixed wire layouts (spec §4.5):
// Empty, Timestamp, Duration, the scalar wrapper types, and Any.
package wellknown

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// Empty has no known fields; only its unknown-field set round-trips.
type Empty struct {
	Unknown unknownfields.Set
}

// EmptySerializer is the Serializer for Empty.
var EmptySerializer = pbcodec.Serializer[Empty]{
	Encode: func(v *Empty, w *wire.Writer) error {
		return v.Unknown.SerializeTo(writerSink{w})
	},
	Decode: func(v *Empty, r *wire.Reader) error {
		for r.Available() > 0 {
			tag, err := r.ReadTag()
			if err != nil {
				return err
			}
			if err := r.SkipAndSave(tag.FieldNumber, tag.WireType, &v.Unknown); err != nil {
				return err
			}
		}
		return nil
	},
	ByteSize: func(v *Empty) int {
		return v.Unknown.ByteSize()
	},
}

// writerSink adapts *wire.Writer to the byteSink contract unknownfields
// expects, so unknown fields can be re-emitted through the same writer
// as known fields.
type writerSink struct{ w *wire.Writer }

func (s writerSink) Write(p []byte) error { return s.w.WriteRaw(p) }
