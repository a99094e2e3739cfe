// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wellknown

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// Duration mirrors google.protobuf.Duration: seconds as varint int64 at
// field 1, nanos as varint int32 at field 2.
type Duration struct {
	Seconds int64
	Nanos   int32
	Unknown unknownfields.Set
}

// DurationSerializer is the Serializer for Duration.
var DurationSerializer = pbcodec.Serializer[Duration]{
	Encode: func(v *Duration, w *wire.Writer) error {
		if v.Seconds != 0 {
			if err := w.WriteTag(1, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteInt64(v.Seconds); err != nil {
				return err
			}
		}
		if v.Nanos != 0 {
			if err := w.WriteTag(2, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteInt32(v.Nanos); err != nil {
				return err
			}
		}
		return v.Unknown.SerializeTo(writerSink{w})
	},
	Decode: func(v *Duration, r *wire.Reader) error {
		for r.Available() > 0 {
			tag, err := r.ReadTag()
			if err != nil {
				return err
			}
			switch tag.FieldNumber {
			case 1:
				v.Seconds, err = r.ReadInt64()
			case 2:
				v.Nanos, err = r.ReadInt32()
			default:
				err = r.SkipAndSave(tag.FieldNumber, tag.WireType, &v.Unknown)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
	ByteSize: func(v *Duration) int {
		size := 0
		if v.Seconds != 0 {
			size += wire.SizeVarint(wire.MakeTag(1, wire.Varint)) + wire.SizeVarint(uint64(v.Seconds))
		}
		if v.Nanos != 0 {
			size += wire.SizeVarint(wire.MakeTag(2, wire.Varint)) + wire.SizeVarint(uint64(int64(v.Nanos)))
		}
		return size + v.Unknown.ByteSize()
	},
}
