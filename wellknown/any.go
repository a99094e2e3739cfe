// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wellknown

import (
	"strings"

	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// DefaultTypeURLPrefix is prepended to a message's full type name by
// SetType when no prefix is supplied.
const DefaultTypeURLPrefix = "type.googleapis.com/"

// Any mirrors google.protobuf.Any: type_url string at field 1, value
// bytes at field 2.
type Any struct {
	TypeURL string
	Value   []byte
	Unknown unknownfields.Set
}

// Is reports whether a's type_url names fullTypeName, matched as the
// suffix after the last '/' in type_url.
func (a *Any) Is(fullTypeName string) bool {
	idx := strings.LastIndexByte(a.TypeURL, '/')
	name := a.TypeURL
	if idx >= 0 {
		name = a.TypeURL[idx+1:]
	}
	return name == fullTypeName
}

// SetType sets a's type_url to urlPrefix+fullTypeName. An empty
// urlPrefix defaults to DefaultTypeURLPrefix.
func (a *Any) SetType(fullTypeName string, urlPrefix string) {
	if urlPrefix == "" {
		urlPrefix = DefaultTypeURLPrefix
	}
	a.TypeURL = urlPrefix + fullTypeName
}

// AnySerializer is the Serializer for Any.
var AnySerializer = pbcodec.Serializer[Any]{
	Encode: func(v *Any, w *wire.Writer) error {
		if v.TypeURL != "" {
			if err := w.WriteTag(1, wire.LengthDelimited); err != nil {
				return err
			}
			if err := w.WriteString(v.TypeURL); err != nil {
				return err
			}
		}
		if len(v.Value) != 0 {
			if err := w.WriteTag(2, wire.LengthDelimited); err != nil {
				return err
			}
			if err := w.WriteBytes(v.Value); err != nil {
				return err
			}
		}
		return v.Unknown.SerializeTo(writerSink{w})
	},
	Decode: func(v *Any, r *wire.Reader) error {
		for r.Available() > 0 {
			tag, err := r.ReadTag()
			if err != nil {
				return err
			}
			switch tag.FieldNumber {
			case 1:
				v.TypeURL, err = r.ReadString()
			case 2:
				v.Value, err = r.ReadBytes()
			default:
				err = r.SkipAndSave(tag.FieldNumber, tag.WireType, &v.Unknown)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
	ByteSize: func(v *Any) int {
		size := 0
		if v.TypeURL != "" {
			size += wire.SizeVarint(wire.MakeTag(1, wire.LengthDelimited)) + wire.SizeVarint(uint64(len(v.TypeURL))) + len(v.TypeURL)
		}
		if len(v.Value) != 0 {
			size += wire.SizeVarint(wire.MakeTag(2, wire.LengthDelimited)) + wire.SizeVarint(uint64(len(v.Value))) + len(v.Value)
		}
		return size + v.Unknown.ByteSize()
	},
}
