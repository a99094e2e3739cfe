// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpcpb

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// ErrorCode is carried inside a RESPONSE envelope's payload (spec §7).
type ErrorCode uint32

const (
	OK              ErrorCode = 0
	Timeout         ErrorCode = 1
	ParseError      ErrorCode = 2
	TransportError  ErrorCode = 3
	HandlerNotFound ErrorCode = 4
	Unknown         ErrorCode = 5
)

func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "OK"
	case Timeout:
		return "TIMEOUT"
	case ParseError:
		return "PARSE_ERROR"
	case TransportError:
		return "TRANSPORT_ERROR"
	case HandlerNotFound:
		return "HANDLER_NOT_FOUND"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Response is the payload of a RESPONSE envelope (spec §6).
type Response struct {
	ErrorCode    ErrorCode
	ResponseData []byte
	Unknown      unknownfields.Set
}

// ResponseSerializer is the Serializer for Response.
var ResponseSerializer = pbcodec.Serializer[Response]{
	Encode: func(v *Response, w *wire.Writer) error {
		if v.ErrorCode != OK {
			if err := w.WriteTag(1, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(uint32(v.ErrorCode)); err != nil {
				return err
			}
		}
		if len(v.ResponseData) != 0 {
			if err := w.WriteTag(2, wire.LengthDelimited); err != nil {
				return err
			}
			if err := w.WriteBytes(v.ResponseData); err != nil {
				return err
			}
		}
		return v.Unknown.SerializeTo(envelopeSink{w})
	},
	Decode: func(v *Response, r *wire.Reader) error {
		for r.Available() > 0 {
			tag, err := r.ReadTag()
			if err != nil {
				return err
			}
			switch tag.FieldNumber {
			case 1:
				var ec uint32
				ec, err = r.ReadUint32()
				v.ErrorCode = ErrorCode(ec)
			case 2:
				v.ResponseData, err = r.ReadBytes()
			default:
				err = r.SkipAndSave(tag.FieldNumber, tag.WireType, &v.Unknown)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
	ByteSize: func(v *Response) int {
		size := 0
		if v.ErrorCode != OK {
			size += wire.SizeVarint(wire.MakeTag(1, wire.Varint)) + wire.SizeVarint(uint64(v.ErrorCode))
		}
		if len(v.ResponseData) != 0 {
			size += wire.SizeVarint(wire.MakeTag(2, wire.LengthDelimited)) + wire.SizeVarint(uint64(len(v.ResponseData))) + len(v.ResponseData)
		}
		return size + v.Unknown.ByteSize()
	},
}
