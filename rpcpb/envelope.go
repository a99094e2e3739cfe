// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rpcpb holds the wire schema shared by every litepb-sub000
// RPC peer: RpcEnvelope and RpcResponse (spec §6). These are ordinary
// pbcodec.Serializer-conformant message types, hand-written in place of
// what a .proto code generator would emit — the generator itself is
// out of scope (spec §1).
package rpcpb

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// MessageType discriminates an envelope's payload interpretation.
type MessageType uint32

const (
	MessageTypeUnspecified MessageType = 0
	Request                MessageType = 1
	MessageTypeResponse    MessageType = 2
	Event                  MessageType = 3
)

// Envelope is the outer message wrapping every RPC payload (spec §6).
// Field numbers are fixed and part of the wire protocol: changing them
// breaks interop with any other litepb implementation.
type Envelope struct {
	Version     uint32
	ServiceID   uint32
	MethodID    uint32
	MessageType MessageType
	MsgID       uint32
	Payload     []byte
	Unknown     unknownfields.Set
}

// ProtocolVersion is the only version this build emits and accepts.
const ProtocolVersion = 1

// EnvelopeSerializer is the Serializer for Envelope.
var EnvelopeSerializer = pbcodec.Serializer[Envelope]{
	Encode: func(v *Envelope, w *wire.Writer) error {
		if v.Version != 0 {
			if err := w.WriteTag(1, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(v.Version); err != nil {
				return err
			}
		}
		if v.ServiceID != 0 {
			if err := w.WriteTag(2, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(v.ServiceID); err != nil {
				return err
			}
		}
		if v.MethodID != 0 {
			if err := w.WriteTag(3, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(v.MethodID); err != nil {
				return err
			}
		}
		if v.MessageType != MessageTypeUnspecified {
			if err := w.WriteTag(4, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(uint32(v.MessageType)); err != nil {
				return err
			}
		}
		if v.MsgID != 0 {
			if err := w.WriteTag(5, wire.Varint); err != nil {
				return err
			}
			if err := w.WriteUint32(v.MsgID); err != nil {
				return err
			}
		}
		if len(v.Payload) != 0 {
			if err := w.WriteTag(6, wire.LengthDelimited); err != nil {
				return err
			}
			if err := w.WriteBytes(v.Payload); err != nil {
				return err
			}
		}
		return v.Unknown.SerializeTo(envelopeSink{w})
	},
	Decode: func(v *Envelope, r *wire.Reader) error {
		for r.Available() > 0 {
			tag, err := r.ReadTag()
			if err != nil {
				return err
			}
			switch tag.FieldNumber {
			case 1:
				v.Version, err = r.ReadUint32()
			case 2:
				v.ServiceID, err = r.ReadUint32()
			case 3:
				v.MethodID, err = r.ReadUint32()
			case 4:
				var mt uint32
				mt, err = r.ReadUint32()
				v.MessageType = MessageType(mt)
			case 5:
				v.MsgID, err = r.ReadUint32()
			case 6:
				v.Payload, err = r.ReadBytes()
			default:
				err = r.SkipAndSave(tag.FieldNumber, tag.WireType, &v.Unknown)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
	ByteSize: func(v *Envelope) int {
		size := 0
		if v.Version != 0 {
			size += wire.SizeVarint(wire.MakeTag(1, wire.Varint)) + wire.SizeVarint(uint64(v.Version))
		}
		if v.ServiceID != 0 {
			size += wire.SizeVarint(wire.MakeTag(2, wire.Varint)) + wire.SizeVarint(uint64(v.ServiceID))
		}
		if v.MethodID != 0 {
			size += wire.SizeVarint(wire.MakeTag(3, wire.Varint)) + wire.SizeVarint(uint64(v.MethodID))
		}
		if v.MessageType != MessageTypeUnspecified {
			size += wire.SizeVarint(wire.MakeTag(4, wire.Varint)) + wire.SizeVarint(uint64(v.MessageType))
		}
		if v.MsgID != 0 {
			size += wire.SizeVarint(wire.MakeTag(5, wire.Varint)) + wire.SizeVarint(uint64(v.MsgID))
		}
		if len(v.Payload) != 0 {
			size += wire.SizeVarint(wire.MakeTag(6, wire.LengthDelimited)) + wire.SizeVarint(uint64(len(v.Payload))) + len(v.Payload)
		}
		return size + v.Unknown.ByteSize()
	},
}

type envelopeSink struct{ w *wire.Writer }

func (s envelopeSink) Write(p []byte) error { return s.w.WriteRaw(p) }
