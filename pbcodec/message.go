// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pbcodec

import "github.com/jethome-iot/litepb-sub000/wire"

// WriteEmbeddedMessage writes v as a length-delimited sub-message field
// at fieldNumber. A nil v writes nothing: presence of message-type
// fields is controlled by the generated code's own "is this set"
// check, not by this helper (spec §4.4).
func WriteEmbeddedMessage[T any](w *wire.Writer, fieldNumber uint32, s Serializer[T], v *T) error {
	if v == nil {
		return nil
	}
	size := s.ByteSize(v)
	if err := w.WriteTag(fieldNumber, wire.LengthDelimited); err != nil {
		return err
	}
	if err := w.WriteVarint(uint64(size)); err != nil {
		return err
	}
	return s.Encode(v, w)
}

// SizeEmbeddedMessage returns the byte size WriteEmbeddedMessage would
// produce for the same arguments.
func SizeEmbeddedMessage[T any](fieldNumber uint32, s Serializer[T], v *T) int {
	if v == nil {
		return 0
	}
	size := s.ByteSize(v)
	return wire.SizeVarint(wire.MakeTag(fieldNumber, wire.LengthDelimited)) + wire.SizeVarint(uint64(size)) + size
}

// ReadEmbeddedMessageInto decodes one length-delimited sub-message
// occurrence (the field's own tag has already been consumed) into v. If
// v already holds a value from an earlier occurrence of the same
// field, s.Decode must merge into it field-by-field rather than
// replacing it wholesale, per spec §4.4's message-field merge rule;
// that merge behavior lives in s.Decode itself (generated Decode
// functions merge by construction: scalars overwrite, repeated fields
// append, sub-messages recurse, unknowns append).
func ReadEmbeddedMessageInto[T any](r *wire.Reader, s Serializer[T], v *T) error {
	data, err := r.ReadBytes()
	if err != nil {
		return err
	}
	sub := wire.NewReader(wire.NewMemoryReader(data))
	return s.Decode(v, sub)
}
