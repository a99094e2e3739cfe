// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"math"

	"github.com/jethome-iot/litepb-sub000/wire/unknownfields"
)

// Reader decodes Protocol Buffers wire format data from a ByteSource.
//
// Reader is used internally by generated-style pbcodec code and
// typically is not used directly by application code.
type Reader struct {
	src ByteSource
}

// NewReader wraps src for wire-format decoding.
func NewReader(src ByteSource) *Reader { return &Reader{src: src} }

func (r *Reader) Available() int { return r.src.Available() }
func (r *Reader) Position() int  { return r.src.Position() }

// ReadVarint reads a base-128 varint of up to 64 bits.
func (r *Reader) ReadVarint() (uint64, error) {
	var result uint64
	var shift uint
	var b [1]byte
	for i := 0; i < 10; i++ {
		if err := r.src.Read(b[:]); err != nil {
			return 0, err
		}
		if i == 9 && b[0] > 1 {
			return 0, ErrOverflow
		}
		result |= uint64(b[0]&0x7f) << shift
		if b[0]&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, ErrOverflow
}

// ReadFixed32 reads a little-endian 32-bit value.
func (r *Reader) ReadFixed32() (uint32, error) {
	var b [4]byte
	if err := r.src.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadFixed64 reads a little-endian 64-bit value.
func (r *Reader) ReadFixed64() (uint64, error) {
	var b [8]byte
	if err := r.src.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadInt32 reads a varint-encoded int32. A negative value was written
// sign-extended to 64 bits (a 10-byte varint); truncating the decoded
// uint64 to int32 recovers the original value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadInt64 reads a varint-encoded int64 (two's complement, no zigzag).
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadUint32 reads a varint-encoded uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadBool reads a varint-encoded bool: zero is false, anything else true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadSfixed32 reads a little-endian signed 32-bit value.
func (r *Reader) ReadSfixed32() (int32, error) {
	v, err := r.ReadFixed32()
	return int32(v), err
}

// ReadSfixed64 reads a little-endian signed 64-bit value.
func (r *Reader) ReadSfixed64() (int64, error) {
	v, err := r.ReadFixed64()
	return int64(v), err
}

// ReadFloat reads an IEEE-754 single-precision value.
func (r *Reader) ReadFloat() (float32, error) {
	v, err := r.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadDouble reads an IEEE-754 double-precision value.
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadSint32 reads a zigzag-encoded signed 32-bit integer.
func (r *Reader) ReadSint32() (int32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return ZigzagDecode32(uint32(v)), nil
}

// ReadSint64 reads a zigzag-encoded signed 64-bit integer.
func (r *Reader) ReadSint64() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return ZigzagDecode64(v), nil
}

// ReadBytes reads a varint length prefix followed by that many raw bytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	length, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if int64(length) > int64(r.src.Available()) {
		return nil, ErrTruncated
	}
	buf := make([]byte, length)
	if length > 0 {
		if err := r.src.Read(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ReadString reads a varint length prefix followed by UTF-8 text. The
// content is not validated as UTF-8: malformed text is accepted and
// round-tripped unchanged.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadTag reads and decodes a field tag.
func (r *Reader) ReadTag() (Tag, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return Tag{}, err
	}
	return ParseTag(v), nil
}

// SkipField advances past the body of a field of the given wire type
// without interpreting it.
func (r *Reader) SkipField(wireType Type) error {
	switch wireType {
	case Varint:
		_, err := r.ReadVarint()
		return err
	case Fixed32:
		return r.src.Skip(4)
	case Fixed64:
		return r.src.Skip(8)
	case LengthDelimited:
		length, err := r.ReadVarint()
		if err != nil {
			return err
		}
		if int64(length) > int64(r.src.Available()) {
			return ErrTruncated
		}
		return r.src.Skip(int(length))
	case StartGroup:
		return r.skipGroup()
	case EndGroup:
		return ErrMalformed
	default:
		return ErrMalformed
	}
}

// skipGroup skips a legacy group field: the inner tags/bodies up to and
// including the matching END_GROUP.
func (r *Reader) skipGroup() error {
	for {
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		if tag.WireType == EndGroup {
			return nil
		}
		if err := r.SkipField(tag.WireType); err != nil {
			return err
		}
	}
}

// CaptureUnknownField returns the wire body of a field of the given
// wire type, suitable for storage in an unknownfields.Set. Varints
// (values, length prefixes, and inner tags of a group) are returned
// re-encoded in shortest form; all other bytes are returned as read.
//
// For VARINT/FIXED32/FIXED64 the returned bytes are the value body
// alone (no length prefix). For LENGTH_DELIMITED the returned bytes
// include the length varint followed by the body. For START_GROUP the
// returned bytes are the concatenation of inner tags and bodies up to
// but not including the matching END_GROUP.
func (r *Reader) CaptureUnknownField(wireType Type) ([]byte, error) {
	switch wireType {
	case Varint:
		v, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		return AppendVarint(nil, v), nil
	case Fixed32:
		var b [4]byte
		if err := r.src.Read(b[:]); err != nil {
			return nil, err
		}
		return append([]byte(nil), b[:]...), nil
	case Fixed64:
		var b [8]byte
		if err := r.src.Read(b[:]); err != nil {
			return nil, err
		}
		return append([]byte(nil), b[:]...), nil
	case LengthDelimited:
		length, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		if int64(length) > int64(r.src.Available()) {
			return nil, ErrTruncated
		}
		body := make([]byte, length)
		if length > 0 {
			if err := r.src.Read(body); err != nil {
				return nil, err
			}
		}
		out := AppendVarint(nil, length)
		return append(out, body...), nil
	case StartGroup:
		return r.captureGroup()
	default:
		return nil, ErrMalformed
	}
}

func (r *Reader) captureGroup() ([]byte, error) {
	var out []byte
	for {
		tagVal, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		tag := ParseTag(tagVal)
		if tag.WireType == EndGroup {
			return out, nil
		}
		out = AppendVarint(out, tagVal)
		body, err := r.CaptureUnknownField(tag.WireType)
		if err != nil {
			return nil, err
		}
		out = append(out, body...)
	}
}

// SkipAndSave captures an unknown field and appends it directly to set.
func (r *Reader) SkipAndSave(fieldNumber uint32, wireType Type, set *unknownfields.Set) error {
	switch wireType {
	case Varint:
		v, err := r.ReadVarint()
		if err != nil {
			return err
		}
		set.AddVarint(fieldNumber, v)
		return nil
	case Fixed32:
		v, err := r.ReadFixed32()
		if err != nil {
			return err
		}
		set.AddFixed32(fieldNumber, v)
		return nil
	case Fixed64:
		v, err := r.ReadFixed64()
		if err != nil {
			return err
		}
		set.AddFixed64(fieldNumber, v)
		return nil
	case LengthDelimited:
		body, err := r.ReadBytes()
		if err != nil {
			return err
		}
		set.AddLengthDelimited(fieldNumber, body)
		return nil
	case StartGroup:
		body, err := r.captureGroup()
		if err != nil {
			return err
		}
		set.AddGroup(fieldNumber, body)
		return nil
	default:
		return ErrMalformed
	}
}
