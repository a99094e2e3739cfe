// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"math"
)

// Writer encodes Protocol Buffers wire format data to a ByteSink.
//
// Writer is used internally by generated-style pbcodec code and
// typically is not used directly by application code.
type Writer struct {
	dst ByteSink
}

// NewWriter wraps dst for wire-format encoding.
func NewWriter(dst ByteSink) *Writer { return &Writer{dst: dst} }

func (w *Writer) Position() int { return w.dst.Position() }

// WriteVarint writes v as a base-128 varint.
func (w *Writer) WriteVarint(v uint64) error {
	var buf [10]byte
	n := 0
	for v >= 0x80 {
		buf[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	buf[n] = byte(v)
	n++
	return w.dst.Write(buf[:n])
}

// WriteInt32 writes a proto int32 value: negative values are sign
// extended to 64 bits before varint encoding (10 bytes); ReadInt32
// truncates the decoded value back to 32 bits.
func (w *Writer) WriteInt32(n int32) error {
	return w.WriteVarint(uint64(int64(n)))
}

// WriteInt64 writes a proto int64 value (two's complement, no zigzag).
func (w *Writer) WriteInt64(n int64) error {
	return w.WriteVarint(uint64(n))
}

// WriteUint32 writes a proto uint32 value.
func (w *Writer) WriteUint32(n uint32) error {
	return w.WriteVarint(uint64(n))
}

// WriteBool writes a proto bool value.
func (w *Writer) WriteBool(b bool) error {
	if b {
		return w.WriteVarint(1)
	}
	return w.WriteVarint(0)
}

// WriteFixed32 writes a little-endian 32-bit value.
func (w *Writer) WriteFixed32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.dst.Write(b[:])
}

// WriteFixed64 writes a little-endian 64-bit value.
func (w *Writer) WriteFixed64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.dst.Write(b[:])
}

// WriteSfixed32 writes a little-endian signed 32-bit value.
func (w *Writer) WriteSfixed32(v int32) error { return w.WriteFixed32(uint32(v)) }

// WriteSfixed64 writes a little-endian signed 64-bit value.
func (w *Writer) WriteSfixed64(v int64) error { return w.WriteFixed64(uint64(v)) }

// WriteFloat writes an IEEE-754 single-precision value.
func (w *Writer) WriteFloat(v float32) error { return w.WriteFixed32(math.Float32bits(v)) }

// WriteDouble writes an IEEE-754 double-precision value.
func (w *Writer) WriteDouble(v float64) error { return w.WriteFixed64(math.Float64bits(v)) }

// WriteSint32 writes a zigzag-encoded signed 32-bit integer.
func (w *Writer) WriteSint32(n int32) error { return w.WriteVarint(uint64(ZigzagEncode32(n))) }

// WriteSint64 writes a zigzag-encoded signed 64-bit integer.
func (w *Writer) WriteSint64(n int64) error { return w.WriteVarint(ZigzagEncode64(n)) }

// WriteBytes writes a varint length prefix followed by the raw bytes.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.WriteVarint(uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return w.dst.Write(b)
}

// WriteString writes a varint length prefix followed by the string's
// bytes. Content is not validated as UTF-8.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteVarint(uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return w.dst.Write([]byte(s))
}

// WriteTag writes a field tag for fieldNumber/wireType.
func (w *Writer) WriteTag(fieldNumber uint32, wireType Type) error {
	return w.WriteVarint(MakeTag(fieldNumber, wireType))
}

// WriteRaw writes pre-encoded bytes verbatim, e.g. a captured unknown
// field body.
func (w *Writer) WriteRaw(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return w.dst.Write(b)
}
