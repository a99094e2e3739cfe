// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import "github.com/jethome-iot/litepb-sub000/wire"

// EncodeFrame prepends whatever delimiting a Kind needs around an
// already-serialized envelope. Stream transports have no intrinsic
// boundaries, so a varint byte length goes in front (spec §4.6);
// packet transports hand the payload to the datagram unchanged, since
// the underlying transport already preserves boundaries.
func EncodeFrame(kind Kind, payload []byte) []byte {
	if kind == Packet {
		return payload
	}
	out := wire.AppendVarint(nil, uint64(len(payload)))
	return append(out, payload...)
}

// DecodeFrame attempts to pull exactly one framed envelope out of the
// front of buf. It returns the envelope bytes, the number of bytes of
// buf consumed, and ok=true on success. ok=false with consumed=0 means
// "not enough data yet" (spec §4.10's incomplete-input case); the
// caller must leave buf untouched and wait for more bytes.
//
// A packet transport's buf is always exactly one already-delimited
// datagram, so it is returned whole.
func DecodeFrame(kind Kind, buf []byte) (frame []byte, consumed int, ok bool) {
	if kind == Packet {
		if len(buf) == 0 {
			return nil, 0, false
		}
		return buf, len(buf), true
	}

	length, n := readVarint(buf)
	if n == 0 {
		return nil, 0, false
	}
	total := n + int(length)
	if len(buf) < total {
		return nil, 0, false
	}
	return buf[n:total], total, true
}

// readVarint decodes a length-prefix varint from the front of buf,
// returning (value, bytesConsumed); bytesConsumed is 0 if buf does not
// yet hold a complete varint.
func readVarint(buf []byte) (uint64, int) {
	var value uint64
	var shift uint
	for i := 0; i < len(buf) && i < 10; i++ {
		b := buf[i]
		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, i + 1
		}
		shift += 7
	}
	return 0, 0
}
