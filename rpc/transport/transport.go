// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the external contract a litepb RPC Channel
// consumes (spec §6, §4.6) and provides concrete transports: in-memory
// loopbacks for tests and examples, and TCP/UDP/UART transports for
// real links. Addressing is out-of-band: Send/Recv carry
// (src_addr, dst_addr) as parameters rather than inside the envelope,
// per spec §9's "addressing-in-transport" resolution of the Open
// Question.
package transport

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Kind distinguishes whether a transport preserves message boundaries.
type Kind uint8

const (
	// Stream transports (e.g. TCP, UART) have no intrinsic message
	// boundaries; the Channel adds a varint length prefix.
	Stream Kind = iota
	// Packet transports (e.g. UDP) preserve datagram boundaries; the
	// Channel reads/writes the envelope body directly.
	Packet
)

// Addressing sentinels (spec §3, §6).
const (
	Wildcard  uint64 = 0x0000_0000_0000_0000
	Broadcast uint64 = 0xFFFF_FFFF_FFFF_FFFF
)

// Transport is the external collaborator a Channel drives. Both stream
// and packet variants implement the same Go interface; Kind tells the
// Channel which framing mode to apply.
//
// Send must be all-or-nothing from the Channel's point of view: a
// partial send is treated as a transport error (spec §6). Recv may
// return any amount up to len(buf) for a stream transport, or exactly
// one envelope-sized packet (or zero) for a packet transport.
type Transport interface {
	// Kind reports whether this transport preserves message boundaries.
	Kind() Kind

	// Send transmits payload from srcAddr to dstAddr.
	Send(payload []byte, srcAddr, dstAddr uint64) error

	// Recv reads into buf, returning the number of bytes read and the
	// (src, dst) addresses observed for that read. Returning (0, ..., nil)
	// is permitted only as a transient condition while Available() is true.
	Recv(buf []byte) (n int, srcAddr, dstAddr uint64, err error)

	// Available reports whether a subsequent Recv is likely to return
	// data without blocking.
	Available() bool
}

// ErrWouldBlock means "no further progress without waiting"; it is a
// control-flow signal, not a failure, re-exported from iox so transport
// implementations and callers share one sentinel.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClosed is returned by Send on a Loopback or PacketLoopback that has
// not been connected to a peer.
var ErrClosed = errors.New("transport: closed")
