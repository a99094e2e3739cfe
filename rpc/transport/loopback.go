// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"sync"

	"github.com/rs/xid"
)

// Loopback is an in-process Stream transport connecting exactly two
// endpoints, used by tests in place of a real link. Two Loopbacks must be linked with Connect before use.
type Loopback struct {
	mu     sync.Mutex
	peer   *Loopback
	rx     []byte
	src    uint64
	dst    uint64
	connID xid.ID
}

// NewLoopback returns an unconnected endpoint.
func NewLoopback() *Loopback {
	return &Loopback{connID: xid.New()}
}

// ConnID returns a short identifier for this endpoint, useful for
// correlating log lines across a Channel's transport when several
// loopbacks exist in the same process.
func (l *Loopback) ConnID() string { return l.connID.String() }

// Connect links a and b so that Send on one makes bytes available to
// Recv on the other.
func Connect(a, b *Loopback) {
	a.peer = b
	b.peer = a
}

func (l *Loopback) Kind() Kind { return Stream }

func (l *Loopback) Send(payload []byte, srcAddr, dstAddr uint64) error {
	if l.peer == nil {
		return ErrClosed
	}
	l.peer.mu.Lock()
	defer l.peer.mu.Unlock()
	l.peer.src = srcAddr
	l.peer.dst = dstAddr
	l.peer.rx = append(l.peer.rx, payload...)
	return nil
}

func (l *Loopback) Recv(buf []byte) (int, uint64, uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := copy(buf, l.rx)
	l.rx = l.rx[n:]
	return n, l.src, l.dst, nil
}

func (l *Loopback) Available() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rx) > 0
}

// PacketLoopback is the Packet-kind counterpart: every Send enqueues
// one whole datagram, and each Recv returns at most one datagram,
// preserving message boundaries the way a real UDP socket pair would.
type PacketLoopback struct {
	mu       sync.Mutex
	peer     *PacketLoopback
	datagram [][]byte
	src      []uint64
	dst      []uint64
	connID   xid.ID
}

// NewPacketLoopback returns an unconnected endpoint.
func NewPacketLoopback() *PacketLoopback {
	return &PacketLoopback{connID: xid.New()}
}

// ConnID returns a short identifier for this endpoint.
func (l *PacketLoopback) ConnID() string { return l.connID.String() }

// ConnectPacket links a and b so datagrams sent on one arrive on the
// other's Recv queue.
func ConnectPacket(a, b *PacketLoopback) {
	a.peer = b
	b.peer = a
}

func (l *PacketLoopback) Kind() Kind { return Packet }

func (l *PacketLoopback) Send(payload []byte, srcAddr, dstAddr uint64) error {
	if l.peer == nil {
		return ErrClosed
	}
	cp := append([]byte(nil), payload...)
	l.peer.mu.Lock()
	defer l.peer.mu.Unlock()
	l.peer.datagram = append(l.peer.datagram, cp)
	l.peer.src = append(l.peer.src, srcAddr)
	l.peer.dst = append(l.peer.dst, dstAddr)
	return nil
}

func (l *PacketLoopback) Recv(buf []byte) (int, uint64, uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.datagram) == 0 {
		return 0, 0, 0, nil
	}
	pkt := l.datagram[0]
	src := l.src[0]
	dst := l.dst[0]
	l.datagram = l.datagram[1:]
	l.src = l.src[1:]
	l.dst = l.dst[1:]
	n := copy(buf, pkt)
	return n, src, dst, nil
}

func (l *PacketLoopback) Available() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.datagram) > 0
}
