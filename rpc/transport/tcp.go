// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bufio"
	"errors"
	"net"
	"time"

	"github.com/rs/xid"
)

// TCP wraps a net.Conn as a Stream Transport (spec §6). It is the
// native-platform stand-in for a real point-to-point link: one
// Channel per accepted connection, addresses supplied by the caller
// rather than derived from the socket (litepb addressing is an
// application concept, not a network one).
//
// Go has no direct equivalent of select()-then-recv on a single
// socket. Available and Recv instead go through a bufio.Reader so a
// deadline-bounded peek can test for data without losing it: Available
// arms a near-zero deadline and calls Peek, mapping a timeout to "not
// ready" the way the reference implementation's select() would.
type TCP struct {
	conn     net.Conn
	br       *bufio.Reader
	localID  uint64
	peerID   uint64
	pollWait time.Duration
	connID   xid.ID
}

// ConnID returns a short identifier for this connection, useful for
// correlating log lines when a process holds several TCP links.
func (t *TCP) ConnID() string { return t.connID.String() }

// NewTCP wraps conn. localAddr/peerAddr are the litepb addresses to
// report on every Send/Recv; they are independent of the socket's own
// IP addressing.
func NewTCP(conn net.Conn, localAddr, peerAddr uint64) *TCP {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return &TCP{conn: conn, br: bufio.NewReader(conn), localID: localAddr, peerID: peerAddr, pollWait: time.Millisecond, connID: xid.New()}
}

func (t *TCP) Kind() Kind { return Stream }

func (t *TCP) Send(payload []byte, srcAddr, dstAddr uint64) error {
	_ = t.conn.SetWriteDeadline(time.Time{})
	off := 0
	for off < len(payload) {
		n, err := t.conn.Write(payload[off:])
		if n > 0 {
			off += n
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *TCP) Recv(buf []byte) (int, uint64, uint64, error) {
	_ = t.conn.SetReadDeadline(time.Now().Add(t.pollWait))
	n, err := t.br.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return n, t.peerID, t.localID, ErrWouldBlock
		}
		return n, t.peerID, t.localID, err
	}
	return n, t.peerID, t.localID, nil
}

func (t *TCP) Available() bool {
	if t.br.Buffered() > 0 {
		return true
	}
	_ = t.conn.SetReadDeadline(time.Now().Add(t.pollWait))
	_, err := t.br.Peek(1)
	return err == nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
