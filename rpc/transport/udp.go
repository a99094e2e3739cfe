// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"net"
	"time"

	"github.com/rs/xid"
)

// UDP wraps a *net.UDPConn as a Packet Transport. Each Send writes one
// whole datagram; each Recv returns at most one datagram, matching the
// reference implementation's PacketTransport contract that UDP
// preserves message boundaries and never partially delivers a packet.
//
// Available cannot peek a UDP socket without consuming the datagram,
// so it performs the read itself and holds the result in a one-packet
// lookahead buffer for the next Recv to return.
type UDP struct {
	conn       *net.UDPConn
	peerAddr   *net.UDPAddr // non-nil in client mode: every Send targets it
	localID    uint64
	peerID     uint64
	pollWait   time.Duration
	lastRemote *net.UDPAddr

	pending       []byte
	pendingRemote *net.UDPAddr
	connID        xid.ID
}

// ConnID returns a short identifier for this socket, useful for
// correlating log lines when a process holds several UDP sockets.
func (u *UDP) ConnID() string { return u.connID.String() }

// NewUDP wraps conn. If peerAddr is non-nil, Send always targets it
// (client mode); otherwise Send requires the caller to have already
// learned a peer via Recv (server mode), mirroring the header's
// documented "requires prior recv() to learn peer address" contract.
func NewUDP(conn *net.UDPConn, peerAddr *net.UDPAddr, localAddr, peerID uint64) *UDP {
	return &UDP{conn: conn, peerAddr: peerAddr, localID: localAddr, peerID: peerID, pollWait: time.Millisecond, connID: xid.New()}
}

func (u *UDP) Kind() Kind { return Packet }

func (u *UDP) Send(payload []byte, srcAddr, dstAddr uint64) error {
	_ = u.conn.SetWriteDeadline(time.Time{})
	if u.peerAddr != nil {
		if u.conn.RemoteAddr() != nil {
			_, err := u.conn.Write(payload)
			return err
		}
		_, err := u.conn.WriteToUDP(payload, u.peerAddr)
		return err
	}
	_, err := u.conn.WriteToUDP(payload, u.lastRemote)
	return err
}

func (u *UDP) Recv(buf []byte) (int, uint64, uint64, error) {
	if u.pending != nil {
		n := copy(buf, u.pending)
		u.pending = nil
		u.lastRemote = u.pendingRemote
		return n, u.peerID, u.localID, nil
	}

	_ = u.conn.SetReadDeadline(time.Now().Add(u.pollWait))
	n, remote, err := u.conn.ReadFromUDP(buf)
	if err != nil {
		if isTimeout(err) {
			return 0, u.peerID, u.localID, ErrWouldBlock
		}
		return n, u.peerID, u.localID, err
	}
	u.lastRemote = remote
	return n, u.peerID, u.localID, nil
}

func (u *UDP) Available() bool {
	if u.pending != nil {
		return true
	}
	var probe [65536]byte
	_ = u.conn.SetReadDeadline(time.Now().Add(u.pollWait))
	n, remote, err := u.conn.ReadFromUDP(probe[:])
	if err != nil {
		return false
	}
	u.pending = append([]byte(nil), probe[:n]...)
	u.pendingRemote = remote
	return true
}
