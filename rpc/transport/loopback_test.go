// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"testing"
)

func TestLoopbackSendRecv(t *testing.T) {
	t.Parallel()

	a := NewLoopback()
	b := NewLoopback()
	Connect(a, b)

	if err := a.Send([]byte("ping"), 1, 2); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !b.Available() {
		t.Fatal("b should have data available after a.Send")
	}

	buf := make([]byte, 16)
	n, src, dst, err := b.Recv(buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if !bytes.Equal(buf[:n], []byte("ping")) {
		t.Fatalf("got %q", buf[:n])
	}
	if src != 1 || dst != 2 {
		t.Fatalf("src=%d dst=%d, want 1,2", src, dst)
	}
	if b.Available() {
		t.Fatal("b should have no data left after draining it")
	}
}

func TestLoopbackUnconnectedSendFails(t *testing.T) {
	t.Parallel()
	a := NewLoopback()
	if err := a.Send([]byte("x"), 1, 2); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestLoopbackConnIDsDiffer(t *testing.T) {
	t.Parallel()
	a := NewLoopback()
	b := NewLoopback()
	if a.ConnID() == b.ConnID() {
		t.Fatal("two independently created loopbacks should not share a connection id")
	}
}

func TestPacketLoopbackPreservesDatagramBoundaries(t *testing.T) {
	t.Parallel()

	a := NewPacketLoopback()
	b := NewPacketLoopback()
	ConnectPacket(a, b)

	if err := a.Send([]byte("one"), 1, 2); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := a.Send([]byte("two"), 1, 2); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 16)
	n, _, _, err := b.Recv(buf)
	if err != nil || !bytes.Equal(buf[:n], []byte("one")) {
		t.Fatalf("first datagram: got %q err=%v", buf[:n], err)
	}
	n, _, _, err = b.Recv(buf)
	if err != nil || !bytes.Equal(buf[:n], []byte("two")) {
		t.Fatalf("second datagram: got %q err=%v", buf[:n], err)
	}
	if b.Available() {
		t.Fatal("no datagrams should remain")
	}
}

func TestPacketLoopbackRecvOnEmptyReturnsZero(t *testing.T) {
	t.Parallel()
	a := NewPacketLoopback()
	b := NewPacketLoopback()
	ConnectPacket(a, b)

	n, _, _, err := b.Recv(make([]byte, 4))
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v, want 0,nil", n, err)
	}
}
