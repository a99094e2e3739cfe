// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"net"
	"testing"
	"time"
)

func TestTCPSendRecv(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	acceptedCh := make(chan net.Conn, 1)
	errCh := make(chan error, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			errCh <- err
			return
		}
		acceptedCh <- c
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	var server net.Conn
	select {
	case server = <-acceptedCh:
	case err := <-errCh:
		t.Fatalf("Accept: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Accept")
	}
	defer server.Close()

	tc := NewTCP(client, 1, 2)
	ts := NewTCP(server, 2, 1)

	if tc.Kind() != Stream {
		t.Fatal("TCP must report Kind() == Stream")
	}

	if err := tc.Send(EncodeFrame(Stream, []byte("hello")), 1, 2); err != nil {
		t.Fatalf("Send: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !ts.Available() && time.Now().Before(deadline) {
	}
	if !ts.Available() {
		t.Fatal("server-side transport never saw the sent bytes")
	}

	buf := make([]byte, 64)
	n, _, _, err := ts.Recv(buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	frame, _, ok := DecodeFrame(Stream, buf[:n])
	if !ok || string(frame) != "hello" {
		t.Fatalf("got frame=%q ok=%v", frame, ok)
	}
}

func TestTCPRecvWouldBlockWhenIdle(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	acceptedCh := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			acceptedCh <- c
		}
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	server := <-acceptedCh
	defer server.Close()

	ts := NewTCP(server, 2, 1)
	if ts.Available() {
		t.Fatal("a fresh idle connection should not report Available")
	}

	buf := make([]byte, 16)
	_, _, _, err = ts.Recv(buf)
	if err != ErrWouldBlock {
		t.Fatalf("got %v, want ErrWouldBlock", err)
	}
}
