// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build linux

// UART wraps a POSIX serial device as a Stream Transport. The
// reference implementation targets Arduino's HardwareSerial, which has
// no Go equivalent; this is the native-Linux analogue (Raspberry Pi,
// BeagleBone, and similar embedded-Linux boards the reference
// implementation's own docs call out), driving the tty directly
// through termios rather than a board abstraction layer.
package transport

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// baud rate constants accepted by OpenUART, named after their termios
// speed_t symbols.
const (
	Baud9600   = unix.B9600
	Baud19200  = unix.B19200
	Baud38400  = unix.B38400
	Baud57600  = unix.B57600
	Baud115200 = unix.B115200
)

// UART is a Stream Transport over a raw-mode serial device.
type UART struct {
	f        *os.File
	fd       int
	localID  uint64
	peerID   uint64
	pollWait time.Duration
}

// OpenUART opens path (e.g. "/dev/ttyUSB0"), puts it into raw,
// non-canonical mode at the given termios baud constant, and returns a
// Transport ready for a Channel. localAddr/peerAddr are the litepb
// addresses this link carries, independent of any device identity.
func OpenUART(path string, baud uint32, localAddr, peerAddr uint64) (*UART, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}
	fd := int(f.Fd())

	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	t.Cflag &^= unix.PARENB | unix.CSTOPB | unix.CSIZE | unix.CRTSCTS | unix.CBAUD
	t.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD | baud
	t.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ISIG
	t.Iflag &^= unix.IXON | unix.IXOFF | unix.IXANY | unix.ICRNL
	t.Oflag &^= unix.OPOST
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0
	t.Ispeed = baud
	t.Ospeed = baud

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, t); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &UART{f: f, fd: fd, localID: localAddr, peerID: peerAddr, pollWait: time.Millisecond}, nil
}

func (u *UART) Kind() Kind { return Stream }

func (u *UART) Send(payload []byte, srcAddr, dstAddr uint64) error {
	off := 0
	for off < len(payload) {
		n, err := unix.Write(u.fd, payload[off:])
		if n > 0 {
			off += n
		}
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				continue
			}
			return err
		}
	}
	return nil
}

func (u *UART) Recv(buf []byte) (int, uint64, uint64, error) {
	if !u.waitReadable() {
		return 0, u.peerID, u.localID, ErrWouldBlock
	}
	n, err := unix.Read(u.fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return 0, u.peerID, u.localID, ErrWouldBlock
		}
		return n, u.peerID, u.localID, err
	}
	return n, u.peerID, u.localID, nil
}

func (u *UART) Available() bool {
	return u.waitReadable()
}

func (u *UART) Close() error {
	return u.f.Close()
}

// waitReadable polls the descriptor with a short timeout instead of
// blocking indefinitely, the termios analogue of the reference
// implementation's Serial.available() check.
func (u *UART) waitReadable() bool {
	fds := []unix.PollFd{{Fd: int32(u.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(u.pollWait/time.Millisecond))
	if err != nil || n <= 0 {
		return false
	}
	return fds[0].Revents&unix.POLLIN != 0
}
