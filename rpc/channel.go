// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rpc implements the bidirectional peer-to-peer RPC channel:
// framing an Envelope over a Transport, correlating responses to
// requests, enforcing per-call timeouts, and dispatching inbound
// requests and events to registered handlers (spec §1, §4.6-§4.10).
package rpc

import (
	"github.com/jethome-iot/litepb-sub000/internal/clock"
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/rpc/transport"
	"github.com/jethome-iot/litepb-sub000/rpcpb"
	"github.com/sirupsen/logrus"
)

// Channel drives one Transport: it owns the pending-call table, the
// handler table, the receive buffer, and the cooperative single-
// threaded Process loop. A Channel is not safe for concurrent use; one
// goroutine should own Process, Call, SendEvent and the On* helpers.
type Channel struct {
	tr        transport.Transport
	localAddr uint64
	idGen     *MessageIDGenerator
	pending   *pendingTable
	handlers  *handlerTable
	clock     clock.Clock
	logger    *logrus.Logger

	defaultTimeoutMs uint32

	rxBuf []byte
	rxPos int
}

// NewChannel returns a Channel driving tr, identifying itself as
// localAddr on the wire (spec §3's peer address space).
func NewChannel(tr transport.Transport, localAddr uint64, opts ...ChannelOption) *Channel {
	cfg := newChannelConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Channel{
		tr:               tr,
		localAddr:        localAddr,
		idGen:            NewMessageIDGenerator(),
		pending:          newPendingTable(),
		handlers:         newHandlerTable(),
		clock:            cfg.clock,
		logger:           cfg.logger,
		defaultTimeoutMs: cfg.defaultTimeoutMs,
		rxBuf:            make([]byte, cfg.initialBufferSize),
	}
}

// Process runs one iteration of the channel's cooperative loop: sweep
// expired calls, then pull and dispatch as many complete envelopes as
// the transport currently has buffered (spec §4.10). It must be called
// repeatedly (e.g. from an event loop or ticker) for the channel to
// make progress; it never blocks.
func (c *Channel) Process() {
	c.pending.sweepTimeouts(c.clock.NowMillis())
	c.receiveAndDispatch()
}

// Close flushes the pending-call table, firing every outstanding
// call's callback with TRANSPORT_ERROR (spec §4's cancellation-by-
// shutdown path: "dropping the channel...fires all pending callbacks
// with a TRANSPORT_ERROR"). It does not touch the handler table or
// close the underlying transport; callers that own the transport are
// responsible for closing it themselves. Close is not safe to call
// concurrently with Process.
func (c *Channel) Close() {
	c.pending.flushAll(&rpcpb.Response{ErrorCode: rpcpb.TransportError})
}

func (c *Channel) receiveAndDispatch() {
	if !c.tr.Available() {
		return
	}

	for c.tr.Available() {
		if c.rxPos >= len(c.rxBuf) {
			c.growRxBuf()
		}

		n, srcAddr, dstAddr, err := c.tr.Recv(c.rxBuf[c.rxPos:])
		if err != nil {
			if err == transport.ErrWouldBlock {
				break
			}
			c.logEntry().WithError(err).Warn("rpc: transport recv failed")
			break
		}
		if n == 0 {
			break
		}
		c.rxPos += n

		for {
			frame, consumed, ok := transport.DecodeFrame(c.tr.Kind(), c.rxBuf[:c.rxPos])
			if !ok {
				break
			}
			c.handleFrame(frame, srcAddr, dstAddr)
			copy(c.rxBuf, c.rxBuf[consumed:c.rxPos])
			c.rxPos -= consumed
		}
	}
}

// logEntry tags log lines with the transport's connection id when the
// concrete transport exposes one (Loopback, TCP, UDP all do), so
// multiple channels' log output can be told apart.
func (c *Channel) logEntry() *logrus.Entry {
	if idc, ok := c.tr.(interface{ ConnID() string }); ok {
		return c.logger.WithField("conn", idc.ConnID())
	}
	return c.logger.WithField("conn", "")
}

func (c *Channel) growRxBuf() {
	newSize := len(c.rxBuf) * 2
	if newSize <= len(c.rxBuf) {
		newSize = len(c.rxBuf) + defaultInitialBufferSize
	}
	grown := make([]byte, newSize)
	copy(grown, c.rxBuf[:c.rxPos])
	c.rxBuf = grown
}

func (c *Channel) handleFrame(frame []byte, srcAddr, dstAddr uint64) {
	env, err := pbcodec.Unmarshal(rpcpb.EnvelopeSerializer, frame)
	if err != nil {
		c.logger.WithError(err).Debug("rpc: dropping malformed envelope")
		return
	}
	if env.Version != rpcpb.ProtocolVersion {
		c.logger.WithField("version", env.Version).Debug("rpc: dropping envelope with unsupported protocol version")
		return
	}

	msgID := uint16(env.MsgID)
	switch env.MessageType {
	case rpcpb.Request:
		c.dispatchRequest(env, msgID, srcAddr)
	case rpcpb.MessageTypeResponse:
		c.dispatchResponse(env, msgID, srcAddr)
	case rpcpb.Event:
		c.dispatchEvent(env, srcAddr)
	default:
		c.logger.WithField("message_type", env.MessageType).Debug("rpc: dropping envelope with unknown message type")
	}
}

func (c *Channel) dispatchRequest(env *rpcpb.Envelope, msgID uint16, srcAddr uint64) {
	serviceID := uint16(env.ServiceID)
	key := HandlerKey{ServiceID: serviceID, MethodID: env.MethodID}
	fn, ok := c.handlers.lookup(key)
	if !ok {
		c.sendResponse(serviceID, msgID, srcAddr, &rpcpb.Response{ErrorCode: rpcpb.HandlerNotFound})
		return
	}
	fn(env.Payload, msgID, srcAddr)
}

func (c *Channel) dispatchResponse(env *rpcpb.Envelope, msgID uint16, srcAddr uint64) {
	call := c.pending.resolve(srcAddr, uint16(env.ServiceID), msgID)
	if call == nil {
		return
	}
	resp, err := pbcodec.Unmarshal(rpcpb.ResponseSerializer, env.Payload)
	if err != nil {
		resp = &rpcpb.Response{ErrorCode: rpcpb.ParseError}
	}
	call.respond(resp)
}

func (c *Channel) dispatchEvent(env *rpcpb.Envelope, srcAddr uint64) {
	key := HandlerKey{ServiceID: uint16(env.ServiceID), MethodID: env.MethodID}
	fn, ok := c.handlers.lookup(key)
	if !ok {
		return
	}
	fn(env.Payload, 0, srcAddr)
}

// sendResponse wraps resp in an envelope addressed back to dstAddr and
// sends it, logging (but not propagating) a transport failure: per
// spec §4.10 nothing at the channel level is fatal.
func (c *Channel) sendResponse(serviceID uint16, msgID uint16, dstAddr uint64, resp *rpcpb.Response) {
	payload, err := pbcodec.Marshal(rpcpb.ResponseSerializer, resp)
	if err != nil {
		c.logger.WithError(err).Warn("rpc: failed to serialize response")
		return
	}
	env := &rpcpb.Envelope{
		Version:     rpcpb.ProtocolVersion,
		ServiceID:   uint32(serviceID),
		MethodID:    0,
		MessageType: rpcpb.MessageTypeResponse,
		MsgID:       uint32(msgID),
		Payload:     payload,
	}
	if err := c.sendEnvelope(env, dstAddr); err != nil {
		c.logEntry().WithError(err).Warn("rpc: failed to send response")
	}
}

// sendEnvelope serializes env, frames it for the transport's Kind, and
// sends it from localAddr to dstAddr.
func (c *Channel) sendEnvelope(env *rpcpb.Envelope, dstAddr uint64) error {
	body, err := pbcodec.Marshal(rpcpb.EnvelopeSerializer, env)
	if err != nil {
		return err
	}
	frame := transport.EncodeFrame(c.tr.Kind(), body)
	return c.tr.Send(frame, c.localAddr, dstAddr)
}
