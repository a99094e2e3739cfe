// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/rpcpb"
)

// Call issues a unary request and returns once the request has been
// sent (or has failed to serialize/send). If serializing the request
// fails, callback runs before Call returns with PARSE_ERROR; if the
// send fails, with TRANSPORT_ERROR. Otherwise the result arrives later
// via callback, invoked from a future Channel.Process call with the
// decoded response or a TIMEOUT/PARSE_ERROR outcome, or from
// Channel.Close with TRANSPORT_ERROR (spec §4.7-§4.8). timeoutMs of 0
// uses the channel's default;
// dstAddr of transport.Wildcard or transport.Broadcast accepts a
// response from any peer.
func Call[Req, Resp any](
	ch *Channel,
	reqSer pbcodec.Serializer[Req],
	respSer pbcodec.Serializer[Resp],
	serviceID uint16,
	methodID uint32,
	req *Req,
	timeoutMs uint32,
	dstAddr uint64,
	callback func(Result[Resp]),
) {
	msgID := ch.idGen.GenerateFor(ch.localAddr, dstAddr)

	reqBytes, err := pbcodec.Marshal(reqSer, req)
	if err != nil {
		callback(Err[Resp](ParseError))
		return
	}

	env := &rpcpb.Envelope{
		Version:     rpcpb.ProtocolVersion,
		ServiceID:   uint32(serviceID),
		MethodID:    methodID,
		MessageType: rpcpb.Request,
		MsgID:       uint32(msgID),
		Payload:     reqBytes,
	}

	if err := ch.sendEnvelope(env, dstAddr); err != nil {
		callback(Err[Resp](TransportError))
		return
	}

	actualTimeout := timeoutMs
	if actualTimeout == 0 {
		actualTimeout = ch.defaultTimeoutMs
	}
	key := PendingCallKey{PeerAddr: peerKeyFor(dstAddr), ServiceID: serviceID, MsgID: msgID}
	ch.pending.put(key, &pendingCall{
		deadlineMs: ch.clock.NowMillis() + actualTimeout,
		respond: func(resp *rpcpb.Response) {
			callback(decodeResult(respSer, resp))
		},
	})
}

func decodeResult[Resp any](respSer pbcodec.Serializer[Resp], resp *rpcpb.Response) Result[Resp] {
	if resp.ErrorCode != rpcpb.OK {
		return Err[Resp](resp.ErrorCode)
	}
	if len(resp.ResponseData) == 0 {
		var zero Resp
		return Ok(zero)
	}
	value, err := pbcodec.Unmarshal(respSer, resp.ResponseData)
	if err != nil {
		return Err[Resp](ParseError)
	}
	return Ok(*value)
}

// SendEvent fires a one-shot event (message_type EVENT, msg_id 0):
// there is no response, success means only that the transport accepted
// the bytes (spec §4.7). dstAddr of transport.Broadcast delivers to
// every listening peer where the transport supports it.
func SendEvent[Req any](ch *Channel, reqSer pbcodec.Serializer[Req], serviceID uint16, methodID uint32, req *Req, dstAddr uint64) error {
	reqBytes, err := pbcodec.Marshal(reqSer, req)
	if err != nil {
		return err
	}
	env := &rpcpb.Envelope{
		Version:     rpcpb.ProtocolVersion,
		ServiceID:   uint32(serviceID),
		MethodID:    methodID,
		MessageType: rpcpb.Event,
		MsgID:       uint32(eventMsgID),
		Payload:     reqBytes,
	}
	return ch.sendEnvelope(env, dstAddr)
}

// OnRequest registers a handler for inbound REQUEST envelopes
// addressed to (serviceID, methodID). handler returns a Result[Resp];
// its error code (or a parse failure, or no handler being registered)
// becomes the RESPONSE envelope's error_code, per spec §4.9.
func OnRequest[Req, Resp any](
	ch *Channel,
	reqSer pbcodec.Serializer[Req],
	respSer pbcodec.Serializer[Resp],
	serviceID uint16,
	methodID uint32,
	handler func(srcAddr uint64, req Req) Result[Resp],
) {
	key := HandlerKey{ServiceID: serviceID, MethodID: methodID}
	ch.handlers.register(key, func(data []byte, msgID uint16, srcAddr uint64) {
		req, err := pbcodec.Unmarshal(reqSer, data)
		if err != nil {
			ch.sendResponse(serviceID, msgID, srcAddr, &rpcpb.Response{ErrorCode: rpcpb.ParseError})
			return
		}

		result := handler(srcAddr, *req)

		resp := &rpcpb.Response{ErrorCode: result.Error}
		if result.Error == rpcpb.OK {
			respBytes, err := pbcodec.Marshal(respSer, &result.Value)
			if err != nil {
				resp.ErrorCode = rpcpb.ParseError
			} else {
				resp.ResponseData = respBytes
			}
		}
		ch.sendResponse(serviceID, msgID, srcAddr, resp)
	})
}

// OnEvent registers a handler for inbound EVENT envelopes addressed to
// (serviceID, methodID). A malformed event is silently dropped; events
// never produce a response (spec §4.9).
func OnEvent[Req any](ch *Channel, reqSer pbcodec.Serializer[Req], serviceID uint16, methodID uint32, handler func(srcAddr uint64, req Req)) {
	key := HandlerKey{ServiceID: serviceID, MethodID: methodID}
	ch.handlers.register(key, func(data []byte, _ uint16, srcAddr uint64) {
		req, err := pbcodec.Unmarshal(reqSer, data)
		if err != nil {
			return
		}
		handler(srcAddr, *req)
	})
}
