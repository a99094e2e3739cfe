// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

import "github.com/jethome-iot/litepb-sub000/rpcpb"

// PendingCallKey identifies one outstanding call (spec §4.8). PeerAddr
// is the expected responder: for a directed call it is the
// destination address, for a call to the wildcard or broadcast
// sentinels it is the wildcard sentinel so any responder matches.
type PendingCallKey struct {
	PeerAddr  uint64
	ServiceID uint16
	MsgID     uint16
}

// pendingCall is one in-flight request awaiting a response or a
// timeout. respond is invoked exactly once: from the decode loop on a
// matching RESPONSE envelope, from the timeout sweep, or from flushAll.
type pendingCall struct {
	deadlineMs uint32
	respond    func(*rpcpb.Response)
}

// pendingTable tracks calls awaiting a response, keyed by (peer,
// service, msg_id). Lookup falls back to the wildcard peer address on
// a miss, so a call placed to an unspecified destination still
// resolves when any peer answers.
type pendingTable struct {
	calls map[PendingCallKey]*pendingCall
}

func newPendingTable() *pendingTable {
	return &pendingTable{calls: make(map[PendingCallKey]*pendingCall)}
}

func (t *pendingTable) put(key PendingCallKey, call *pendingCall) {
	t.calls[key] = call
}

// resolve looks up a pending call by (srcAddr, serviceID, msgID),
// falling back to the wildcard peer address, removes it if found and
// returns it.
func (t *pendingTable) resolve(srcAddr uint64, serviceID uint16, msgID uint16) *pendingCall {
	key := PendingCallKey{PeerAddr: srcAddr, ServiceID: serviceID, MsgID: msgID}
	if call, ok := t.calls[key]; ok {
		delete(t.calls, key)
		return call
	}
	wildKey := PendingCallKey{PeerAddr: transportWildcard, ServiceID: serviceID, MsgID: msgID}
	if call, ok := t.calls[wildKey]; ok {
		delete(t.calls, wildKey)
		return call
	}
	return nil
}

// sweepTimeouts fires and removes every call whose deadline has
// passed, per the documented semantics that a callback fires exactly
// once and any later response for the same key is silently dropped.
func (t *pendingTable) sweepTimeouts(nowMs uint32) {
	for key, call := range t.calls {
		if nowMs >= call.deadlineMs {
			delete(t.calls, key)
			call.respond(&rpcpb.Response{ErrorCode: rpcpb.Timeout})
		}
	}
}

// flushAll fires every still-outstanding call's callback with resp and
// empties the table. Used for cancellation-by-shutdown (spec §4's
// PendingCall destruction path (c): "channel shutdown"), where every
// pending call must be destroyed exactly once, same as a timeout or a
// matched response.
func (t *pendingTable) flushAll(resp *rpcpb.Response) {
	for key, call := range t.calls {
		delete(t.calls, key)
		call.respond(resp)
	}
}
