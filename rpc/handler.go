// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

// HandlerKey identifies one registered request or event handler
// (spec §4.9).
type HandlerKey struct {
	ServiceID uint16
	MethodID  uint32
}

// handlerFunc is invoked by the dispatch step of Process for every
// inbound REQUEST or EVENT envelope matching its HandlerKey. data is
// the envelope's raw payload; msgID and srcAddr let a request handler
// correlate and address its response. Event handlers ignore both.
type handlerFunc func(data []byte, msgID uint16, srcAddr uint64)

// handlerTable maps (service_id, method_id) to the closure that
// decodes, invokes the user handler, and (for requests) sends the
// response.
type handlerTable struct {
	handlers map[HandlerKey]handlerFunc
}

func newHandlerTable() *handlerTable {
	return &handlerTable{handlers: make(map[HandlerKey]handlerFunc)}
}

func (t *handlerTable) register(key HandlerKey, fn handlerFunc) {
	t.handlers[key] = fn
}

func (t *handlerTable) lookup(key HandlerKey) (handlerFunc, bool) {
	fn, ok := t.handlers[key]
	return fn, ok
}
