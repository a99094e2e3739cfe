// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

import "github.com/jethome-iot/litepb-sub000/rpcpb"

// ErrorCode is the API-facing outcome of a call or a request handler.
// It is the same value space as rpcpb.ErrorCode carried on the wire;
// kept as a distinct name so callers of this package never import
// rpcpb directly for everyday use.
type ErrorCode = rpcpb.ErrorCode

const (
	OK              = rpcpb.OK
	Timeout         = rpcpb.Timeout
	ParseError      = rpcpb.ParseError
	TransportError  = rpcpb.TransportError
	HandlerNotFound = rpcpb.HandlerNotFound
	Unknown         = rpcpb.Unknown
)

// Result is what a Call callback or an OnRequest handler produces:
// either a Value, when Error is OK, or just an Error otherwise. It
// mirrors the reference implementation's Result<Resp>.
type Result[T any] struct {
	Value T
	Error ErrorCode
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, Error: OK}
}

// Err wraps a failure; code must not be OK.
func Err[T any](code ErrorCode) Result[T] {
	return Result[T]{Error: code}
}
