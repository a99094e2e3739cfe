// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"

	"github.com/jethome-iot/litepb-sub000/examples/loopback"
	"github.com/jethome-iot/litepb-sub000/examples/sensor"
	"github.com/jethome-iot/litepb-sub000/rpc"
)

// BenchmarkCallRoundTrip drives a full GetReading request/response cycle
// over an in-process loopback pair, exercising envelope
// encode/decode, pending-table bookkeeping, and handler dispatch per
// iteration.
func BenchmarkCallRoundTrip(b *testing.B) {
	p := loopback.NewPair()
	sim := sensor.NewSimulator(func() float32 { return 0 })
	sensor.RegisterHandlers(p.B, sim, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		done := false
		sensor.GetReading(p.A, int32(i), 0, p.BAddr, func(rpc.Result[sensor.ReadingResponse]) {
			done = true
		})
		for !done {
			p.A.Process()
			p.B.Process()
		}
	}
}

// BenchmarkEventFireAndForget drives a NotifyAlert call/ack cycle,
// exercising the same envelope path as BenchmarkCallRoundTrip but
// through the event-shaped handler registration.
func BenchmarkEventFireAndForget(b *testing.B) {
	p := loopback.NewPair()
	sensor.RegisterHandlers(p.B, sensor.NewSimulator(func() float32 { return 0 }), func(uint64, sensor.AlertEvent) {})
	event := sensor.AlertEvent{SensorID: 1, Message: "overheat", Temperature: 91, Status: sensor.StatusError}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		done := false
		sensor.NotifyAlert(p.A, event, 0, p.BAddr, func(rpc.Result[sensor.AlertAck]) {
			done = true
		})
		for !done {
			p.A.Process()
			p.B.Process()
		}
	}
}
