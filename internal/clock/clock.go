// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package clock supplies the Channel's notion of "now" as an
// injectable dependency, mirroring the weakly-linked
// get_current_time_ms() override point the reference implementation
// uses on embedded targets (tests, simulated time, and platforms
// without a wall clock all need to replace it).
package clock

import "time"

// Clock reports the current time as milliseconds on a monotonically
// non-decreasing scale. Only relative differences between calls are
// meaningful; the origin is unspecified.
type Clock interface {
	NowMillis() uint32
}

// System is the default Clock, backed by the runtime's monotonic
// clock reading (time.Now uses the monotonic reading internally on
// every platform Go supports).
type System struct {
	start time.Time
}

// NewSystem returns a Clock anchored at the moment of construction, so
// NowMillis stays well inside uint32 range for the life of a process.
func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
