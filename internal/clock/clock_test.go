// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package clock

import (
	"testing"
	"time"
)

func TestSystemNowMillisStartsNearZero(t *testing.T) {
	t.Parallel()
	c := NewSystem()
	if ms := c.NowMillis(); ms > 50 {
		t.Fatalf("NowMillis() immediately after NewSystem = %d, want close to 0", ms)
	}
}

func TestSystemNowMillisIsNonDecreasing(t *testing.T) {
	t.Parallel()
	c := NewSystem()
	first := c.NowMillis()
	time.Sleep(20 * time.Millisecond)
	second := c.NowMillis()
	if second < first {
		t.Fatalf("NowMillis went backwards: %d then %d", first, second)
	}
	if second-first < 10 {
		t.Fatalf("NowMillis advanced only %dms across a 20ms sleep", second-first)
	}
}

func TestSystemImplementsClock(t *testing.T) {
	t.Parallel()
	var _ Clock = NewSystem()
}
