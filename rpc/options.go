// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"io"

	"github.com/jethome-iot/litepb-sub000/internal/clock"
	"github.com/sirupsen/logrus"
)

// defaultTimeoutMs is used for calls made with timeoutMs == 0, and is
// the reference implementation's own default.
const defaultTimeoutMs uint32 = 5000

// defaultInitialBufferSize matches LITEPB_RPC_INITIAL_BUFFER_SIZE.
const defaultInitialBufferSize = 1024

// ChannelOption configures a Channel at construction.
type ChannelOption func(*channelConfig)

type channelConfig struct {
	defaultTimeoutMs  uint32
	initialBufferSize int
	clock             clock.Clock
	logger            *logrus.Logger
}

func newChannelConfig() *channelConfig {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &channelConfig{
		defaultTimeoutMs:  defaultTimeoutMs,
		initialBufferSize: defaultInitialBufferSize,
		clock:             clock.NewSystem(),
		logger:            logger,
	}
}

// WithDefaultTimeout overrides the timeout applied to a Call that
// passes timeoutMs == 0.
func WithDefaultTimeout(timeoutMs uint32) ChannelOption {
	return func(c *channelConfig) { c.defaultTimeoutMs = timeoutMs }
}

// WithInitialBufferSize overrides the starting size of the receive
// buffer, which doubles on demand thereafter.
func WithInitialBufferSize(n int) ChannelOption {
	return func(c *channelConfig) {
		if n > 0 {
			c.initialBufferSize = n
		}
	}
}

// WithClock overrides the Channel's notion of "now", for deterministic
// timeout tests.
func WithClock(c clock.Clock) ChannelOption {
	return func(cfg *channelConfig) { cfg.clock = c }
}

// WithLogger attaches a logger for dropped/malformed envelopes and
// transport errors. The default discards all output.
func WithLogger(logger *logrus.Logger) ChannelOption {
	return func(c *channelConfig) { c.logger = logger }
}
