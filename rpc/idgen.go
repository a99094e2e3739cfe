// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

import "sync"

// eventMsgID is reserved for EVENT envelopes and must never be
// generated for a REQUEST (spec §4.7).
const eventMsgID uint16 = 0

// MessageIDGenerator hands out 16-bit msg_ids for outgoing requests.
// Per peer pair it partitions the id space by parity — the side with
// the numerically lower local address gets odd ids, the other side
// even — so that two channels calling each other concurrently can
// never generate the same id for the same peer, without any
// coordination between them. This partitioning is a collision-avoidance
// convenience, not a wire requirement: any id scheme a generator
// chooses is legal as long as it never reissues an id still live in
// the pending table.
type MessageIDGenerator struct {
	mu      sync.Mutex
	nextFor map[uint64]uint16 // peerAddr -> next candidate id for that peer's partition
}

// NewMessageIDGenerator returns a ready-to-use generator.
func NewMessageIDGenerator() *MessageIDGenerator {
	return &MessageIDGenerator{nextFor: make(map[uint64]uint16)}
}

// GenerateFor returns the next msg_id to use for a request addressed
// from localAddr to peerAddr. Wildcard and broadcast destinations
// partition under the wildcard address itself, since no numeric
// comparison against a specific peer is possible.
func (g *MessageIDGenerator) GenerateFor(localAddr, peerAddr uint64) uint16 {
	g.mu.Lock()
	defer g.mu.Unlock()

	peerAddr = peerKeyFor(peerAddr)
	odd := localAddr < peerAddr
	cur, ok := g.nextFor[peerAddr]
	if !ok {
		if odd {
			cur = 1
		} else {
			cur = 2
		}
	}

	id := cur
	next := cur + 2
	if next < cur { // wrapped past 65535
		if odd {
			next = 1
		} else {
			next = 2
		}
	}
	g.nextFor[peerAddr] = next

	if id == eventMsgID {
		id = next
		g.nextFor[peerAddr] = id + 2
	}
	return id
}
