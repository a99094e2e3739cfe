// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpc

// Address sentinels (spec §3, §4.8). Destination addresses equal to
// either sentinel collapse to transportWildcard in the pending table
// key, so any responder matches.
const (
	transportWildcard  uint64 = 0x0000_0000_0000_0000
	transportBroadcast uint64 = 0xFFFF_FFFF_FFFF_FFFF
)

func peerKeyFor(dstAddr uint64) uint64 {
	if dstAddr == transportWildcard || dstAddr == transportBroadcast {
		return transportWildcard
	}
	return dstAddr
}
