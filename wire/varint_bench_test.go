// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import "testing"

// --- Varint encode/decode hot path ---

func benchmarkAppendVarint(b *testing.B, v uint64) {
	buf := make([]byte, 0, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendVarint(buf[:0], v)
	}
}

func BenchmarkAppendVarint_1Byte(b *testing.B)  { benchmarkAppendVarint(b, 127) }
func BenchmarkAppendVarint_2Byte(b *testing.B)  { benchmarkAppendVarint(b, 16383) }
func BenchmarkAppendVarint_10Byte(b *testing.B) { benchmarkAppendVarint(b, ^uint64(0)) }

func benchmarkReadVarint(b *testing.B, v uint64) {
	encoded := AppendVarint(nil, v)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(NewMemoryReader(encoded))
		if _, err := r.ReadVarint(); err != nil {
			b.Fatalf("ReadVarint: %v", err)
		}
	}
}

func BenchmarkReadVarint_1Byte(b *testing.B)  { benchmarkReadVarint(b, 127) }
func BenchmarkReadVarint_2Byte(b *testing.B)  { benchmarkReadVarint(b, 16383) }
func BenchmarkReadVarint_10Byte(b *testing.B) { benchmarkReadVarint(b, ^uint64(0)) }

// --- Zigzag hot path ---

func BenchmarkZigzagEncodeDecode64(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	var sum uint64
	for i := 0; i < b.N; i++ {
		sum += uint64(ZigzagDecode64(ZigzagEncode64(int64(i) - int64(b.N/2))))
	}
	if sum == ^uint64(0) {
		b.Fatal("unreachable, keeps sum live")
	}
}
