// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wellknown

import (
	"bytes"
	"math"
	"testing"

	"github.com/jethome-iot/litepb-sub000/pbcodec"
)

func TestEmptyRoundTrip(t *testing.T) {
	t.Parallel()
	var e Empty
	if EmptySerializer.ByteSize(&e) != 0 {
		t.Fatalf("ByteSize(zero Empty) = %d, want 0", EmptySerializer.ByteSize(&e))
	}
	buf, err := pbcodec.Marshal(EmptySerializer, &e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(buf) != 0 {
		t.Fatalf("Marshal(zero Empty) = %x, want empty", buf)
	}
	got, err := pbcodec.Unmarshal(EmptySerializer, buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Unknown.IsEmpty() {
		t.Fatal("round-tripped Empty should carry no unknown fields")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()
	ts := Timestamp{Seconds: 1700000000, Nanos: 123456789}
	if n := TimestampSerializer.ByteSize(&ts); n == 0 {
		t.Fatal("ByteSize of a populated Timestamp must be nonzero")
	}
	buf, err := pbcodec.Marshal(TimestampSerializer, &ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(buf) != TimestampSerializer.ByteSize(&ts) {
		t.Fatalf("len(buf)=%d != ByteSize=%d", len(buf), TimestampSerializer.ByteSize(&ts))
	}
	got, err := pbcodec.Unmarshal(TimestampSerializer, buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Seconds != ts.Seconds || got.Nanos != ts.Nanos {
		t.Fatalf("got %+v, want %+v", *got, ts)
	}
}

func TestTimestampNegativeSecondsSignExtends(t *testing.T) {
	t.Parallel()
	ts := Timestamp{Seconds: -62135596800, Nanos: 0}
	buf, err := pbcodec.Marshal(TimestampSerializer, &ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := pbcodec.Unmarshal(TimestampSerializer, buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Seconds != ts.Seconds {
		t.Fatalf("got %d, want %d", got.Seconds, ts.Seconds)
	}
}

func TestTimestampZeroValueElidesBothFields(t *testing.T) {
	t.Parallel()
	var ts Timestamp
	if TimestampSerializer.ByteSize(&ts) != 0 {
		t.Fatalf("ByteSize(zero Timestamp) = %d, want 0", TimestampSerializer.ByteSize(&ts))
	}
}

func TestDurationRoundTrip(t *testing.T) {
	t.Parallel()
	d := Duration{Seconds: -5, Nanos: -250000000}
	buf, err := pbcodec.Marshal(DurationSerializer, &d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := pbcodec.Unmarshal(DurationSerializer, buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Seconds != d.Seconds || got.Nanos != d.Nanos {
		t.Fatalf("got %+v, want %+v", *got, d)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	t.Parallel()
	a := Any{TypeURL: "type.googleapis.com/sensor.ReadingResponse", Value: []byte{1, 2, 3, 4}}
	buf, err := pbcodec.Marshal(AnySerializer, &a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := pbcodec.Unmarshal(AnySerializer, buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.TypeURL != a.TypeURL || !bytes.Equal(got.Value, a.Value) {
		t.Fatalf("got %+v, want %+v", *got, a)
	}
}

func TestAnyIsMatchesSuffixAfterSlash(t *testing.T) {
	t.Parallel()
	var a Any
	a.SetType("sensor.ReadingResponse", "")
	if a.TypeURL != DefaultTypeURLPrefix+"sensor.ReadingResponse" {
		t.Fatalf("TypeURL = %q", a.TypeURL)
	}
	if !a.Is("sensor.ReadingResponse") {
		t.Fatal("Is should match the bare type name")
	}
	if a.Is("sensor.AlertEvent") {
		t.Fatal("Is should not match an unrelated type name")
	}
}

func TestAnyIsWithNoSlashMatchesWholeString(t *testing.T) {
	t.Parallel()
	a := Any{TypeURL: "bare.Type"}
	if !a.Is("bare.Type") {
		t.Fatal("Is should match the whole type_url when there is no '/'")
	}
}

func TestWrapperValuesElideDefault(t *testing.T) {
	t.Parallel()
	var s StringValue
	if StringValueSerializer.ByteSize(&s) != 0 {
		t.Fatalf("ByteSize(empty StringValue) = %d, want 0", StringValueSerializer.ByteSize(&s))
	}
	var i Int32Value
	if Int32ValueSerializer.ByteSize(&i) != 0 {
		t.Fatal("ByteSize(zero Int32Value) should be 0")
	}
	var b BoolValue
	if BoolValueSerializer.ByteSize(&b) != 0 {
		t.Fatal("ByteSize(false BoolValue) should be 0")
	}
}

func TestWrapperValuesRoundTrip(t *testing.T) {
	t.Parallel()

	s := StringValue("hello")
	buf, err := pbcodec.Marshal(StringValueSerializer, &s)
	if err != nil {
		t.Fatalf("Marshal StringValue: %v", err)
	}
	gotS, err := pbcodec.Unmarshal(StringValueSerializer, buf)
	if err != nil || *gotS != s {
		t.Fatalf("got %q err=%v, want %q", *gotS, err, s)
	}

	i32 := Int32Value(math.MinInt32)
	buf, err = pbcodec.Marshal(Int32ValueSerializer, &i32)
	if err != nil {
		t.Fatalf("Marshal Int32Value: %v", err)
	}
	gotI32, err := pbcodec.Unmarshal(Int32ValueSerializer, buf)
	if err != nil || *gotI32 != i32 {
		t.Fatalf("got %d err=%v, want %d", *gotI32, err, i32)
	}

	u64 := UInt64Value(math.MaxUint64)
	buf, err = pbcodec.Marshal(UInt64ValueSerializer, &u64)
	if err != nil {
		t.Fatalf("Marshal UInt64Value: %v", err)
	}
	gotU64, err := pbcodec.Unmarshal(UInt64ValueSerializer, buf)
	if err != nil || *gotU64 != u64 {
		t.Fatalf("got %d err=%v, want %d", *gotU64, err, u64)
	}

	d := DoubleValue(math.Pi)
	buf, err = pbcodec.Marshal(DoubleValueSerializer, &d)
	if err != nil {
		t.Fatalf("Marshal DoubleValue: %v", err)
	}
	gotD, err := pbcodec.Unmarshal(DoubleValueSerializer, buf)
	if err != nil || *gotD != d {
		t.Fatalf("got %v err=%v, want %v", *gotD, err, d)
	}

	bl := BoolValue(true)
	buf, err = pbcodec.Marshal(BoolValueSerializer, &bl)
	if err != nil {
		t.Fatalf("Marshal BoolValue: %v", err)
	}
	gotBl, err := pbcodec.Unmarshal(BoolValueSerializer, buf)
	if err != nil || *gotBl != bl {
		t.Fatalf("got %v err=%v, want %v", *gotBl, err, bl)
	}

	bv := BytesValue([]byte{0xde, 0xad, 0xbe, 0xef})
	buf, err = pbcodec.Marshal(BytesValueSerializer, &bv)
	if err != nil {
		t.Fatalf("Marshal BytesValue: %v", err)
	}
	gotBv, err := pbcodec.Unmarshal(BytesValueSerializer, buf)
	if err != nil || !bytes.Equal(*gotBv, bv) {
		t.Fatalf("got %x err=%v, want %x", *gotBv, err, bv)
	}
}
