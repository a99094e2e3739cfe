// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pbcodec_test

import (
	"bytes"
	"testing"

	"github.com/jethome-iot/litepb-sub000/examples/person"
	"github.com/jethome-iot/litepb-sub000/examples/sensor"
	"github.com/jethome-iot/litepb-sub000/pbcodec"
	"github.com/jethome-iot/litepb-sub000/wire"
)

func TestPersonRoundTrip(t *testing.T) {
	t.Parallel()

	p := person.Person{Name: "Ada Lovelace", Age: -3, Email: "ada@example.com"}

	data, err := pbcodec.Marshal(person.Serializer, &p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := person.Serializer.ByteSize(&p); len(data) != want {
		t.Fatalf("ByteSize()=%d but Marshal produced %d bytes", want, len(data))
	}

	got, err := pbcodec.Unmarshal(person.Serializer, data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != p.Name || got.Age != p.Age || got.Email != p.Email {
		t.Fatalf("round trip mismatch: got %+v, want %+v", *got, p)
	}
}

func TestPersonProto3DefaultElision(t *testing.T) {
	t.Parallel()

	var zero person.Person
	data, err := pbcodec.Marshal(person.Serializer, &zero)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("all-default message should encode to zero bytes, got % x", data)
	}
}

func TestPersonNegativeAgeSignExtends(t *testing.T) {
	t.Parallel()

	// A negative int32 field encodes as a 10-byte varint (tag + 10 body
	// bytes here since the tag itself fits in one byte), matching the
	// rest of the codebase's int32 handling.
	p := person.Person{Age: -1}
	data, err := pbcodec.Marshal(person.Serializer, &p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 11 {
		t.Fatalf("encoded negative int32 field as %d bytes, want 11", len(data))
	}
}

func TestPersonUnknownFieldForwardCompatRoundTrip(t *testing.T) {
	t.Parallel()

	// Build wire bytes for a hypothetical newer Person that carries an
	// extra field (4, a varint) Person's own schema doesn't know about:
	// name=1, age=2, then the unrecognized field 4.
	dw := wire.NewDynamicWriter()
	w := wire.NewWriter(dw)
	mustWrite(t, w.WriteTag(1, wire.LengthDelimited))
	mustWrite(t, w.WriteString("Grace Hopper"))
	mustWrite(t, w.WriteTag(2, wire.Varint))
	mustWrite(t, w.WriteInt32(40))
	mustWrite(t, w.WriteTag(4, wire.Varint))
	mustWrite(t, w.WriteVarint(999))
	original := append([]byte(nil), dw.Bytes()...)

	decoded, err := pbcodec.Unmarshal(person.Serializer, original)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != "Grace Hopper" || decoded.Age != 40 {
		t.Fatalf("known fields corrupted: %+v", *decoded)
	}
	if decoded.Unknown.IsEmpty() {
		t.Fatal("expected field 4 to be captured as unknown")
	}

	reEncoded, err := pbcodec.Marshal(person.Serializer, decoded)
	if err != nil {
		t.Fatalf("re-Marshal: %v", err)
	}
	if !bytes.Equal(reEncoded, original) {
		t.Fatalf("re-encoded bytes differ from original:\n got  % x\n want % x", reEncoded, original)
	}
}

func mustWrite(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestTypeShowcaseExtremeValuesRoundTrip(t *testing.T) {
	t.Parallel()

	ts := person.TypeShowcase{
		Int32Field:   -2147483648,
		Uint64Field:  18446744073709551615,
		Fixed64Field: 0xCAFEBABEDEADBEEF,
		FloatField:   3.14159,
		DoubleField:  2.718281828459045,
		EnumField:    person.StatusActive,
		RepeatedInts: []int32{1, 2, 3, 4, 5},
		Counts:       map[string]int32{"one": 1, "two": 2, "three": 3},
		Variant:      person.VariantIntChoice,
		IntChoice:    999,
	}

	data, err := pbcodec.Marshal(person.ShowcaseSerializer, &ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := person.ShowcaseSerializer.ByteSize(&ts); len(data) != want {
		t.Fatalf("ByteSize()=%d but Marshal produced %d bytes", want, len(data))
	}

	got, err := pbcodec.Unmarshal(person.ShowcaseSerializer, data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Int32Field != ts.Int32Field || got.Uint64Field != ts.Uint64Field ||
		got.Fixed64Field != ts.Fixed64Field || got.FloatField != ts.FloatField ||
		got.DoubleField != ts.DoubleField || got.EnumField != ts.EnumField ||
		got.Variant != ts.Variant || got.IntChoice != ts.IntChoice {
		t.Fatalf("scalar mismatch: got %+v, want %+v", *got, ts)
	}
	if len(got.RepeatedInts) != len(ts.RepeatedInts) {
		t.Fatalf("RepeatedInts = %v, want %v", got.RepeatedInts, ts.RepeatedInts)
	}
	for i, v := range ts.RepeatedInts {
		if got.RepeatedInts[i] != v {
			t.Fatalf("RepeatedInts[%d] = %d, want %d", i, got.RepeatedInts[i], v)
		}
	}
	if len(got.Counts) != len(ts.Counts) {
		t.Fatalf("Counts = %v, want %v", got.Counts, ts.Counts)
	}
	for k, v := range ts.Counts {
		if got.Counts[k] != v {
			t.Fatalf("Counts[%q] = %d, want %d", k, got.Counts[k], v)
		}
	}
}

func TestTypeShowcaseOneofLastWins(t *testing.T) {
	t.Parallel()

	// Hand-craft a wire form that sets both oneof variants, int_choice
	// then text_choice: the later one (text_choice) must win on decode.
	intChoice := person.TypeShowcase{Variant: person.VariantIntChoice, IntChoice: 42}
	intBytes, err := pbcodec.Marshal(person.ShowcaseSerializer, &intChoice)
	if err != nil {
		t.Fatalf("Marshal(int_choice): %v", err)
	}
	textChoice := person.TypeShowcase{Variant: person.VariantTextChoice, TextChoice: "final"}
	textBytes, err := pbcodec.Marshal(person.ShowcaseSerializer, &textChoice)
	if err != nil {
		t.Fatalf("Marshal(text_choice): %v", err)
	}

	combined := append(append([]byte(nil), intBytes...), textBytes...)
	got, err := pbcodec.Unmarshal(person.ShowcaseSerializer, combined)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Variant != person.VariantTextChoice || got.TextChoice != "final" {
		t.Fatalf("oneof last-wins violated: got variant=%v text=%q", got.Variant, got.TextChoice)
	}
}

func TestSensorReadingRoundTrip(t *testing.T) {
	t.Parallel()

	resp := sensor.ReadingResponse{SensorID: 42, Temperature: 91.5, Status: sensor.StatusError}
	data, err := pbcodec.Marshal(sensor.ReadingResponseSerializer, &resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != sensor.ReadingResponseSerializer.ByteSize(&resp) {
		t.Fatalf("ByteSize mismatch")
	}
	got, err := pbcodec.Unmarshal(sensor.ReadingResponseSerializer, data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.SensorID != resp.SensorID || got.Temperature != resp.Temperature || got.Status != resp.Status {
		t.Fatalf("round trip mismatch: got %+v, want %+v", *got, resp)
	}
}
