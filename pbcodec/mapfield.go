// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pbcodec

import "github.com/jethome-iot/litepb-sub000/wire"

// On the wire a map field is a repeated message of a synthetic entry
// type {key=1, value=2} (spec §4.4, §9). Entries may appear in any
// order; the latest value for a key wins on decode. Encoders must not
// be compared byte-for-byte across implementations since Go map
// iteration order is randomized; only re-parsed equality is meaningful
// (spec §9 design notes).

// WriteMapField writes m as a repeated field of {key=1, value=2}
// entries at fieldNumber.
func WriteMapField[K comparable, V any](w *wire.Writer, fieldNumber uint32, m map[K]V, keyCodec FieldCodec[K], valueCodec FieldCodec[V]) error {
	for k, v := range m {
		entrySize := entrySize(k, v, keyCodec, valueCodec)
		if err := w.WriteTag(fieldNumber, wire.LengthDelimited); err != nil {
			return err
		}
		if err := w.WriteVarint(uint64(entrySize)); err != nil {
			return err
		}
		if err := w.WriteTag(1, keyCodec.WireType); err != nil {
			return err
		}
		if err := keyCodec.Write(w, k); err != nil {
			return err
		}
		if err := w.WriteTag(2, valueCodec.WireType); err != nil {
			return err
		}
		if err := valueCodec.Write(w, v); err != nil {
			return err
		}
	}
	return nil
}

// SizeMapField returns the byte size WriteMapField would produce.
func SizeMapField[K comparable, V any](fieldNumber uint32, m map[K]V, keyCodec FieldCodec[K], valueCodec FieldCodec[V]) int {
	total := 0
	tagSize := wire.SizeVarint(wire.MakeTag(fieldNumber, wire.LengthDelimited))
	for k, v := range m {
		size := entrySize(k, v, keyCodec, valueCodec)
		total += tagSize + wire.SizeVarint(uint64(size)) + size
	}
	return total
}

func entrySize[K comparable, V any](k K, v V, keyCodec FieldCodec[K], valueCodec FieldCodec[V]) int {
	return wire.SizeVarint(wire.MakeTag(1, keyCodec.WireType)) + keyCodec.Size(k) +
		wire.SizeVarint(wire.MakeTag(2, valueCodec.WireType)) + valueCodec.Size(v)
}

// ReadMapEntry reads one map entry (the entry's own LengthDelimited tag
// has already been read as the caller's field tag) and returns its key
// and value. Fields inside the entry other than 1/2 are skipped.
func ReadMapEntry[K comparable, V any](r *wire.Reader, keyCodec FieldCodec[K], valueCodec FieldCodec[V]) (K, V, error) {
	var key K
	var value V
	data, err := r.ReadBytes()
	if err != nil {
		return key, value, err
	}
	sub := wire.NewReader(wire.NewMemoryReader(data))
	for sub.Available() > 0 {
		tag, err := sub.ReadTag()
		if err != nil {
			return key, value, err
		}
		switch tag.FieldNumber {
		case 1:
			key, err = keyCodec.Read(sub)
		case 2:
			value, err = valueCodec.Read(sub)
		default:
			err = sub.SkipField(tag.WireType)
		}
		if err != nil {
			return key, value, err
		}
	}
	return key, value, nil
}
