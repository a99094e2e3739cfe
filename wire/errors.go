// Copyright (c) 2025 JetHome LLC. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import "errors"

var (
	// ErrOverflow reports a varint longer than 10 bytes, or whose 10th
	// byte exceeds the bit that fits in a uint64.
	ErrOverflow = errors.New("wire: varint overflow")

	// ErrTruncated reports a length-delimited or fixed-width read that
	// would run past the remaining input.
	ErrTruncated = errors.New("wire: truncated input")

	// ErrMalformed reports skip_field called on a standalone END_GROUP
	// or on an unrecognized wire type.
	ErrMalformed = errors.New("wire: malformed field")

	// ErrOverflowCapacity reports a write to a fixed-capacity writer
	// that would exceed its backing array.
	ErrOverflowCapacity = errors.New("wire: write exceeds fixed capacity")
)
