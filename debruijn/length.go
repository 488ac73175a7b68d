// SPDX-License-Identifier: MIT
// Package: debruijn
//
// length.go: exact k^n with overflow detection.

package debruijn

import (
	"fmt"
	"math"
)

// MaxSequenceLen is the longest sequence Build and BuildEulerian materialize
// (2^30 symbols, B(2, 30)). It stays below the allocator limit on both 32-bit
// and 64-bit platforms; Length and IsDeBruijn are bounded by math.MaxInt only.
const MaxSequenceLen = 1 << 30

// Length returns k^n, the length of any de Bruijn sequence B(k, n) and the
// number of distinct length-n windows over a k-symbol alphabet.
//
// Errors:
//   - ErrInvalidArgument if k < 1 or n < 1.
//   - ErrOverflow if k^n > math.MaxInt.
//
// Complexity: O(n) multiplications (k == 1 short-circuits to 1).
func Length(k, n int) (int, error) {
	if err := validateKN(MethodLength, k, n); err != nil {
		return 0, err
	}

	return pow(MethodLength, k, n)
}

// pow computes k^e for k ≥ 1, e ≥ 0, reporting ErrOverflow past math.MaxInt.
func pow(method string, k, e int) (int, error) {
	if k == 1 {
		return 1, nil
	}
	p := 1
	for i := 0; i < e; i++ {
		if p > math.MaxInt/k {
			return 0, fmt.Errorf("%s: %d^%d does not fit an int: %w", method, k, e, ErrOverflow)
		}
		p *= k
	}

	return p, nil
}

// sequenceLen returns k^n for a constructor, rejecting lengths above
// MaxSequenceLen with ErrOverflow before anything is allocated.
func sequenceLen(method string, k, n int) (int, error) {
	total, err := pow(method, k, n)
	if err != nil {
		return 0, err
	}
	if total > MaxSequenceLen {
		return 0, fmt.Errorf("%s: %d^%d = %d exceeds MaxSequenceLen %d: %w",
			method, k, n, total, MaxSequenceLen, ErrOverflow)
	}

	return total, nil
}
