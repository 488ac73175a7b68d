// SPDX-License-Identifier: MIT
// Package: debruijn
//
// debruijn.go: Lyndon-word construction of B(k, n).

package debruijn

import (
	"github.com/katalvlaran/necklace/lyndon"
)

// Build returns the lexicographically smallest de Bruijn sequence B(k, n).
//
// Construction (Fredricksen–Maiorana):
//  1. Enumerate k-ary Lyndon words of length ≤ n in lexicographic order
//     (lyndon.Generator, Duval's algorithm).
//  2. Keep only the words whose length divides n.
//  3. Concatenate them in the order produced.
//
// The order is load-bearing: any reordering breaks the de Bruijn property.
//
// Example:
//
//	seq, _ := Build(2, 3) // [0 0 0 1 0 1 1 1]
//
// Errors:
//   - ErrInvalidArgument if k < 1 or n < 1.
//   - ErrOverflow if k^n exceeds MaxSequenceLen.
//
// Both are reported before any symbol is produced.
//
// Complexity: O(k^n) time, O(k^n) memory for the result.
func Build(k, n int) ([]int, error) {
	if err := validateKN(MethodBuild, k, n); err != nil {
		return nil, err
	}
	total, err := sequenceLen(MethodBuild, k, n)
	if err != nil {
		return nil, err
	}

	seq := make([]int, 0, total)
	g, err := lyndon.NewGenerator(k, n)
	if err != nil {
		return nil, err
	}
	for w, ok := g.Next(); ok; w, ok = g.Next() {
		if n%len(w) == 0 {
			seq = append(seq, w...)
		}
	}

	return seq, nil
}
