// Package debruijn builds and verifies de Bruijn sequences B(k, n).
//
// 🚀 What is a de Bruijn sequence?
//
//	A cyclic sequence over the alphabet {0..k-1} in which every one of the
//	k^n words of length n appears exactly once as a contiguous, wrapping
//	window. B(2, 3) = 0 0 0 1 0 1 1 1 contains 000, 001, 010, 101, 011, 111,
//	110 (wrap) and 100 (wrap). Typical uses:
//	  • brute-forcing keypads / combination locks in k^n + n - 1 presses
//	  • position encoding (rotary encoders, structured-light patterns)
//	  • test-vector generation covering every n-gram of an alphabet
//
// ✨ Key features:
//   - Build:         Lyndon-word construction (lexicographically smallest B(k, n))
//   - BuildEulerian: independent construction via Hierholzer's algorithm on the
//     de Bruijn graph; used to cross-check the verifier
//   - IsDeBruijn:    cyclic coverage check by mixed-radix window encoding
//   - Coverage:      the same check returning a diagnostic Report
//   - BuildAll:      bounded-parallel batch build (+ optional verification)
//
// ⚙️ Usage:
//
//	seq, err := debruijn.Build(4, 2)     // len(seq) == 16
//	ok, err := debruijn.IsDeBruijn(4, 2, seq)
//
// Window encoding:
//
//	The window starting at i is encoded little-endian as
//	  code(i) = Σ_{o=0}^{n-1} seq[(i+o) mod m] · k^o   ∈ [0, k^n)
//	which is a bijection between length-n windows and [0, k^n). A sequence
//	of length k^n whose codes are pairwise distinct therefore covers every
//	window exactly once.
//
// Supported range:
//
//	Two ceilings apply, both reported as ErrOverflow:
//	  • Length, IsDeBruijn, Coverage, WindowCode: k^n must fit an int
//	    (2^63-1 on 64-bit platforms).
//	  • Build, BuildEulerian (and BuildAll): k^n ≤ MaxSequenceLen = 2^30,
//	    since the whole sequence is materialized.
//	Codes are computed in uint64 and are always < k^n, so no intermediate
//	value can overflow.
//
// Performance:
//
//   - Build:         O(k^n) time and memory.
//   - BuildEulerian: O(k^n) time, O(k^(n-1)) extra memory.
//   - IsDeBruijn:    O(m + n) time with a rolling code, O(min(m, k^n)) memory.
//
// Errors:
//
//   - ErrInvalidArgument: k < 1, n < 1, or n > len(seq)+1 for the verifier.
//   - ErrOverflow: k^n exceeds the supported range (also matches ErrInvalidArgument).
//   - ErrOptionViolation: invalid BuildAll option.
package debruijn
