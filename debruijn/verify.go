// SPDX-License-Identifier: MIT
// Package: debruijn
//
// verify.go: cyclic coverage check by mixed-radix window encoding.
//
// Contract:
//   - Pure: the input slice is read, never retained or mutated.
//   - Deterministic: the Report depends only on (k, n, seq).

package debruijn

// Report describes the cyclic window coverage of a candidate sequence.
//
// Fields:
//   - Windows: number of cyclic windows examined (= len(seq)).
//   - Expected: k^n, the number of distinct length-n words.
//   - Distinct: number of distinct window codes seen.
//   - FirstRepeat: start index of the first window whose code was already
//     seen, or -1 if no window repeats.
//   - InvalidSymbol: index of the first symbol outside 0..k-1, or -1.
//     When ≥ 0 the windows are not encoded and Distinct is 0.
type Report struct {
	Windows       int
	Expected      int
	Distinct      int
	FirstRepeat   int
	InvalidSymbol int
}

// Valid reports whether the examined sequence is a de Bruijn sequence:
// all symbols in range, exactly k^n windows, all of them distinct.
func (r Report) Valid() bool {
	return r.InvalidSymbol < 0 && r.Windows == r.Expected && r.Distinct == r.Expected
}

// Missing returns how many of the k^n words never occur as a window.
func (r Report) Missing() int {
	return r.Expected - r.Distinct
}

// IsDeBruijn reports whether seq, read cyclically, contains every length-n
// word over {0..k-1} exactly once.
//
// Procedure:
//  1. Linearize: extended = seq ++ seq[:n-1], so window i is extended[i:i+n].
//  2. Encode each of the m = len(seq) windows as Σ extended[i+o]·k^o.
//  3. Return true iff m == k^n and the m codes are pairwise distinct.
//
// By pigeonhole, m == k^n distinct codes in [0, k^n) is full coverage.
//
// The length check is part of the predicate: a sequence whose window set
// covers all k^n words but has m != k^n (e.g. B(k, n) repeated twice) is
// rejected, since some word then occurs more than once. Symbols outside
// 0..k-1 also yield false.
//
// Errors:
//   - ErrInvalidArgument if k < 1, n < 1 or n > len(seq)+1.
//   - ErrOverflow if k^n does not fit an int.
//
// Complexity: O(m + n) time, O(min(m, k^n)) memory.
func IsDeBruijn(k, n int, seq []int) (bool, error) {
	r, err := coverage(MethodIsDeBruijn, k, n, seq)
	if err != nil {
		return false, err
	}

	return r.Valid(), nil
}

// Coverage returns the diagnostic Report behind IsDeBruijn.
// Errors are the same as IsDeBruijn's.
func Coverage(k, n int, seq []int) (Report, error) {
	return coverage(MethodCoverage, k, n, seq)
}

// WindowCode returns the little-endian mixed-radix code of window:
// Σ window[o]·k^o. Every symbol must lie in 0..k-1.
//
// Errors:
//   - ErrInvalidArgument if k < 1, window is empty, or a symbol is out of range.
//   - ErrOverflow if k^len(window) does not fit an int.
func WindowCode(k int, window []int) (uint64, error) {
	if err := validateKN(MethodWindowCode, k, len(window)); err != nil {
		return 0, err
	}
	if _, err := pow(MethodWindowCode, k, len(window)); err != nil {
		return 0, err
	}

	var (
		code  uint64
		place uint64 = 1
	)
	for o, s := range window {
		if s < 0 || s >= k {
			return 0, invalidf(MethodWindowCode, "symbol %d at offset %d outside 0..%d", s, o, k-1)
		}
		code += uint64(s) * place
		place *= uint64(k)
	}

	return code, nil
}

// coverage implements IsDeBruijn/Coverage under the given method name.
//
// Codes are maintained with a rolling update instead of n multiplications per
// window: dropping the low digit and adding the new high digit gives
//
//	code(i+1) = (code(i) - ext[i]) / k + ext[i+n]·k^(n-1)
//
// and the subtraction leaves a multiple of k, so the division is exact.
func coverage(method string, k, n int, seq []int) (Report, error) {
	if err := validateKN(method, k, n); err != nil {
		return Report{}, err
	}
	m := len(seq)
	if n > m+1 {
		return Report{}, invalidf(method, "window length n=%d needs at least %d symbols, got %d", n, n-1, m)
	}
	total, err := pow(method, k, n)
	if err != nil {
		return Report{}, err
	}

	r := Report{Windows: m, Expected: total, FirstRepeat: -1, InvalidSymbol: -1}
	for i, s := range seq {
		if s < 0 || s >= k {
			r.InvalidSymbol = i

			return r, nil
		}
	}
	if m == 0 {
		return r, nil
	}

	// ext[j] for j ∈ [0, m+n-1): seq followed by its first n-1 symbols.
	ext := func(j int) uint64 {
		if j < m {
			return uint64(seq[j])
		}

		return uint64(seq[j-m])
	}

	kk := uint64(k)
	high := uint64(1) // k^(n-1)
	for i := 1; i < n; i++ {
		high *= kk
	}

	seen := newCodeSet(total, m)
	var code uint64
	place := uint64(1)
	for o := 0; o < n; o++ {
		code += ext(o) * place
		place *= kk
	}
	for i := 0; i < m; i++ {
		if i > 0 {
			code = (code-ext(i-1))/kk + ext(i+n-1)*high
		}
		if seen.add(code) {
			r.Distinct++
		} else if r.FirstRepeat < 0 {
			r.FirstRepeat = i
		}
	}

	return r, nil
}

// codeSet records window codes in [0, total). A dense bitmap is used when it
// is no larger than the number of windows, a map otherwise, so memory stays
// O(min(m, total)).
type codeSet struct {
	dense  []uint64
	sparse map[uint64]struct{}
}

func newCodeSet(total, m int) *codeSet {
	if total <= m {
		return &codeSet{dense: make([]uint64, (total+63)/64)}
	}

	return &codeSet{sparse: make(map[uint64]struct{}, m)}
}

// add inserts code and reports whether it was new.
func (c *codeSet) add(code uint64) bool {
	if c.dense != nil {
		word, bit := code/64, uint64(1)<<(code%64)
		if c.dense[word]&bit != 0 {
			return false
		}
		c.dense[word] |= bit

		return true
	}
	if _, ok := c.sparse[code]; ok {
		return false
	}
	c.sparse[code] = struct{}{}

	return true
}
