package lyndon

import (
	"iter"
)

// Generator is the explicit state machine of Duval's algorithm.
// A Generator owns its buffer exclusively; it is not safe for concurrent use,
// but independent Generators share nothing and may run in parallel.
//
// Invariants between calls to Next:
//   - every symbol in buf lies in 0..k-1, except the initial placeholder -1;
//   - buf never ends with k-1 (trailing maximal symbols are stripped);
//   - len(buf) == 0 iff the enumeration is exhausted.
type Generator struct {
	k   int   // alphabet size (≥1)
	n   int   // maximal word length (≥1)
	buf []int // working word; capacity n, reused across steps
}

// NewGenerator returns a Generator positioned before the first Lyndon word.
//
// Errors: ErrInvalidArgument if k < 1 or n < 1.
func NewGenerator(k, n int) (*Generator, error) {
	if err := validate(MethodNewGenerator, k, n); err != nil {
		return nil, err
	}

	return newGenerator(k, n), nil
}

// newGenerator builds a Generator for already validated arguments.
func newGenerator(k, n int) *Generator {
	buf := make([]int, 1, n)
	buf[0] = -1 // first increment produces symbol 0

	return &Generator{k: k, n: n, buf: buf}
}

// Next returns the next Lyndon word and true, or (nil, false) once the
// enumeration is exhausted. The returned Word is a copy owned by the caller.
//
// Complexity: O(n) per call.
func (g *Generator) Next() (Word, bool) {
	if len(g.buf) == 0 {
		return nil, false
	}

	// Step 2: successor of the last remaining symbol.
	g.buf[len(g.buf)-1]++

	// Step 3: emit a copy; buf keeps mutating below.
	w := make(Word, len(g.buf))
	copy(w, g.buf)

	// Step 4: periodic extension to length n, buf[i] = buf[i-m].
	m := len(g.buf)
	for len(g.buf) < g.n {
		g.buf = append(g.buf, g.buf[len(g.buf)-m])
	}

	// Step 5: strip maximal symbols from the tail.
	last := g.k - 1
	for len(g.buf) > 0 && g.buf[len(g.buf)-1] == last {
		g.buf = g.buf[:len(g.buf)-1]
	}

	return w, true
}

// Done reports whether the enumeration is exhausted.
func (g *Generator) Done() bool { return len(g.buf) == 0 }

// Words returns a lazy sequence of every k-ary Lyndon word of length 1..n,
// in strictly increasing lexicographic order.
//
// The sequence is finite and not restartable: it is backed by one Generator,
// so a second range continues where the first one stopped. Stopping early
// (break) leaves the remaining words unconsumed.
//
// Example:
//
//	seq, _ := lyndon.Words(2, 3)
//	for w := range seq {
//		fmt.Println(w) // [0] [0 0 1] [0 1] [0 1 1] [1]
//	}
//
// Errors: ErrInvalidArgument if k < 1 or n < 1; nothing is generated.
func Words(k, n int) (iter.Seq[Word], error) {
	if err := validate(MethodWords, k, n); err != nil {
		return nil, err
	}
	g := newGenerator(k, n)

	return func(yield func(Word) bool) {
		for {
			w, ok := g.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}, nil
}

// Generate returns every k-ary Lyndon word of length 1..n as a slice,
// in lexicographic order.
//
// Errors: ErrInvalidArgument if k < 1 or n < 1.
func Generate(k, n int) ([]Word, error) {
	if err := validate(MethodGenerate, k, n); err != nil {
		return nil, err
	}

	var out []Word
	g := newGenerator(k, n)
	for w, ok := g.Next(); ok; w, ok = g.Next() {
		out = append(out, w)
	}

	return out, nil
}

// IsLyndon reports whether w is strictly smaller than each of its
// len(w)-1 non-trivial rotations. The empty word is not a Lyndon word.
//
// Rotations are compared in place (index mod len), no copies are made.
//
// Complexity: O(L²) time, O(1) memory, L = len(w).
func IsLyndon(w Word) bool {
	L := len(w)
	if L == 0 {
		return false
	}
	for r := 1; r < L; r++ {
		if !lessThanRotation(w, r) {
			return false
		}
	}

	return true
}

// lessThanRotation reports whether w < rotate(w, r) strictly.
func lessThanRotation(w Word, r int) bool {
	L := len(w)
	for i := 0; i < L; i++ {
		a, b := w[i], w[(i+r)%L]
		if a != b {
			return a < b
		}
	}

	// equal to its rotation: w is periodic
	return false
}
