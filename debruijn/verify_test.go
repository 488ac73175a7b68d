package debruijn_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necklace/debruijn"
)

// TestIsDeBruijn_Scenarios covers the canonical accept/reject cases.
func TestIsDeBruijn_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		k, n int
		seq  []int
		want bool
	}{
		{"k=2,n=1 valid", 2, 1, []int{0, 1}, true},
		{"k=2,n=1 repeated", 2, 1, []int{0, 0}, false},
		{"k=2,n=3 valid", 2, 3, []int{0, 0, 0, 1, 0, 1, 1, 1}, true},
		{"k=2,n=3 rotated", 2, 3, []int{1, 0, 1, 1, 1, 0, 0, 0}, true},
		{"k=2,n=3 tampered", 2, 3, []int{0, 0, 0, 0, 0, 1, 1, 1}, false},
		{"k=2,n=3 swapped", 2, 3, []int{0, 0, 1, 0, 0, 1, 1, 1}, false},
		{"k=2,n=3 too short", 2, 3, []int{0, 0, 0, 1, 0, 1, 1}, false},
		{"k=2,n=3 doubled", 2, 3, []int{0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1}, false},
		{"k=2,n=3 symbol out of range", 2, 3, []int{0, 0, 0, 2, 0, 1, 1, 1}, false},
		{"k=2,n=3 negative symbol", 2, 3, []int{0, 0, 0, -1, 0, 1, 1, 1}, false},
		{"k=1,n=2 single symbol", 1, 2, []int{0}, true},
		{"k=3,n=1 empty", 3, 1, []int{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := debruijn.IsDeBruijn(tc.k, tc.n, tc.seq)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestIsDeBruijn_InvalidArguments covers the argument errors, including the
// k=1, n=5 boundary where a single symbol cannot form a 5-window.
func TestIsDeBruijn_InvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		k, n int
		seq  []int
	}{
		{"k=0", 0, 1, []int{0}},
		{"n=0", 2, 0, []int{0, 1}},
		{"k=1,n=5", 1, 5, []int{0}},
		{"n > len+1", 2, 4, []int{0, 1}},
		{"nil seq, n=2", 2, 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := debruijn.IsDeBruijn(tc.k, tc.n, tc.seq)
			assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
			assert.False(t, ok)
		})
	}

	_, err := debruijn.IsDeBruijn(2, 70, make([]int, 80))
	assert.ErrorIs(t, err, debruijn.ErrOverflow)
}

// TestCoverage_Report checks the diagnostic fields on a tampered sequence.
func TestCoverage_Report(t *testing.T) {
	// windows: 000 000 000 001 011 111 110 100
	r, err := debruijn.Coverage(2, 3, []int{0, 0, 0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, debruijn.Report{
		Windows:       8,
		Expected:      8,
		Distinct:      6,
		FirstRepeat:   1,
		InvalidSymbol: -1,
	}, r)
	assert.Equal(t, 2, r.Missing())
	assert.False(t, r.Valid())

	r, err = debruijn.Coverage(2, 3, []int{0, 0, 0, 1, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.True(t, r.Valid())
	assert.Equal(t, -1, r.FirstRepeat)
	assert.Equal(t, 0, r.Missing())

	// Full window coverage but twice the length: every word occurs twice.
	doubled := []int{0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1}
	r, err = debruijn.Coverage(2, 3, doubled)
	require.NoError(t, err)
	assert.Equal(t, r.Expected, r.Distinct, "all 8 words are present")
	assert.Equal(t, 16, r.Windows)
	assert.Equal(t, 8, r.FirstRepeat)
	assert.False(t, r.Valid(), "length must equal k^n")

	r, err = debruijn.Coverage(3, 2, []int{0, 1, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, r.InvalidSymbol)
	assert.False(t, r.Valid())
}

// TestIsDeBruijn_DoesNotMutateInput verifies the predicate is pure and that a
// computed result is unaffected by later changes to the caller's slice.
func TestIsDeBruijn_DoesNotMutateInput(t *testing.T) {
	seq, err := debruijn.Build(2, 4)
	require.NoError(t, err)
	orig := slices.Clone(seq)

	ok, err := debruijn.IsDeBruijn(2, 4, seq)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orig, seq, "input must not be mutated")

	seq[0], seq[len(seq)-1] = seq[len(seq)-1], seq[0]
	assert.True(t, ok, "previous result is a value, not a view")

	again, err := debruijn.IsDeBruijn(2, 4, seq)
	require.NoError(t, err)
	assert.False(t, again)
}

// TestWindowCode covers the encoding and its argument checks.
func TestWindowCode(t *testing.T) {
	code, err := debruijn.WindowCode(3, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2+0*3+1*9), code)

	code, err = debruijn.WindowCode(2, []int{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(15), code)

	_, err = debruijn.WindowCode(3, []int{0, 3})
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
	_, err = debruijn.WindowCode(3, nil)
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
	_, err = debruijn.WindowCode(0, []int{0})
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
}

// naiveCoverage recomputes distinct codes with WindowCode on an explicit
// extended copy, as a reference for the rolling implementation.
func naiveCoverage(t *testing.T, k, n int, seq []int) int {
	t.Helper()
	ext := append(slices.Clone(seq), seq[:n-1]...)
	seen := make(map[uint64]struct{})
	for i := range seq {
		code, err := debruijn.WindowCode(k, ext[i:i+n])
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	return len(seen)
}

// TestCoverage_MatchesNaiveEncoding cross-checks the rolling code on random input.
func TestCoverage_MatchesNaiveEncoding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		k := 1 + rng.Intn(4)
		n := 1 + rng.Intn(4)
		m := n - 1 + rng.Intn(40)
		if m == 0 {
			m = 1
		}
		seq := make([]int, m)
		for i := range seq {
			seq[i] = rng.Intn(k)
		}

		r, err := debruijn.Coverage(k, n, seq)
		require.NoError(t, err, "k=%d n=%d m=%d", k, n, m)
		assert.Equal(t, naiveCoverage(t, k, n, seq), r.Distinct, "k=%d n=%d seq=%v", k, n, seq)
	}
}
