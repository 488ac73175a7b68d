package debruijn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necklace/debruijn"
)

// TestBuildEulerian_Small pins the deterministic circuit on tiny graphs.
func TestBuildEulerian_Small(t *testing.T) {
	seq, err := debruijn.BuildEulerian(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seq, "n=1: one vertex with k self-loops")

	seq, err = debruijn.BuildEulerian(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0}, seq)
}

// TestBuildEulerian_Valid cross-checks the graph construction with the
// verifier for a grid of (k, n).
func TestBuildEulerian_Valid(t *testing.T) {
	for k := 2; k <= 5; k++ {
		for n := 1; n <= 5; n++ {
			seq, err := debruijn.BuildEulerian(k, n)
			require.NoError(t, err, "k=%d n=%d", k, n)

			want, err := debruijn.Length(k, n)
			require.NoError(t, err)
			require.Len(t, seq, want)

			ok, err := debruijn.IsDeBruijn(k, n, seq)
			require.NoError(t, err)
			assert.True(t, ok, "BuildEulerian(%d,%d) is not de Bruijn", k, n)
		}
	}
}

// TestBuildEulerian_KEqualsOne degenerates to a single self-loop.
func TestBuildEulerian_KEqualsOne(t *testing.T) {
	seq, err := debruijn.BuildEulerian(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, seq)
}

// TestBuildEulerian_Errors mirrors Build's argument handling.
func TestBuildEulerian_Errors(t *testing.T) {
	_, err := debruijn.BuildEulerian(0, 3)
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
	_, err = debruijn.BuildEulerian(2, 0)
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
	for _, kn := range [][2]int{{2, 64}, {2, 62}, {2, 31}} {
		seq, err := debruijn.BuildEulerian(kn[0], kn[1])
		assert.ErrorIs(t, err, debruijn.ErrOverflow, "k=%d n=%d", kn[0], kn[1])
		assert.Nil(t, seq)
	}
}
