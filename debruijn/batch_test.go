package debruijn_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necklace/debruijn"
)

// TestBuildAll_MatchesSequential verifies input order and equality with Build.
func TestBuildAll_MatchesSequential(t *testing.T) {
	var params []debruijn.Params
	for k := 2; k <= 4; k++ {
		for n := 1; n <= 4; n++ {
			params = append(params, debruijn.Params{K: k, N: n})
		}
	}

	res, err := debruijn.BuildAll(context.Background(), params,
		debruijn.WithConcurrency(3), debruijn.WithVerify(true))
	require.NoError(t, err)
	require.Len(t, res, len(params))

	for i, r := range res {
		assert.Equal(t, params[i], r.Params, "result %d out of order", i)
		assert.Equal(t, "lyndon", r.Method)
		assert.True(t, r.Verified, "k=%d n=%d", r.K, r.N)

		want, err := debruijn.Build(r.K, r.N)
		require.NoError(t, err)
		assert.Equal(t, want, r.Sequence)
	}
}

// TestBuildAll_Eulerian runs the graph construction through the batch path.
func TestBuildAll_Eulerian(t *testing.T) {
	res, err := debruijn.BuildAll(context.Background(),
		[]debruijn.Params{{K: 2, N: 3}, {K: 3, N: 3}},
		debruijn.WithMethod(debruijn.MethodEulerian), debruijn.WithVerify(true))
	require.NoError(t, err)
	for _, r := range res {
		assert.Equal(t, "eulerian", r.Method)
		assert.True(t, r.Verified)
	}
}

// TestBuildAll_Errors covers option violations, bad params and cancellation.
func TestBuildAll_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := debruijn.BuildAll(ctx, nil, debruijn.WithConcurrency(0))
	assert.ErrorIs(t, err, debruijn.ErrOptionViolation)

	_, err = debruijn.BuildAll(ctx, nil, debruijn.WithMethod(debruijn.Method(7)))
	assert.ErrorIs(t, err, debruijn.ErrOptionViolation)

	res, err := debruijn.BuildAll(ctx, []debruijn.Params{{K: 2, N: 2}, {K: 0, N: 2}})
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)
	assert.Nil(t, res, "no partial results")

	// k=1, n=5 builds fine but cannot be verified.
	_, err = debruijn.BuildAll(ctx, []debruijn.Params{{K: 1, N: 5}}, debruijn.WithVerify(true))
	assert.ErrorIs(t, err, debruijn.ErrInvalidArgument)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = debruijn.BuildAll(canceled, []debruijn.Params{{K: 2, N: 3}, {K: 3, N: 2}})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuildAll_Empty returns an empty, non-nil result set.
func TestBuildAll_Empty(t *testing.T) {
	res, err := debruijn.BuildAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

// TestParseMethod covers the CLI-facing method names.
func TestParseMethod(t *testing.T) {
	m, err := debruijn.ParseMethod("eulerian")
	require.NoError(t, err)
	assert.Equal(t, debruijn.MethodEulerian, m)

	m, err = debruijn.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, debruijn.MethodLyndon, m)
	assert.Equal(t, "lyndon", m.String())

	_, err = debruijn.ParseMethod("greedy")
	assert.ErrorIs(t, err, debruijn.ErrOptionViolation)
	assert.Equal(t, "Method(9)", debruijn.Method(9).String())
}
