// SPDX-License-Identifier: MIT
// Package: debruijn
//
// batch.go: bounded-parallel construction of many B(k, n).
//
// Concurrency:
//   - Each (k, n) is built by its own goroutine with its own buffers; workers
//     share nothing but the result slot they own.
//   - errgroup bounds the fan-out and cancels the remaining work on the first
//     error; BuildAll returns only after every goroutine has exited.

package debruijn

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Params is one (k, n) request.
type Params struct {
	K int `json:"k" yaml:"k"`
	N int `json:"n" yaml:"n"`
}

// Result is the outcome for one Params.
//
//   - Sequence: the built B(K, N).
//   - Verified: IsDeBruijn result; only meaningful when WithVerify(true).
type Result struct {
	Params   `yaml:",inline"`
	Method   string `json:"method" yaml:"method"`
	Sequence []int  `json:"sequence" yaml:"sequence,flow"`
	Verified bool   `json:"verified" yaml:"verified"`
}

// BuildAll builds B(k, n) for every entry of params, in parallel, and returns
// results in input order.
//
// The first failing entry (invalid arguments, overflow, verification error or
// ctx cancellation) aborts the batch; no partial results are returned.
//
// Example:
//
//	res, err := debruijn.BuildAll(ctx, []debruijn.Params{{K: 2, N: 3}, {K: 4, N: 2}},
//		debruijn.WithConcurrency(2), debruijn.WithVerify(true))
func BuildAll(ctx context.Context, params []Params, opts ...Option) ([]Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildAll, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(params))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)

	for i, p := range params {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := buildOne(o, p)
			if err != nil {
				return fmt.Errorf("%s: params[%d] (k=%d, n=%d): %w", MethodBuildAll, i, p.K, p.N, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// buildOne runs the configured construction (and verification) for p.
func buildOne(o Options, p Params) (Result, error) {
	var (
		seq []int
		err error
	)
	switch o.Method {
	case MethodEulerian:
		seq, err = BuildEulerian(p.K, p.N)
	default:
		seq, err = Build(p.K, p.N)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Params: p, Method: o.Method.String(), Sequence: seq}
	if o.Verify {
		ok, err := IsDeBruijn(p.K, p.N, seq)
		if err != nil {
			return Result{}, err
		}
		res.Verified = ok
	}

	return res, nil
}
