// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/necklace/debruijn"
)

// defaultSeed replaces seed 0 so runs stay reproducible.
const defaultSeed int64 = 1

// newRandomCmd generates and verifies B(k, n) for a seeded random (k, n).
func newRandomCmd(a *app) *cobra.Command {
	var (
		seed int64
		maxK int
		maxN int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate and verify B(k, n) for a random (k, n)",
		Long: `Random draws k ∈ [2, max-k] and n ∈ [1, max-n] from a seeded source,
then generates and verifies B(k, n). The same seed always picks the same pair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxK < 2 || maxN < 1 {
				return fmt.Errorf("max-k must be ≥ 2 and max-n ≥ 1, got %d and %d: %w",
					maxK, maxN, debruijn.ErrOptionViolation)
			}
			p := randomParams(seed, maxK, maxN)
			a.logger.Debug("random parameters drawn",
				zap.Int64("seed", seed), zap.Int("k", p.K), zap.Int("n", p.N))

			a.cfg.Verify = true
			res, err := a.generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			return a.printResult(cmd, res)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", defaultSeed, "random seed (0 = default seed)")
	cmd.Flags().IntVar(&maxK, "max-k", 5, "largest alphabet size to draw")
	cmd.Flags().IntVar(&maxN, "max-n", 4, "largest window length to draw")

	return cmd
}

// randomParams draws (k, n) deterministically from seed.
func randomParams(seed int64, maxK, maxN int) debruijn.Params {
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	return debruijn.Params{K: 2 + rng.Intn(maxK-1), N: 1 + rng.Intn(maxN)}
}
