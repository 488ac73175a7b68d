// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/necklace/lyndon"
)

// lyndonOutput is the structured form of a Lyndon enumeration.
type lyndonOutput struct {
	K     int     `json:"k" yaml:"k"`
	N     int     `json:"n" yaml:"n"`
	Words [][]int `json:"words" yaml:"words,flow"`
}

// newLyndonCmd lists the Lyndon words Build concatenates.
func newLyndonCmd(a *app) *cobra.Command {
	var (
		check    bool
		divisors bool
	)
	cmd := &cobra.Command{
		Use:   "lyndon",
		Short: "List k-ary Lyndon words of length ≤ n in lexicographic order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, n := a.cfg.K, a.cfg.N
			seq, err := lyndon.Words(k, n)
			if err != nil {
				return err
			}

			res := lyndonOutput{K: k, N: n}
			for w := range seq {
				if divisors && n%len(w) != 0 {
					continue
				}
				if check && !lyndon.IsLyndon(w) {
					return fmt.Errorf("generated word %v is not a Lyndon word", w)
				}
				res.Words = append(res.Words, w)
			}
			a.logger.Debug("lyndon words listed",
				zap.Int("k", k), zap.Int("n", n), zap.Int("count", len(res.Words)))

			if a.cfg.Format != "text" {
				return encode(out(cmd), a.cfg.Format, res)
			}
			w := out(cmd)
			for _, word := range res.Words {
				fmt.Fprintln(w, joinSymbols(word))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "assert the Lyndon property of every word")
	cmd.Flags().BoolVar(&divisors, "divisors-only", false, "only words whose length divides n")

	return cmd
}
