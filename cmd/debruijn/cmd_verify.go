// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/necklace/debruijn"
)

// errNotDeBruijn makes `verify` exit non-zero for a rejected sequence.
var errNotDeBruijn = errors.New("sequence is not a de Bruijn sequence")

// verifyOutput is the structured form of a verification.
type verifyOutput struct {
	K           int      `json:"k" yaml:"k"`
	N           int      `json:"n" yaml:"n"`
	Valid       bool     `json:"valid" yaml:"valid"`
	Windows     int      `json:"windows" yaml:"windows"`
	Expected    int      `json:"expected" yaml:"expected"`
	Distinct    int      `json:"distinct" yaml:"distinct"`
	Missing     int      `json:"missing" yaml:"missing"`
	FirstRepeat int      `json:"first_repeat" yaml:"first_repeat"`
	Invalid     int      `json:"invalid_symbol" yaml:"invalid_symbol"`
	Codes       []uint64 `json:"codes,omitempty" yaml:"codes,omitempty,flow"`
}

// newVerifyCmd checks a user-supplied sequence.
func newVerifyCmd(a *app) *cobra.Command {
	var (
		seqFlag string
		codes   bool
	)
	cmd := &cobra.Command{
		Use:   "verify [symbol...]",
		Short: "Verify that a sequence is a de Bruijn sequence B(k, n)",
		Long: `Verify reads a sequence (positional symbols and/or --seq "0,0,1,...")
and checks that every length-n word over 0..k-1 occurs exactly once as a
cyclic window. Exits non-zero when the sequence is rejected.

Example:
  debruijn verify -k 2 -n 3 0 0 0 1 0 1 1 1
  debruijn verify -k 2 -n 3 --seq 0,0,0,1,0,1,1,1 --codes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seqFlag != "" {
				args = append(args, seqFlag)
			}
			seq, err := parseSymbols(args)
			if err != nil {
				return err
			}

			k, n := a.cfg.K, a.cfg.N
			r, err := debruijn.Coverage(k, n, seq)
			if err != nil {
				a.logger.Error("verification failed", zap.Int("k", k), zap.Int("n", n), zap.Error(err))

				return err
			}
			v := verifyOutput{
				K: k, N: n,
				Valid:       r.Valid(),
				Windows:     r.Windows,
				Expected:    r.Expected,
				Distinct:    r.Distinct,
				Missing:     r.Missing(),
				FirstRepeat: r.FirstRepeat,
				Invalid:     r.InvalidSymbol,
			}
			if codes && r.InvalidSymbol < 0 {
				if v.Codes, err = windowCodes(k, n, seq); err != nil {
					return err
				}
			}
			a.logger.Info("sequence verified",
				zap.Int("k", k), zap.Int("n", n), zap.Bool("valid", v.Valid), zap.Int("distinct", v.Distinct))

			if err := a.printVerify(cmd, v); err != nil {
				return err
			}
			if !v.Valid {
				return errNotDeBruijn
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&seqFlag, "seq", "", "comma-separated symbols")
	cmd.Flags().BoolVar(&codes, "codes", false, "also print the code of every cyclic window")

	return cmd
}

// windowCodes returns the code of every cyclic window of seq.
func windowCodes(k, n int, seq []int) ([]uint64, error) {
	ext := append(append([]int(nil), seq...), seq[:n-1]...)
	res := make([]uint64, len(seq))
	for i := range seq {
		c, err := debruijn.WindowCode(k, ext[i:i+n])
		if err != nil {
			return nil, err
		}
		res[i] = c
	}

	return res, nil
}

// printVerify renders v in the configured format.
func (a *app) printVerify(cmd *cobra.Command, v verifyOutput) error {
	if a.cfg.Format != "text" {
		return encode(out(cmd), a.cfg.Format, v)
	}
	w := out(cmd)
	fmt.Fprintf(w, "valid=%v windows=%d distinct=%d/%d missing=%d first_repeat=%d",
		v.Valid, v.Windows, v.Distinct, v.Expected, v.Missing, v.FirstRepeat)
	if v.Invalid >= 0 {
		fmt.Fprintf(w, " invalid_symbol=%d", v.Invalid)
	}
	fmt.Fprintln(w)
	if len(v.Codes) > 0 {
		fmt.Fprintf(w, "codes=%v\n", v.Codes)
	}

	return nil
}
