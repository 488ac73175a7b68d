// SPDX-License-Identifier: MIT

// Command debruijn generates and verifies de Bruijn sequences from the shell.
//
//	debruijn generate -k 4 -n 2 --verify
//	debruijn verify -k 2 -n 3 0 0 0 1 0 1 1 1
//	debruijn lyndon -k 2 -n 4 --check
//	debruijn random --seed 42
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	logger  *zap.Logger
	cfg     Config
	cfgPath string
	verbose bool
}

func main() {
	a := &app{}
	if err := execute(a, newRootCmd(a)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and flushes the logger afterwards, on success and on
// failure alike (cobra skips PersistentPostRun when RunE fails).
func execute(a *app, root *cobra.Command) error {
	defer a.sync()

	return root.Execute()
}

// sync flushes buffered log entries, if a logger was created.
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newRootCmd wires the command tree around a.
// If a.logger is already set (tests), it is used as is.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "debruijn",
		Short: "Generate and verify de Bruijn sequences",
		Long: `debruijn builds de Bruijn sequences B(k, n): cyclic sequences over the
alphabet 0..k-1 in which every length-n word occurs exactly once.

Sequences are built from Lyndon words (Duval's algorithm) or from an Eulerian
circuit of the de Bruijn graph, and checked by mixed-radix window encoding.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			cfg, err := loadConfig(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg, err = applyFlags(cfg, cmd)
			if err != nil {
				return err
			}
			a.logger.Debug("configuration resolved",
				zap.String("config", a.cfgPath),
				zap.Int("k", a.cfg.K),
				zap.Int("n", a.cfg.N),
				zap.String("method", a.cfg.Method),
				zap.String("format", a.cfg.Format),
			)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.cfgPath, "config", "", "YAML file with defaults for k, n, method, format, verify")
	pf.IntP("k", "k", defaultK, "alphabet size (symbols 0..k-1)")
	pf.IntP("n", "n", defaultN, "window length")
	pf.String("method", defaultMethod, "construction: lyndon|eulerian")
	pf.StringP("format", "f", defaultFormat, "output format: text|json|yaml")
	pf.Bool("verify", false, "verify generated sequences")

	root.AddCommand(
		newGenerateCmd(a),
		newVerifyCmd(a),
		newLyndonCmd(a),
		newRandomCmd(a),
	)

	return root
}

// out returns the command's stdout writer.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
