// SPDX-License-Identifier: MIT
// Package: debruijn
//
// options.go: functional options for BuildAll.
//
// Invalid option values never panic: they are recorded and surfaced as
// ErrOptionViolation when BuildAll runs.

package debruijn

import (
	"fmt"
	"runtime"
)

// Method selects the construction used by BuildAll.
type Method int

const (
	// MethodLyndon concatenates Lyndon words (Build). Lexicographically smallest.
	MethodLyndon Method = iota

	// MethodEulerian walks an Eulerian circuit of the de Bruijn graph (BuildEulerian).
	MethodEulerian
)

// String returns the lower-case method name used by the CLI.
func (m Method) String() string {
	switch m {
	case MethodLyndon:
		return "lyndon"
	case MethodEulerian:
		return "eulerian"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "lyndon" / "eulerian" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "lyndon", "":
		return MethodLyndon, nil
	case "eulerian":
		return MethodEulerian, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want lyndon|eulerian): %w", s, ErrOptionViolation)
	}
}

// Option configures BuildAll.
type Option func(*Options)

// Options holds the resolved BuildAll configuration.
type Options struct {
	// Concurrency bounds the number of (k, n) pairs built at once (≥1).
	Concurrency int

	// Method chooses the construction.
	Method Method

	// Verify runs IsDeBruijn on every built sequence.
	Verify bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Concurrency = runtime.GOMAXPROCS(0)
//   - Method = MethodLyndon
//   - Verify = false
func DefaultOptions() Options {
	return Options{
		Concurrency: runtime.GOMAXPROCS(0),
		Method:      MethodLyndon,
		Verify:      false,
	}
}

// WithConcurrency bounds the number of concurrent builds.
//
//	c ≥ 1: at most c builds in flight
//	c < 1: invalid option → ErrOptionViolation
func WithConcurrency(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: concurrency must be ≥ 1, got %d", ErrOptionViolation, c)

			return
		}
		o.Concurrency = c
	}
}

// WithMethod selects the construction; unknown values → ErrOptionViolation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodLyndon && m != MethodEulerian {
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, int(m))

			return
		}
		o.Method = m
	}
}

// WithVerify toggles verification of every built sequence.
func WithVerify(v bool) Option {
	return func(o *Options) {
		o.Verify = v
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
