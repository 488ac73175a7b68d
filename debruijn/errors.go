// SPDX-License-Identifier: MIT
// Package: debruijn
//
// errors.go: sentinel errors for the debruijn package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site: "<Method>: <detail>: <sentinel>".
//   • No panics on user input; no partial output on failure.

package debruijn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/necklace/lyndon"
)

// ErrInvalidArgument indicates k < 1, n < 1, or a sequence too short to form
// a single n-length cyclic window. It is the same sentinel as
// lyndon.ErrInvalidArgument, so one errors.Is check covers both packages.
var ErrInvalidArgument = lyndon.ErrInvalidArgument

// ErrOverflow indicates that k^n does not fit an int. It wraps
// ErrInvalidArgument: errors.Is(ErrOverflow, ErrInvalidArgument) == true.
var ErrOverflow = fmt.Errorf("debruijn: k^n exceeds supported range: %w", ErrInvalidArgument)

// ErrOptionViolation indicates that a WithX option received a meaningless value.
var ErrOptionViolation = errors.New("debruijn: invalid option value")

// Method names used as error-context prefixes.
const (
	MethodLength        = "Length"
	MethodBuild         = "Build"
	MethodBuildEulerian = "BuildEulerian"
	MethodIsDeBruijn    = "IsDeBruijn"
	MethodCoverage      = "Coverage"
	MethodWindowCode    = "WindowCode"
	MethodBuildAll      = "BuildAll"
)

// invalidf wraps ErrInvalidArgument with method context.
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// validateKN enforces k ≥ 1 and n ≥ 1.
func validateKN(method string, k, n int) error {
	if k < 1 {
		return invalidf(method, "alphabet size k must be ≥ 1, got %d", k)
	}
	if n < 1 {
		return invalidf(method, "window length n must be ≥ 1, got %d", n)
	}

	return nil
}
