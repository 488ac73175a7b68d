// Package lyndon defines the Word type and sentinel errors.
package lyndon

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is returned when k < 1 or n < 1.
// It is the single error kind shared with package debruijn.
var ErrInvalidArgument = errors.New("lyndon: invalid argument")

// Method names used as error-context prefixes.
const (
	MethodWords        = "Words"
	MethodNewGenerator = "NewGenerator"
	MethodGenerate     = "Generate"
)

// Word is an ordered sequence of symbols, each in 0..k-1.
type Word []int

// Len returns the number of symbols in w.
func (w Word) Len() int { return len(w) }

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	return slices.Clone(w)
}

// Compare reports the lexicographic order of a and b:
// -1 if a < b, 0 if equal, +1 if a > b. A proper prefix sorts first.
func Compare(a, b Word) int {
	return slices.Compare(a, b)
}

// validate enforces k ≥ 1 and n ≥ 1, wrapping ErrInvalidArgument with method context.
func validate(method string, k, n int) error {
	if k < 1 {
		return fmt.Errorf("%s: alphabet size k must be ≥ 1, got %d: %w", method, k, ErrInvalidArgument)
	}
	if n < 1 {
		return fmt.Errorf("%s: word length n must be ≥ 1, got %d: %w", method, n, ErrInvalidArgument)
	}

	return nil
}
