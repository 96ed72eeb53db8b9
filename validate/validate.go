// SPDX-License-Identifier: MIT
// Package: validate
//
// Purpose:
//   - Turn raw user text into a normalized Sequence.
//   - Enforce per-algorithm preconditions in one place so tracers can
//     assume valid input and stay total.
//
// Check order (fixed, enforced in tests):
//   parse -> empty -> size -> integrality -> range -> ordering.

package validate

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Sequence is a validated, normalized numeric input.
type Sequence []float64

// Constraints declares the preconditions an algorithm places on its input.
// The zero value accepts any non-empty sequence.
type Constraints struct {
	// MinSize and MaxSize bound the element count; 0 disables a bound.
	MinSize int
	MaxSize int

	// RequireSorted rejects sequences that are not non-decreasing.
	RequireSorted bool

	// IntegersOnly rejects values with a fractional part.
	IntegersOnly bool

	// HasRange enables the inclusive [Min, Max] value domain.
	HasRange bool
	Min      float64
	Max      float64
}

// Tokenize splits raw on commas and whitespace. Runs of separators collapse,
// so "1,, 2" yields two tokens.
func Tokenize(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// Parse converts raw into a Sequence satisfying c.
//
// Errors: ErrParse, ErrEmptyInput, ErrSize, ErrRange, ErrOrdering.
// Complexity: O(n).
func Parse(raw string, c Constraints) (Sequence, error) {
	// 1. Tokenize and parse every token
	tokens := Tokenize(raw)
	seq := make(Sequence, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parseNumber(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d (%q)", i, tok)
		}
		seq = append(seq, v)
	}

	// 2. Apply structural and domain checks
	if err := Check(seq, c); err != nil {
		return nil, err
	}

	return seq, nil
}

// ParseTarget parses the single number a search looks for.
//
// Errors: ErrEmptyInput when raw is blank, ErrParse otherwise.
func ParseTarget(raw string) (float64, error) {
	tokens := Tokenize(raw)
	switch len(tokens) {
	case 0:
		return 0, errors.Wrap(ErrEmptyInput, "target")
	case 1:
		v, err := parseNumber(tokens[0])
		if err != nil {
			return 0, errors.Wrapf(err, "target %q", tokens[0])
		}

		return v, nil
	default:
		return 0, errors.Wrapf(ErrParse, "target must be a single number, got %d tokens", len(tokens))
	}
}

// ParseN parses the integer argument of a recursion trace and checks it lies
// in [lo, hi].
//
// Errors: ErrEmptyInput, ErrParse, ErrRange.
func ParseN(raw string, lo, hi int) (int, error) {
	seq, err := Parse(raw, Constraints{
		MinSize:      1,
		MaxSize:      1,
		IntegersOnly: true,
		HasRange:     true,
		Min:          float64(lo),
		Max:          float64(hi),
	})
	if err != nil {
		return 0, err
	}

	return int(seq[0]), nil
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ErrParse
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrParse
	}

	return v, nil
}
