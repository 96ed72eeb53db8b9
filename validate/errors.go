// SPDX-License-Identifier: MIT
// Package validate: sentinel error set.
// Every rejection returned by Parse, ParseTarget, ParseN and Check wraps
// exactly one of these sentinels; callers match them with errors.Is.
// A rejected input produces no Trace and leaves no partial state.

package validate

import "github.com/cockroachdb/errors"

var (
	// ErrParse is returned when a token is not a finite number.
	ErrParse = errors.New("validate: not a number")

	// ErrEmptyInput is returned when no tokens remain after splitting.
	ErrEmptyInput = errors.New("validate: empty input")

	// ErrSize is returned when the element count is outside the configured bounds.
	ErrSize = errors.New("validate: size out of bounds")

	// ErrOrdering is returned when sorted input is required but the
	// sequence is not non-decreasing.
	ErrOrdering = errors.New("validate: input not sorted")

	// ErrRange is returned when a value falls outside the declared domain
	// or is not integral where integers are required.
	ErrRange = errors.New("validate: value out of range")
)

// Class names the taxonomy bucket of err for display ("ParseError", …),
// or returns "" when err is not a validation error.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrEmptyInput):
		return "EmptyInputError"
	case errors.Is(err, ErrSize):
		return "SizeError"
	case errors.Is(err, ErrOrdering):
		return "OrderingError"
	case errors.Is(err, ErrRange):
		return "RangeError"
	default:
		return ""
	}
}
