// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Check validates an already parsed sequence against c. It is the single
// source of truth for preconditions: Parse calls it after tokenizing, and
// the engine calls it again before dispatching to a tracer.
//
// Complexity: O(n), allocation-free on success.
func Check(seq []float64, c Constraints) error {
	// 1. Emptiness
	if len(seq) == 0 {
		return ErrEmptyInput
	}

	// 2. Size bounds
	if c.MaxSize > 0 && len(seq) > c.MaxSize {
		return errors.Wrapf(ErrSize, "%d elements exceed the maximum of %d", len(seq), c.MaxSize)
	}
	if c.MinSize > 0 && len(seq) < c.MinSize {
		return errors.Wrapf(ErrSize, "%d elements are below the minimum of %d", len(seq), c.MinSize)
	}

	// 3. Integrality, then domain, element by element
	for i, v := range seq {
		if c.IntegersOnly && v != math.Trunc(v) {
			return errors.Wrapf(ErrRange, "element %d (%g) is not an integer", i, v)
		}
		if c.HasRange && (v < c.Min || v > c.Max) {
			return errors.Wrapf(ErrRange, "element %d (%g) outside [%g, %g]", i, v, c.Min, c.Max)
		}
	}

	// 4. Ordering
	if c.RequireSorted {
		for i := 1; i < len(seq); i++ {
			if seq[i] < seq[i-1] {
				return errors.Wrapf(ErrOrdering, "element %d (%g) is smaller than element %d (%g)",
					i, seq[i], i-1, seq[i-1])
			}
		}
	}

	return nil
}
