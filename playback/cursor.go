// Package playback provides the bounded cursor a presenter moves across a
// finished trace.
//
// A Cursor is either Empty (position -1, nothing shown yet) or Active(k)
// with 0 <= k < Len. Moves past either end are no-ops, never errors, and no
// move re-runs the algorithm: the cursor only changes an index into the
// already materialized Trace.
//
// A Cursor is owned by a single presenter and is not safe for concurrent
// mutation; the Trace behind it may be shared freely.
package playback

import "github.com/katalvlaran/algotrace/trace"

// Empty is the position of a cursor before playback starts.
const Empty = -1

// Cursor is a bounded index over a Trace.
type Cursor struct {
	t   *trace.Trace
	pos int
}

// New returns an Empty cursor over t.
func New(t *trace.Trace) *Cursor {
	return &Cursor{t: t, pos: Empty}
}

// Trace returns the trace the cursor moves over.
func (c *Cursor) Trace() *trace.Trace { return c.t }

// Len returns the number of steps reachable by the cursor.
func (c *Cursor) Len() int {
	if c.t == nil {
		return 0
	}

	return c.t.Len()
}

// Position returns the current index, or Empty.
func (c *Cursor) Position() int { return c.pos }

// Started reports whether the cursor is Active.
func (c *Cursor) Started() bool { return c.pos != Empty }

// AtStart reports whether the cursor is on the first step.
func (c *Cursor) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor is on the terminal step.
func (c *Cursor) AtEnd() bool { return c.Len() > 0 && c.pos == c.Len()-1 }

// StepForward moves Empty to 0, or k to k+1 when k+1 < Len.
// It reports whether the position changed.
func (c *Cursor) StepForward() bool {
	if c.pos+1 >= c.Len() {
		return false
	}
	c.pos++

	return true
}

// StepBackward moves k to k-1 when k > 0. Empty and 0 stay put.
// It reports whether the position changed.
func (c *Cursor) StepBackward() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--

	return true
}

// Reset returns the cursor to Empty.
func (c *Cursor) Reset() { c.pos = Empty }

// JumpTo moves to k clamped into [0, Len-1]. On an empty trace it is a no-op.
func (c *Cursor) JumpTo(k int) {
	n := c.Len()
	if n == 0 {
		return
	}
	c.pos = max(0, min(k, n-1))
}

// Current returns the step under the cursor, or false when Empty.
func (c *Cursor) Current() (trace.Step, bool) {
	if c.pos == Empty || c.t == nil {
		return trace.Step{}, false
	}

	return c.t.At(c.pos)
}
