// Package callstack simulates, without recursing, the call stack of
// factorial(n) and records it as a playback trace of exactly 2n steps.
//
// Steps 0..n-1 descend: step k holds frames factorial(n) … factorial(n-k),
// the newest one active. Steps n..2n-1 return: step n+r holds the frames
// factorial(n) … factorial(r+1) that are still live, each already carrying
// its result, the innermost one active.
//
// Results are recomputed from each frame's argument when the step is built,
// so no step depends on any other.
package callstack

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/trace"
)

// MaxN is the largest argument whose factorial fits in an int64.
const MaxN = 20

// Factorial records the call stack of factorial(n) for 1 <= n <= MaxN.
// Presenters usually restrict n further (1..7) for legibility.
func Factorial(n int) *trace.Trace {
	if n < 1 || n > MaxN {
		panic(errors.AssertionFailedf("callstack: factorial argument %d outside [1, %d]", n, MaxN))
	}

	rec := trace.NewRecorder("factorial", trace.KindCallStack, []float64{float64(n)})
	for k := 0; k < 2*n; k++ {
		rec.Record(stepAt(n, k))
	}

	return rec.Finish(nil)
}

// stepAt synthesizes step k of factorial(n) from n and k alone.
func stepAt(n, k int) trace.Step {
	// 1. Descending phase: push factorial(n-k)
	if k < n {
		frames := make([]trace.Frame, 0, k+1)
		for i := 0; i <= k; i++ {
			frames = append(frames, trace.Frame{Value: n - i, Active: i == k})
		}
		arg := n - k
		desc := fmt.Sprintf("Calling factorial(%d), waiting for factorial(%d)", arg, arg-1)
		if arg <= 1 {
			desc = fmt.Sprintf("Calling factorial(%d): base case reached", arg)
		}

		return trace.Step{
			Action:      trace.ActionCall,
			Description: desc,
			CallStack:   &trace.CallStackInfo{N: n, Frames: frames},
		}
	}

	// 2. Returning phase: frames above the r-th returned one are gone
	r := k - n
	live := n - r
	frames := make([]trace.Frame, 0, live)
	for i := 0; i < live; i++ {
		v := n - i
		frames = append(frames, trace.Frame{
			Value:     v,
			Active:    i == live-1,
			Returning: true,
			Result:    Fact(v),
		})
	}
	top := r + 1

	return trace.Step{
		Action:      trace.ActionReturn,
		Description: fmt.Sprintf("Returning from factorial(%d) with result %d", top, Fact(top)),
		CallStack:   &trace.CallStackInfo{N: n, Frames: frames},
	}
}

// Fact returns v! for 0 <= v <= MaxN.
func Fact(v int) int64 {
	out := int64(1)
	for i := int64(2); i <= int64(v); i++ {
		out *= i
	}

	return out
}
