package trace

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Trace is the immutable record of one tracer invocation.
// A Trace is safe for concurrent reads; it has no mutating methods.
type Trace struct {
	runID     uuid.UUID
	algorithm string
	kind      Kind
	original  []float64
	final     []float64
	steps     []Step
	phases    []PhaseCount
}

// RunID identifies the run that produced t. Every run gets a fresh ID.
func (t *Trace) RunID() uuid.UUID { return t.runID }

// Algorithm returns the algorithm name given to the Recorder.
func (t *Trace) Algorithm() string { return t.algorithm }

// Kind returns the algorithm family of every step in t.
func (t *Trace) Kind() Kind { return t.kind }

// Len returns the number of steps; it is at least 1.
func (t *Trace) Len() int { return len(t.steps) }

// At returns a copy of step i, or false when i is out of range.
func (t *Trace) At(i int) (Step, bool) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, false
	}

	return t.steps[i].Clone(), true
}

// First returns a copy of the first step.
func (t *Trace) First() Step { return t.steps[0].Clone() }

// Last returns a copy of the terminal step.
func (t *Trace) Last() Step { return t.steps[len(t.steps)-1].Clone() }

// Steps returns copies of all steps in order.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i := range t.steps {
		out[i] = t.steps[i].Clone()
	}

	return out
}

// Original returns a copy of the input sequence the tracer was given.
func (t *Trace) Original() []float64 { return slices.Clone(t.original) }

// Final returns a copy of the fully processed sequence (sorted output, or the
// unchanged input for searches). It is nil for traces without a sequence.
func (t *Trace) Final() []float64 { return slices.Clone(t.final) }

// PhaseCounts reports the number of steps per phase, in order. Traces
// recorded without phases return nil.
func (t *Trace) PhaseCounts() []PhaseCount { return slices.Clone(t.phases) }

// PhaseStart returns the index of the first step of phase p, or -1 when t has
// no such phase.
func (t *Trace) PhaseStart(p Phase) int {
	at := 0
	for _, pc := range t.phases {
		if pc.Phase == p {
			if pc.Steps == 0 {
				return -1
			}

			return at
		}
		at += pc.Steps
	}

	return -1
}

// Recorder accumulates steps for one tracer invocation. It is not safe for
// concurrent use and must not be reused after Finish.
type Recorder struct {
	algorithm string
	kind      Kind
	original  []float64
	phase     Phase
	phases    []PhaseCount
	steps     []Step
	finished  bool
}

// NewRecorder starts a recording of algorithm over input. The input is copied.
func NewRecorder(algorithm string, kind Kind, input []float64) *Recorder {
	return &Recorder{
		algorithm: algorithm,
		kind:      kind,
		original:  slices.Clone(input),
		steps:     make([]Step, 0, 2*len(input)+1),
	}
}

// Phase starts a new phase; subsequent steps are counted towards it.
func (r *Recorder) Phase(p Phase) {
	r.phase = p
	r.phases = append(r.phases, PhaseCount{Phase: p})
}

// Record appends a deep copy of s. Index, Kind and Phase are assigned by the
// recorder, so tracers may keep mutating the slices they passed in.
func (r *Recorder) Record(s Step) {
	if r.finished {
		panic(errors.AssertionFailedf("trace: Record after Finish on %s", r.algorithm))
	}
	s.Kind = r.kind
	if n, ok := s.payloads(); n != 1 || !ok {
		panic(errors.AssertionFailedf(
			"trace: %s step %q has %d payloads, want exactly one %s payload",
			r.algorithm, s.Action, n, r.kind))
	}
	s = s.Clone()
	s.Index = len(r.steps)
	s.Phase = r.phase
	r.steps = append(r.steps, s)
	if len(r.phases) > 0 {
		r.phases[len(r.phases)-1].Steps++
	}
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Finish seals the recording into a Trace. final is copied.
// A recording with no steps is a tracer defect and panics.
func (r *Recorder) Finish(final []float64) *Trace {
	if len(r.steps) == 0 {
		panic(errors.AssertionFailedf("trace: %s produced an empty trace", r.algorithm))
	}
	r.finished = true

	return &Trace{
		runID:     uuid.New(),
		algorithm: r.algorithm,
		kind:      r.kind,
		original:  r.original,
		final:     slices.Clone(final),
		steps:     r.steps,
		phases:    r.phases,
	}
}
