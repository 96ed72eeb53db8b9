// Package trace defines the shared step vocabulary of every algorithm tracer
// and the immutable Trace that holds a finished recording.
//
// 🚀 What is a Trace?
//
//	A Trace is the complete, ordered record of one algorithm run. Each Step
//	in it is a full snapshot of the data structure at that instant plus
//	family-specific metadata (compared indices, pivot, buckets, call frames…).
//
// ✨ Guarantees:
//   - Self-sufficient steps: Step k never depends on Steps 0..k-1.
//   - No shared memory: every slice and map in a Step is owned by that Step.
//   - Immutable traces: accessors hand out deep copies.
//   - Never empty: a finished Trace has at least one Step.
//
// ⚙️ Usage (tracer side):
//
//	rec := trace.NewRecorder("bubble-sort", trace.KindExchange, input)
//	rec.Record(trace.Step{Action: trace.ActionComparing, Array: arr, Exchange: &trace.ExchangeInfo{...}})
//	t := rec.Finish(arr)
//
// ⚙️ Usage (playback side):
//
//	step, ok := t.At(k)
//	fmt.Println(step.Description, step.Array)
//
// Recorder panics with an assertion failure when a tracer records a step
// whose payload does not match the recorder's Kind; that is a programming
// defect, never a user-facing condition.
package trace
