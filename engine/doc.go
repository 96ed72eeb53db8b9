// Package engine is the single entry point of algotrace: it names every
// supported algorithm (AlgorithmKind), validates raw input against the
// configured catalog, dispatches to the matching tracer and owns the
// input → trace → cursor lifecycle of an interactive Session.
//
// Dispatch is an exhaustive switch over the closed AlgorithmKind set; an
// unknown kind is ErrUnknownKind, never a fallback. Input is always
// re-validated before a tracer runs, so tracers only ever see input that
// satisfies their preconditions.
//
// The package-level ValidateInput and Run use an Engine built from
// config.Default with logging and metrics disabled.
package engine
