package engine

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownKind is returned for an AlgorithmKind outside the enumeration.
	ErrUnknownKind = errors.New("engine: unknown algorithm kind")

	// ErrMissingTarget is returned when a search runs without a target.
	ErrMissingTarget = errors.New("engine: search target not set")

	// ErrMissingGraph is returned when a traversal runs without a graph.
	ErrMissingGraph = errors.New("engine: graph not set")

	// ErrNotApplicable is returned when an input field is set that the
	// algorithm does not use.
	ErrNotApplicable = errors.New("engine: input not used by algorithm")
)
