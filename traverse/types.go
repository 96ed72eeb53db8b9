package traverse

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrEmptyGraph is returned by Parse when the edge list names no vertex.
	ErrEmptyGraph = errors.New("traverse: graph has no vertices")

	// ErrMalformedEdge is returned by Parse for tokens like "A-" or "A-B-C".
	ErrMalformedEdge = errors.New("traverse: malformed edge")

	// ErrEmptyVertexID is returned when a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("traverse: empty vertex id")

	// ErrSelfLoop is returned when an edge connects a vertex to itself.
	ErrSelfLoop = errors.New("traverse: self-loops not supported")
)

// Option configures traversal behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// BFS or DFS is invoked.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth limits exploration to depth d.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)

			return
		}
		o.MaxDepth = d
	}
}

// allowed reports whether a vertex at depth d may be explored.
func (o Options) allowed(d int) bool {
	return o.MaxDepth == 0 || d <= o.MaxDepth
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
