package engine

import (
	"log/slog"
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/traverse"
	"github.com/katalvlaran/algotrace/validate"
)

// Session is the state a presentation layer keeps for one algorithm page:
// the accepted input, the last built trace and the cursor over it.
//
// An accepted edit replaces the input and discards the trace and cursor.
// A rejected edit changes nothing except LastError. Run builds a new trace
// and a fresh cursor positioned before the first step.
//
// A Session is not safe for concurrent use.
type Session struct {
	engine  *Engine
	kind    AlgorithmKind
	input   Input
	hasData bool
	trace   *trace.Trace
	cursor  *playback.Cursor
	lastErr error
}

// NewSession starts an empty session for k.
func (e *Engine) NewSession(k AlgorithmKind) (*Session, error) {
	if !k.valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	}

	return &Session{engine: e, kind: k}, nil
}

// Kind returns the algorithm of s.
func (s *Session) Kind() AlgorithmKind { return s.kind }

// Input returns the accepted input.
func (s *Session) Input() Input { return s.input }

// Trace returns the last built trace, or nil.
func (s *Session) Trace() *trace.Trace { return s.trace }

// Cursor returns the cursor of the last built trace, or nil.
func (s *Session) Cursor() *playback.Cursor { return s.cursor }

// LastError returns the reason the most recent edit or run was rejected,
// or nil when it was accepted.
func (s *Session) LastError() error { return s.lastErr }

// SetInput replaces the primary input: the sequence, the factorial
// argument or the edge list, depending on the kind.
func (s *Session) SetInput(raw string) error {
	next := s.input
	switch {
	case s.kind.IsSequence():
		seq, err := s.engine.ValidateInput(raw, s.kind)
		if err != nil {
			return s.reject("input", err)
		}
		next.Sequence = seq
	case s.kind == Factorial:
		b := s.engine.opts.Catalog.Factorial
		n, err := validate.ParseN(raw, b.Min, b.Max)
		if err != nil {
			return s.reject("input", err)
		}
		next.N = n
	default:
		g, err := s.engine.parseGraph(raw)
		if err != nil {
			return s.reject("input", err)
		}
		next.Graph = g
		if next.Start == "" || !g.HasVertex(next.Start) {
			next.Start = g.Vertices()[0]
		}
	}
	s.hasData = true
	s.accept(next)

	return nil
}

// SetRandom replaces the input with one drawn by Engine.RandomInput,
// including the target of a search.
func (s *Session) SetRandom(rng *rand.Rand) error {
	in, err := s.engine.RandomInput(s.kind, rng)
	if err != nil {
		return s.reject("random", err)
	}
	s.hasData = true
	s.accept(in)

	return nil
}

// SetTarget sets the value a search looks for.
func (s *Session) SetTarget(raw string) error {
	if !s.kind.IsSearch() {
		return s.reject("target", errors.Wrapf(ErrNotApplicable, "%s has no target", s.kind))
	}
	v, err := validate.ParseTarget(raw)
	if err != nil {
		return s.reject("target", err)
	}
	next := s.input
	next.Target, next.HasTarget = v, true
	s.accept(next)

	return nil
}

// SetStart sets the start vertex of a traversal. The vertex must exist
// once a graph has been set.
func (s *Session) SetStart(id string) error {
	if !s.kind.IsGraph() {
		return s.reject("start", errors.Wrapf(ErrNotApplicable, "%s has no start vertex", s.kind))
	}
	if s.input.Graph != nil && !s.input.Graph.HasVertex(id) {
		return s.reject("start", errors.Wrapf(traverse.ErrStartVertexNotFound, "%q", id))
	}
	next := s.input
	next.Start = id
	s.accept(next)

	return nil
}

// Run builds the trace of the accepted input and resets the cursor.
func (s *Session) Run() (*playback.Cursor, error) {
	if !s.hasData {
		return nil, s.reject("run", errors.Wrap(validate.ErrEmptyInput, "no input set"))
	}
	tr, err := s.engine.Run(s.kind, s.input)
	if err != nil {
		return nil, s.reject("run", err)
	}
	s.trace, s.cursor, s.lastErr = tr, playback.New(tr), nil

	return s.cursor, nil
}

func (s *Session) accept(next Input) {
	s.input = next
	s.trace, s.cursor, s.lastErr = nil, nil, nil
	s.engine.opts.Logger.Debug("input accepted", slog.String("kind", s.kind.String()))
}

func (s *Session) reject(field string, err error) error {
	s.lastErr = err
	s.engine.opts.Logger.Debug("input rejected",
		slog.String("kind", s.kind.String()),
		slog.String("field", field),
		slog.String("error", err.Error()))

	return err
}
