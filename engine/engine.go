package engine

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/callstack"
	"github.com/katalvlaran/algotrace/config"
	"github.com/katalvlaran/algotrace/distribution"
	"github.com/katalvlaran/algotrace/exchange"
	"github.com/katalvlaran/algotrace/mergesort"
	"github.com/katalvlaran/algotrace/partition"
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/traverse"
	"github.com/katalvlaran/algotrace/validate"
)

// Input is everything a tracer may need. Only the fields relevant to the
// kind are read.
type Input struct {
	Sequence  validate.Sequence
	Target    float64
	HasTarget bool
	N         int
	Graph     *traverse.Graph
	Start     string
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine dependencies.
type Options struct {
	Catalog config.Catalog
	Logger  *slog.Logger
	Metrics *Metrics
}

// DefaultOptions returns the built-in catalog, a discarding logger and no
// metrics.
func DefaultOptions() Options {
	return Options{
		Catalog: config.Default(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCatalog replaces the input limits.
func WithCatalog(c config.Catalog) Option {
	return func(o *Options) { o.Catalog = c }
}

// WithLogger sets the structured logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every run into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Engine validates input and dispatches it to tracers. It holds no
// per-run state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New builds an Engine. The catalog is validated here so that a bad
// configuration fails at startup, not on the first run.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Catalog.Validate(); err != nil {
		return nil, err
	}

	return &Engine{opts: o}, nil
}

// Catalog returns the limits in effect.
func (e *Engine) Catalog() config.Catalog { return e.opts.Catalog }

// required holds the preconditions a tracer asserts; the catalog may narrow
// but never widen them.
var required = map[AlgorithmKind]validate.Constraints{
	BinarySearch: {RequireSorted: true},
	CountingSort: {IntegersOnly: true, HasRange: true, Min: 0, Max: distribution.MaxCountingValue},
	BucketSort:   {HasRange: true, Min: 0, Max: 1},
}

// check applies the catalog entry of k, then the tracer's own preconditions.
func (e *Engine) check(seq []float64, k AlgorithmKind) error {
	c, ok := e.opts.Catalog.Lookup(k.String())
	if !ok {
		return errors.Wrapf(ErrUnknownKind, "%s has no catalog entry", k)
	}
	if err := validate.Check(seq, c); err != nil {
		return err
	}
	if r, ok := required[k]; ok {
		return validate.Check(seq, r)
	}

	return nil
}

// ValidateInput parses raw as the sequence input of k.
func (e *Engine) ValidateInput(raw string, k AlgorithmKind) (validate.Sequence, error) {
	if !k.IsSequence() {
		if !k.valid() {
			return nil, errors.Wrapf(ErrUnknownKind, "%d", int(k))
		}

		return nil, errors.Wrapf(ErrNotApplicable, "%s does not take a sequence", k)
	}
	seq, err := validate.Parse(raw, validate.Constraints{})
	if err != nil {
		return nil, err
	}
	if err = e.check(seq, k); err != nil {
		return nil, err
	}

	return seq, nil
}

// ParseInput builds the Input of k from its textual form. raw is the
// sequence, the factorial argument or the edge list; aux is the search
// target or the start vertex and is ignored by other kinds.
func (e *Engine) ParseInput(k AlgorithmKind, raw, aux string) (Input, error) {
	var in Input
	switch {
	case k.IsSequence():
		seq, err := e.ValidateInput(raw, k)
		if err != nil {
			return Input{}, err
		}
		in.Sequence = seq
		if k.IsSearch() {
			if in.Target, err = validate.ParseTarget(aux); err != nil {
				return Input{}, err
			}
			in.HasTarget = true
		}
	case k == Factorial:
		b := e.opts.Catalog.Factorial
		n, err := validate.ParseN(raw, b.Min, b.Max)
		if err != nil {
			return Input{}, err
		}
		in.N = n
	case k.IsGraph():
		g, err := e.parseGraph(raw)
		if err != nil {
			return Input{}, err
		}
		in.Graph, in.Start = g, aux
		if in.Start == "" {
			in.Start = g.Vertices()[0]
		}
	default:
		return Input{}, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	}

	return in, nil
}

func (e *Engine) parseGraph(raw string) (*traverse.Graph, error) {
	g, err := traverse.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := e.checkGraph(g); err != nil {
		return nil, err
	}

	return g, nil
}

func (e *Engine) checkGraph(g *traverse.Graph) error {
	if n, limit := len(g.Vertices()), e.opts.Catalog.Graph.MaxVertices; n > limit {
		return errors.Wrapf(validate.ErrSize, "%d vertices exceed the maximum of %d", n, limit)
	}

	return nil
}

// Run validates in for k and builds its Trace.
func (e *Engine) Run(k AlgorithmKind, in Input) (*trace.Trace, error) {
	log := e.opts.Logger.With(slog.String("kind", k.String()))
	tr, err := e.dispatch(k, in)
	if err != nil {
		log.Debug("run rejected", slog.String("error", err.Error()), slog.String("class", validate.Class(err)))
		e.opts.Metrics.observe(k, err, 0)

		return nil, err
	}
	log.Info("trace built",
		slog.String("run_id", tr.RunID().String()),
		slog.Int("steps", tr.Len()))
	e.opts.Metrics.observe(k, nil, tr.Len())

	return tr, nil
}

func (e *Engine) dispatch(k AlgorithmKind, in Input) (*trace.Trace, error) {
	// 1. Re-validate sequence input regardless of its origin
	if k.IsSequence() {
		if err := e.check(in.Sequence, k); err != nil {
			return nil, err
		}
		if k.IsSearch() && !in.HasTarget {
			return nil, ErrMissingTarget
		}
	}

	// 2. Dispatch
	switch k {
	case LinearSearch:
		return search.Linear(in.Sequence, in.Target), nil
	case BinarySearch:
		return search.Binary(in.Sequence, in.Target), nil
	case BubbleSort:
		return exchange.Bubble(in.Sequence), nil
	case InsertionSort:
		return exchange.Insertion(in.Sequence), nil
	case QuickSort:
		return partition.QuickSort(in.Sequence), nil
	case MergeSort:
		return mergesort.Sort(in.Sequence), nil
	case CountingSort:
		return distribution.Counting(in.Sequence), nil
	case BucketSort:
		return distribution.Bucket(in.Sequence, distribution.WithBucketCount(e.opts.Catalog.BucketCount))
	case Factorial:
		b := e.opts.Catalog.Factorial
		if in.N < b.Min || in.N > b.Max {
			return nil, errors.Wrapf(validate.ErrRange, "factorial argument %d outside [%d, %d]", in.N, b.Min, b.Max)
		}

		return callstack.Factorial(in.N), nil
	case BreadthFirst, DepthFirst:
		if in.Graph == nil {
			return nil, ErrMissingGraph
		}
		if err := e.checkGraph(in.Graph); err != nil {
			return nil, err
		}
		walk := traverse.BFS
		if k == DepthFirst {
			walk = traverse.DFS
		}

		return walk(in.Graph, in.Start, traverse.WithMaxDepth(e.opts.Catalog.Graph.MaxDepth))
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	}
}

var std = func() *Engine {
	e, err := New()
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "engine: default catalog invalid"))
	}

	return e
}()

// ValidateInput parses raw for k using the default catalog.
func ValidateInput(raw string, k AlgorithmKind) (validate.Sequence, error) {
	return std.ValidateInput(raw, k)
}

// Run builds the Trace of k over in using the default catalog.
func Run(k AlgorithmKind, in Input) (*trace.Trace, error) {
	return std.Run(k, in)
}
