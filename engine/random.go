package engine

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/validate"
)

// generator describes the random arrays offered for a sequence algorithm:
// count values drawn from [lo, hi], integral unless fraction is set.
type generator struct {
	count    int
	lo, hi   float64
	fraction bool
}

var generators = map[AlgorithmKind]generator{
	LinearSearch:  {count: 10, lo: 0, hi: 99},
	BinarySearch:  {count: 10, lo: 0, hi: 99},
	BubbleSort:    {count: 10, lo: 1, hi: 100},
	InsertionSort: {count: 10, lo: 1, hi: 100},
	QuickSort:     {count: 8, lo: 1, hi: 50},
	MergeSort:     {count: 8, lo: 1, hi: 50},
	CountingSort:  {count: 10, lo: 0, hi: 99},
	BucketSort:    {count: 10, lo: 0, hi: 0.99, fraction: true},
}

// RandomInput draws an Input for k that satisfies the catalog. Searches get
// a target drawn from the same range; factorial gets n within its bounds.
// Traversals have no random form and return ErrNotApplicable.
func (e *Engine) RandomInput(k AlgorithmKind, rng *rand.Rand) (Input, error) {
	switch {
	case !k.valid():
		return Input{}, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	case k == Factorial:
		b := e.opts.Catalog.Factorial

		return Input{N: b.Min + rng.IntN(b.Max-b.Min+1)}, nil
	case k.IsGraph():
		return Input{}, errors.Wrapf(ErrNotApplicable, "%s has no random input", k)
	}

	// 1. Fit the default generator into the allowed domain
	c, _ := e.opts.Catalog.Lookup(k.String())
	g := generators[k]
	mustInt := c.IntegersOnly || required[k].IntegersOnly
	integers := !g.fraction || mustInt
	lo, hi, err := window(g, integers, c, required[k])
	if err != nil && integers && !mustInt {
		// no integer fits, but fractions are allowed
		integers = false
		lo, hi, err = window(g, integers, c, required[k])
	}
	if err != nil {
		return Input{}, errors.Wrapf(err, "%s", k)
	}
	n := g.count
	if c.MaxSize > 0 {
		n = min(n, c.MaxSize)
	}
	n = max(n, c.MinSize, 1)

	// 2. Draw
	draw := func() float64 {
		if integers {
			return lo + float64(rng.IntN(int(hi-lo)+1))
		}
		v := math.Round((lo+rng.Float64()*(hi-lo))*100) / 100

		return min(max(v, lo), hi)
	}
	in := Input{Sequence: make(validate.Sequence, n)}
	for i := range in.Sequence {
		in.Sequence[i] = draw()
	}
	if c.RequireSorted || required[k].RequireSorted {
		slices.Sort(in.Sequence)
	}
	if k.IsSearch() {
		in.Target, in.HasTarget = draw(), true
	}

	// 3. Generated input must pass the same checks as typed input
	if err := e.check(in.Sequence, k); err != nil {
		return Input{}, errors.NewAssertionErrorWithWrappedErrf(err, "engine: random %s input rejected", k)
	}

	return in, nil
}

// window intersects the generator range with the catalog and tracer
// domains. When the default range lies outside the domain it slides inside,
// keeping its width.
func window(g generator, integers bool, domains ...validate.Constraints) (lo, hi float64, err error) {
	dlo, dhi := math.Inf(-1), math.Inf(1)
	for _, d := range domains {
		if d.HasRange {
			dlo, dhi = max(dlo, d.Min), min(dhi, d.Max)
		}
	}

	width := g.hi - g.lo
	lo, hi = max(g.lo, dlo), min(g.hi, dhi)
	switch {
	case dlo > dhi:
		return 0, 0, errors.Wrapf(validate.ErrRange, "empty value domain [%g, %g]", dlo, dhi)
	case lo > hi && g.lo > dhi:
		lo, hi = max(dlo, dhi-width), dhi
	case lo > hi:
		lo, hi = dlo, min(dhi, dlo+width)
	}
	if integers {
		lo, hi = math.Ceil(lo), math.Floor(hi)
		if lo > hi {
			return 0, 0, errors.Wrapf(validate.ErrRange, "no integer in [%g, %g]", dlo, dhi)
		}
	}

	return lo, hi, nil
}
