package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algotrace/callstack"
)

var (
	// ErrUnknownAlgorithm is returned for a catalog key that names no algorithm.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")

	// ErrInvalidEntry is returned for malformed YAML or inconsistent limits.
	ErrInvalidEntry = errors.New("config: invalid entry")
)

// file mirrors Catalog with optional scalars so absent keys keep defaults.
type file struct {
	Algorithms  map[string]Entry `yaml:"algorithms"`
	Factorial   *Bounds          `yaml:"factorial"`
	BucketCount *int             `yaml:"bucket_count"`
	Graph       *GraphLimits     `yaml:"graph"`
}

// Load reads, parses and validates the catalog at path.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "config: read %q", path)
	}
	c, err := Parse(b)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "config: %q", path)
	}

	return c, nil
}

// Parse overlays the YAML document b on Default and validates the result.
// An empty document yields the defaults.
func Parse(b []byte) (Catalog, error) {
	// 1. Decode strictly
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, errors.Wrapf(ErrInvalidEntry, "decode: %v", err)
	}

	// 2. Overlay on defaults
	c := Default()
	for name, e := range f.Algorithms {
		if _, ok := c.Algorithms[name]; !ok {
			return Catalog{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
		}
		c.Algorithms[name] = e
	}
	if f.Factorial != nil {
		c.Factorial = *f.Factorial
	}
	if f.BucketCount != nil {
		c.BucketCount = *f.BucketCount
	}
	if f.Graph != nil {
		c.Graph = *f.Graph
	}

	// 3. Validate
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}

	return c, nil
}

// Validate checks that every limit is consistent.
func (c Catalog) Validate() error {
	for name, e := range c.Algorithms {
		switch {
		case e.MinSize < 0 || e.MaxSize < 0:
			return errors.Wrapf(ErrInvalidEntry, "%s: negative size bound", name)
		case e.MaxSize > 0 && e.MinSize > e.MaxSize:
			return errors.Wrapf(ErrInvalidEntry, "%s: min_size %d > max_size %d", name, e.MinSize, e.MaxSize)
		case e.Min != nil && e.Max != nil && *e.Min > *e.Max:
			return errors.Wrapf(ErrInvalidEntry, "%s: min %g > max %g", name, *e.Min, *e.Max)
		}
	}
	if c.Factorial.Min < 1 || c.Factorial.Max > callstack.MaxN || c.Factorial.Min > c.Factorial.Max {
		return errors.Wrapf(ErrInvalidEntry, "factorial: [%d, %d] not within [1, %d]",
			c.Factorial.Min, c.Factorial.Max, callstack.MaxN)
	}
	if c.BucketCount <= 0 {
		return errors.Wrapf(ErrInvalidEntry, "bucket_count must be positive (%d)", c.BucketCount)
	}
	if c.Graph.MaxVertices <= 0 || c.Graph.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidEntry, "graph: max_vertices %d, max_depth %d",
			c.Graph.MaxVertices, c.Graph.MaxDepth)
	}

	return nil
}
