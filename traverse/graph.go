package traverse

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/validate"
)

// Graph is a small unweighted graph with string vertex IDs.
// Adjacency lists are kept sorted and free of duplicates.
type Graph struct {
	directed bool
	adj      map[string][]string
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected makes edges one-way (from → to).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// NewGraph returns an empty graph; undirected unless WithDirected is given.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string][]string)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex adds id if absent.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}

	return nil
}

// AddEdge connects from and to, adding missing vertices. Repeated edges are
// ignored.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return errors.Wrapf(ErrSelfLoop, "%q", from)
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)
	g.link(from, to)
	if !g.directed {
		g.link(to, from)
	}

	return nil
}

// link inserts to into from's sorted adjacency list.
func (g *Graph) link(from, to string) {
	nbs := g.adj[from]
	i, found := slices.BinarySearch(nbs, to)
	if found {
		return
	}
	g.adj[from] = slices.Insert(nbs, i, to)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in lexical order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns a copy of id's adjacency list in lexical order.
func (g *Graph) Neighbors(id string) []string {
	return slices.Clone(g.adj[id])
}

// Parse builds a graph from an edge list. Tokens are separated like
// numeric input (commas and whitespace); "A-B" adds an edge, "A" adds an
// isolated vertex.
func Parse(raw string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for i, tok := range validate.Tokenize(raw) {
		parts := strings.Split(tok, "-")
		switch len(parts) {
		case 1:
			_ = g.AddVertex(parts[0])
		case 2:
			if parts[0] == "" || parts[1] == "" {
				return nil, errors.Wrapf(ErrMalformedEdge, "token %d (%q)", i, tok)
			}
			if err := g.AddEdge(parts[0], parts[1]); err != nil {
				return nil, errors.Wrapf(err, "token %d (%q)", i, tok)
			}
		default:
			return nil, errors.Wrapf(ErrMalformedEdge, "token %d (%q)", i, tok)
		}
	}
	if len(g.adj) == 0 {
		return nil, ErrEmptyGraph
	}

	return g, nil
}
