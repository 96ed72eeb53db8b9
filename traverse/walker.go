package traverse

import (
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// walker encapsulates the mutable state shared by BFS and DFS and turns it
// into trace steps.
type walker struct {
	graph    *Graph
	opts     Options
	rec      *trace.Recorder
	frontier []string
	visited  map[string]bool
	order    []string
	depth    map[string]int
	parent   map[string]string
}

func newWalker(g *Graph, opts Options, algorithm string) *walker {
	n := len(g.adj)

	return &walker{
		graph:    g,
		opts:     opts,
		rec:      trace.NewRecorder(algorithm, trace.KindTraversal, nil),
		frontier: make([]string, 0, n),
		visited:  make(map[string]bool, n),
		order:    make([]string, 0, n),
		depth:    make(map[string]int, n),
		parent:   make(map[string]string, n),
	}
}

// discover marks id visited at depth d with the given parent.
func (w *walker) discover(id string, d int, parent string) {
	w.visited[id] = true
	w.depth[id] = d
	if parent != "" {
		w.parent[id] = parent
	}
}

// record snapshots the full walker state; the recorder deep-copies it.
func (w *walker) record(action trace.Action, id, desc string) {
	visited := make([]string, 0, len(w.visited))
	for v := range w.visited {
		visited = append(visited, v)
	}
	slices.Sort(visited)

	w.rec.Record(trace.Step{
		Action:      action,
		Description: desc,
		Traversal: &trace.TraversalInfo{
			Vertex:   id,
			Frontier: w.frontier,
			Visited:  visited,
			Order:    w.order,
			Depth:    w.depth,
			Parent:   w.parent,
		},
	})
}

// validateStart applies the checks shared by BFS and DFS.
func validateStart(g *Graph, start string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Options{}, err
	}
	if !g.HasVertex(start) {
		return Options{}, ErrStartVertexNotFound
	}

	return o, nil
}
