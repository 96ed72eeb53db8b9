package traverse

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// DFS records depth-first search on g from start. Order in the trace is the
// finish (post-order) sequence.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input.
func DFS(g *Graph, start string, opts ...Option) (*trace.Trace, error) {
	o, err := validateStart(g, start, opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(g, o, "depth-first-search")
	w.descend(start, 0, "")

	return w.rec.Finish(nil), nil
}

// descend visits id at depth d, recursing into unvisited neighbors.
func (w *walker) descend(id string, d int, parent string) {
	// 1. Discover and push
	w.discover(id, d, parent)
	w.frontier = append(w.frontier, id)
	w.record(trace.ActionDiscover, id, fmt.Sprintf("Discover %s at depth %d", id, d))

	// 2. Explore neighbors in lexical order
	if w.opts.allowed(d + 1) {
		for _, nbr := range w.graph.Neighbors(id) {
			if !w.visited[nbr] {
				w.descend(nbr, d+1, id)
			}
		}
	}

	// 3. Finish, then pop
	w.order = append(w.order, id)
	w.record(trace.ActionFinish, id, fmt.Sprintf("Finish %s", id))
	w.frontier = w.frontier[:len(w.frontier)-1]
}
