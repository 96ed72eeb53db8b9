package traverse

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// BFS records breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input.
func BFS(g *Graph, start string, opts ...Option) (*trace.Trace, error) {
	o, err := validateStart(g, start, opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(g, o, "breadth-first-search")
	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, "")
	for len(w.frontier) > 0 {
		id := w.dequeue()
		w.enqueueNeighbors(id)
	}

	return w.rec.Finish(nil), nil
}

// enqueue marks id discovered and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.discover(id, d, parent)
	w.frontier = append(w.frontier, id)
	desc := fmt.Sprintf("Enqueue %s at depth %d", id, d)
	if parent != "" {
		desc = fmt.Sprintf("Enqueue %s (neighbor of %s) at depth %d", id, parent, d)
	}
	w.record(trace.ActionEnqueue, id, desc)
}

// dequeue pops the queue head, records its visit and returns it.
func (w *walker) dequeue() string {
	id := w.frontier[0]
	w.frontier = w.frontier[1:]
	w.order = append(w.order, id)
	w.record(trace.ActionVisit, id, fmt.Sprintf("Visit %s at depth %d", id, w.depth[id]))

	return id
}

// enqueueNeighbors enqueues every unseen neighbor of id within MaxDepth.
func (w *walker) enqueueNeighbors(id string) {
	next := w.depth[id] + 1
	if !w.opts.allowed(next) {
		return
	}
	for _, nbr := range w.graph.Neighbors(id) {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, id)
		}
	}
}
