// Package traverse records breadth-first and depth-first search over a small
// unweighted graph as playback traces.
//
// Graphs are built with NewGraph/AddEdge or parsed from an edge list such as
// "A-B, B-C C-D E" (a bare token adds an isolated vertex). Neighbors are
// always explored in lexical order, so a given graph and start vertex yield
// exactly one trace.
//
// BFS steps:
//
//	enqueue  vertex discovered and appended to the queue
//	visit    vertex dequeued and appended to Order
//
// DFS steps:
//
//	discover vertex pushed on the recursion stack
//	finish   all descendants explored; vertex appended to Order (post-order)
//
// Every step carries the full frontier (queue or stack), the sorted visited
// set, the order so far and the depth and parent maps.
//
// Options:
//
//   - WithMaxDepth(d)   d > 0 stops exploring beyond depth d; 0 means no limit.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrOptionViolation        for invalid options.
//   - ErrMalformedEdge, ErrEmptyGraph from Parse.
package traverse
