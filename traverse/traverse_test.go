package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/traverse"
)

// diamond builds the undirected square A-B, A-C, B-D, C-D.
func diamond(t *testing.T) *traverse.Graph {
	t.Helper()
	g, err := traverse.Parse("A-B, A-C B-D,C-D")
	require.NoError(t, err)

	return g
}

func actions(tr *trace.Trace) []trace.Action {
	var out []trace.Action
	for _, s := range tr.Steps() {
		out = append(out, s.Action)
	}

	return out
}

func TestParse(t *testing.T) {
	g, err := traverse.Parse("A-B, C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, []string{"A"}, g.Neighbors("B"))
	assert.Empty(t, g.Neighbors("C"))
	assert.False(t, g.Directed())

	d, err := traverse.Parse("A-B", traverse.WithDirected())
	require.NoError(t, err)
	assert.Empty(t, d.Neighbors("B"))
	assert.True(t, d.Directed())
}

func TestParse_Errors(t *testing.T) {
	_, err := traverse.Parse("")
	assert.ErrorIs(t, err, traverse.ErrEmptyGraph)
	_, err = traverse.Parse("A-")
	assert.ErrorIs(t, err, traverse.ErrMalformedEdge)
	_, err = traverse.Parse("A-B-C")
	assert.ErrorIs(t, err, traverse.ErrMalformedEdge)
	_, err = traverse.Parse("A-A")
	assert.ErrorIs(t, err, traverse.ErrSelfLoop)
}

func TestGraph_DuplicateEdgesIgnored(t *testing.T) {
	g := traverse.NewGraph()
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.ErrorIs(t, g.AddVertex(""), traverse.ErrEmptyVertexID)
}

func TestBFS_Diamond(t *testing.T) {
	tr, err := traverse.BFS(diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []trace.Action{
		trace.ActionEnqueue, trace.ActionVisit,
		trace.ActionEnqueue, trace.ActionEnqueue,
		trace.ActionVisit, trace.ActionEnqueue,
		trace.ActionVisit, trace.ActionVisit,
	}, actions(tr))

	last := tr.Last().Traversal
	assert.Equal(t, []string{"A", "B", "C", "D"}, last.Order)
	assert.Empty(t, last.Frontier)
	assert.Equal(t, 2, last.Depth["D"])
	assert.Equal(t, "B", last.Parent["D"])
	_, hasParent := last.Parent["A"]
	assert.False(t, hasParent)

	// queue after enqueueing both neighbors of A
	s3, _ := tr.At(3)
	assert.Equal(t, []string{"B", "C"}, s3.Traversal.Frontier)
	assert.Equal(t, []string{"A", "B", "C"}, s3.Traversal.Visited)
}

func TestDFS_Diamond(t *testing.T) {
	tr, err := traverse.DFS(diamond(t), "A")
	require.NoError(t, err)
	require.Equal(t, 8, tr.Len())

	assert.Equal(t, []string{"C", "D", "B", "A"}, tr.Last().Traversal.Order)

	s3, _ := tr.At(3)
	assert.Equal(t, trace.ActionDiscover, s3.Action)
	assert.Equal(t, "C", s3.Traversal.Vertex)
	assert.Equal(t, []string{"A", "B", "D", "C"}, s3.Traversal.Frontier)
	assert.Equal(t, 3, s3.Traversal.Depth["C"])
	assert.Equal(t, []string{"A"}, tr.Last().Traversal.Frontier, "finish step still shows the vertex on the stack")
}

func TestTraversal_MaxDepth(t *testing.T) {
	tr, err := traverse.BFS(diamond(t), "A", traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tr.Last().Traversal.Order)

	tr, err = traverse.DFS(diamond(t), "A", traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, tr.Last().Traversal.Order)
}

func TestTraversal_Errors(t *testing.T) {
	_, err := traverse.BFS(nil, "A")
	assert.ErrorIs(t, err, traverse.ErrGraphNil)
	_, err = traverse.DFS(diamond(t), "Z")
	assert.ErrorIs(t, err, traverse.ErrStartVertexNotFound)
	_, err = traverse.BFS(diamond(t), "A", traverse.WithMaxDepth(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

func TestTraversal_Disconnected(t *testing.T) {
	g, err := traverse.Parse("A-B C-D")
	require.NoError(t, err)
	tr, err := traverse.BFS(g, "C")
	require.NoError(t, err)
	last := tr.Last().Traversal
	assert.Equal(t, []string{"C", "D"}, last.Order)
	assert.Equal(t, []string{"C", "D"}, last.Visited)
}

func TestTraversal_StepsDoNotShareState(t *testing.T) {
	tr, err := traverse.BFS(diamond(t), "A")
	require.NoError(t, err)
	first := tr.First().Traversal
	assert.Equal(t, []string{"A"}, first.Frontier)
	assert.Len(t, first.Depth, 1, "later discoveries must not leak into earlier steps")
	assert.Empty(t, first.Order)
}
