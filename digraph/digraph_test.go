package digraph_test

import (
	"testing"

	"github.com/katalvlaran/blockseq/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDigraph_VertexLifecycle covers insertion, idempotent re-insertion and
// the empty-ID sentinel.
func TestDigraph_VertexLifecycle(t *testing.T) {
	g := digraph.New()

	assert.ErrorIs(t, g.AddVertex(""), digraph.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestDigraph_Edges covers directedness, duplicate suppression and endpoint
// validation.
func TestDigraph_Edges(t *testing.T) {
	g := digraph.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	assert.ErrorIs(t, g.AddEdge("A", "Z"), digraph.ErrVertexNotFound, "missing target")
	assert.ErrorIs(t, g.AddEdge("Z", "A"), digraph.ErrVertexNotFound, "missing source")
	assert.ErrorIs(t, g.AddEdge("", "A"), digraph.ErrEmptyVertexID)

	require.NoError(t, g.AddEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"), "edges are directed")
	assert.Equal(t, 1, g.EdgeCount())

	// Re-adding the same edge is a no-op.
	require.NoError(t, g.AddEdge("A", "B"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestDigraph_SortedIteration locks in deterministic ordering of Vertices
// and Neighbors.
func TestDigraph_SortedIteration(t *testing.T) {
	g := digraph.New()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "B"))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)

	// Vertex with no outgoing edges yields an empty slice, not an error.
	nbrs, err = g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}
