// Package digraph implements a minimal directed-graph adjacency structure:
// a vertex set plus nested adjacency maps, with deterministic (sorted)
// iteration. Unweighted, no parallel edges, no self-loop policy — an edge
// either exists or it does not.
//
// The structure is single-threaded like the rest of this module; guard it
// externally if shared.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - an operation referenced a missing vertex.
package digraph

import (
	"errors"
	"sort"
)

// Sentinel errors for digraph operations. Match with errors.Is.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// Digraph is an in-memory directed graph over string vertex IDs.
//
// adjacency[from][to] holds an entry for every edge from→to; successors
// gives O(1) edge lookup and O(deg) neighbor enumeration.
type Digraph struct {
	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// New creates an empty Digraph.
// Complexity: O(1).
func New() *Digraph {
	return &Digraph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// AddVertex inserts a vertex. Re-adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1).
func (g *Digraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Digraph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts the directed edge from→to. Both endpoints must already
// exist; inserting an existing edge is a no-op.
// Complexity: O(1).
func (g *Digraph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}

	succ, ok := g.adjacency[from]
	if !ok {
		succ = make(map[string]struct{})
		g.adjacency[from] = succ
	}
	if _, dup := succ[to]; !dup {
		succ[to] = struct{}{}
		g.edgeCount++
	}

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Digraph) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the direct successors of id, sorted for determinism.
// Returns ErrVertexNotFound for a missing vertex.
// Complexity: O(deg·log deg).
func (g *Digraph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns every vertex ID, sorted for determinism.
// Complexity: O(V·log V).
func (g *Digraph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Digraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Digraph) EdgeCount() int { return g.edgeCount }
