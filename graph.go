package frontierzdd

import "fmt"

// Edge is an ordered pair of vertex identifiers, 1-indexed. The algorithm
// treats {Src, Dst} as an unordered set; Src/Dst only fix a canonical
// reading order for the terminal check and state update in engine.step.
type Edge struct {
	Src int
	Dst int
}

// Graph is an immutable value: a vertex count and an ordered sequence of
// undirected edges. Edge order is significant — it determines the shape
// and size of the resulting ZDD.
type Graph struct {
	vertices int
	edges    []Edge
}

// Vertices returns the number of vertices V.
func (g *Graph) Vertices() int {
	return g.vertices
}

// Edges returns the ordered edge sequence. Callers must not mutate the
// returned slice; Graph is immutable after BuildGraph.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// BuildGraph validates and constructs a Graph from a vertex count and an
// ordered edge list. Vertex identifiers are 1-indexed and must lie in
// [1, V]. Self-loops are rejected.
func BuildGraph(vertices int, edges []Edge) (*Graph, error) {
	if vertices < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, vertices)
	}
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}

	owned := make([]Edge, len(edges))
	for i, e := range edges {
		if e.Src < 1 || e.Src > vertices || e.Dst < 1 || e.Dst > vertices {
			return nil, fmt.Errorf("%w: edge %d is (%d,%d), vertices in [1,%d]",
				ErrVertexOutOfRange, i, e.Src, e.Dst, vertices)
		}
		if e.Src == e.Dst {
			return nil, fmt.Errorf("%w: edge %d is a self-loop on vertex %d", ErrSelfLoop, i, e.Src)
		}
		owned[i] = e
	}

	return &Graph{vertices: vertices, edges: owned}, nil
}
