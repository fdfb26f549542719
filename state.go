package frontierzdd

import "fmt"

// State bundles the Graph, the chosen source/sink pair, and the
// precomputed FrontierTable that the construction engine consumes.
type State struct {
	Graph    *Graph
	S, T     int
	Frontier *FrontierTable
}

// BuildState validates s and t and precomputes the frontier table for g.
// Fails fast on: s == t, s or t out of range, or s/t never appearing as
// an edge endpoint.
func BuildState(g *Graph, s, t int) (*State, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrVertexOutOfRange)
	}
	if s == t {
		return nil, ErrSameEndpoint
	}
	if s < 1 || s > g.vertices || t < 1 || t > g.vertices {
		return nil, fmt.Errorf("%w: s=%d t=%d vertices in [1,%d]", ErrVertexOutOfRange, s, t, g.vertices)
	}

	var sSeen, tSeen bool
	for _, e := range g.edges {
		if e.Src == s || e.Dst == s {
			sSeen = true
		}
		if e.Src == t || e.Dst == t {
			tSeen = true
		}
	}
	if !sSeen || !tSeen {
		return nil, fmt.Errorf("%w: s=%d t=%d", ErrEndpointNotIncident, s, t)
	}

	return &State{
		Graph:    g,
		S:        s,
		T:        t,
		Frontier: ComputeFrontier(g),
	}, nil
}

// isTerminalVertex reports whether v is the fixed source or sink.
func (st *State) isTerminalVertex(v int) bool {
	return v == st.S || v == st.T
}
