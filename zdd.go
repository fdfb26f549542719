package frontierzdd

import (
	"fmt"
	"strings"
)

// ZDD is a layered DAG rooted at Root, built by Construct. All leaves are
// ZeroNode or OneNode.
type ZDD struct {
	nodes *NodeTable
	root  NodeID

	// levels[i] holds the ids of N_i (1-indexed; levels[0] is unused) in
	// insertion order, i.e. the order Construct assigned ids in.
	levels [][]NodeID

	numVertices int
	numEdges    int

	// RunID correlates this construction with its logs and trace span
	// (see observability.go).
	RunID string
}

// Root returns the id of the root node. The root is always a non-terminal
// node; when the graph has no s-t path, every path from it ends at
// ZeroNode rather than the root itself being ZeroNode.
func (z *ZDD) Root() NodeID {
	return z.root
}

// NodeCount returns the number of nodes in the ZDD: every non-terminal
// node plus the two terminals.
func (z *ZDD) NodeCount() int {
	return z.nodes.Size()
}

// GetNode retrieves a node by id for traversal/debugging.
func (z *ZDD) GetNode(id NodeID) (Node, error) {
	return z.nodes.GetNode(id)
}

// Levels returns the number of construction levels (== number of edges).
func (z *ZDD) Levels() int {
	return z.numEdges
}

// LevelNodeIDs returns the ids of N_i for i in [1, numEdges].
func (z *ZDD) LevelNodeIDs(i int) []NodeID {
	if i < 1 || i >= len(z.levels) {
		return nil
	}
	return z.levels[i]
}

// DebugString dumps, per non-terminal, "id : (zero_child_id, one_child_id)",
// a non-normative debugging serialization.
func (z *ZDD) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "root=%d nodes=%d\n", z.root, z.NodeCount())
	for level := 1; level < len(z.levels); level++ {
		for _, id := range z.levels[level] {
			n, err := z.nodes.GetNode(id)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "%d : (%d, %d)\n", id, n.Lo, n.Hi)
		}
	}
	return b.String()
}
