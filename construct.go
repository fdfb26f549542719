package frontierzdd

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// engine holds the per-call state the construction loop threads through;
// it is owned exclusively by one Construct call.
type engine struct {
	state    *State
	nodes    *NodeTable
	cfg      *Config
	numEdges int
}

// stepResult is the outcome of evaluating one (node, x) branch: either a
// terminal id, or a candidate (deg, comp) pair awaiting merge.
type stepResult struct {
	term   NodeID
	isTerm bool
	deg    []uint8
	comp   []int32
}

// step implements the terminal check fused with the state update: it
// virtually applies the edge decision once and reuses the resulting
// deg/comp both for the degree/frontier checks and, if the branch
// survives, for the node that gets inserted into N_{i+1}.
func (eng *engine) step(n Node, i, x int) stepResult {
	e := eng.state.Graph.Edges()[i-1]
	u0, u1 := e.Src, e.Dst

	// Cycle rule (x == 1 only): taking this edge would close a cycle in
	// the already-selected subgraph. Checked against the ORIGINAL (pre
	// update) component labels.
	if x == 1 && n.Comp[u0] == n.Comp[u1] {
		return stepResult{term: ZeroNode, isTerm: true}
	}

	deg := append([]uint8(nil), n.Deg...)
	comp := append([]int32(nil), n.Comp...)

	if x == 1 {
		deg[u0]++
		deg[u1]++

		cMin, cMax := comp[u0], comp[u1]
		if cMin > cMax {
			cMin, cMax = cMax, cMin
		}
		if cMin != cMax {
			for _, v := range eng.state.Frontier.At(i) {
				if comp[v] == cMax {
					comp[v] = cMin
				}
			}
		}
	}

	for _, u := range [2]int{u0, u1} {
		isST := eng.state.isTerminalVertex(u)
		if isST && deg[u] > 1 {
			return stepResult{term: ZeroNode, isTerm: true}
		}
		if !isST && deg[u] > 2 {
			return stepResult{term: ZeroNode, isTerm: true}
		}
	}

	for _, u := range [2]int{u0, u1} {
		if eng.state.Frontier.Contains(i, u) {
			continue // u stays alive, its final degree is not yet fixed
		}
		isST := eng.state.isTerminalVertex(u)
		if isST && deg[u] != 1 {
			return stepResult{term: ZeroNode, isTerm: true}
		}
		if !isST && deg[u] != 0 && deg[u] != 2 {
			return stepResult{term: ZeroNode, isTerm: true}
		}
	}

	if i == eng.numEdges {
		return stepResult{term: OneNode, isTerm: true}
	}

	return stepResult{deg: deg, comp: comp}
}

// projectKey builds the canonical equivalence key for a candidate state,
// projecting deg/comp onto frontier. Go string equality gives exact (not probabilistic)
// comparison, so this doubles as the merge lookup key directly.
func projectKey(deg []uint8, comp []int32, frontier []int) string {
	buf := make([]byte, 0, len(frontier)*5)
	for _, v := range frontier {
		buf = append(buf, deg[v])
		c := comp[v]
		buf = append(buf, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
	}
	return string(buf)
}

// processLevel runs stage i of the frontier-based search: for every node
// in N_i and every x in {0,1}, computes the child and wires
// n̂.child[x] := n'. Candidate computation may run across Workers
// goroutines; the find-or-insert step into N_{i+1} is always sequential,
// in the original node/x order, so node ids stay deterministic regardless
// of Workers.
func (eng *engine) processLevel(levelIDs []NodeID, i int) ([]NodeID, error) {
	results := make([]stepResult, len(levelIDs)*2)
	nodesAt := make([]Node, len(levelIDs))
	for idx, id := range levelIDs {
		n, err := eng.nodes.GetNode(id)
		if err != nil {
			return nil, err
		}
		nodesAt[idx] = n
	}

	if eng.cfg.Workers > 1 && len(levelIDs) > 0 {
		var g errgroup.Group
		g.SetLimit(eng.cfg.Workers)
		for idx := range levelIDs {
			idx := idx
			for x := 0; x <= 1; x++ {
				x := x
				g.Go(func() error {
					results[idx*2+x] = eng.step(nodesAt[idx], i, x)
					return nil
				})
			}
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for idx := range levelIDs {
			for x := 0; x <= 1; x++ {
				results[idx*2+x] = eng.step(nodesAt[idx], i, x)
			}
		}
	}

	merge := make(map[string]NodeID, len(levelIDs))
	var next []NodeID
	frontierCur := eng.state.Frontier.At(i)

	for idx, id := range levelIDs {
		var lo, hi NodeID
		for x := 0; x <= 1; x++ {
			r := results[idx*2+x]
			var child NodeID
			if r.isTerm {
				child = r.term
			} else {
				key := projectKey(r.deg, r.comp, frontierCur)
				if existing, ok := merge[key]; ok {
					child = existing
				} else {
					child = eng.nodes.addNode(i+1, r.deg, r.comp)
					merge[key] = child
					next = append(next, child)
				}
			}
			if x == 0 {
				lo = child
			} else {
				hi = child
			}
		}
		if err := eng.nodes.setChildren(id, lo, hi); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// Construct builds the ZDD for st using the frontier-based search
// algorithm. It is strictly sequential across levels and
// has no internal cancellation points; ctx is only consulted
// at the call boundary, so a caller that wants to cancel must not start
// the call rather than expect it to stop mid-construction.
func Construct(ctx context.Context, st *State, opts ...Option) (*ZDD, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstructionCancelled, err)
	}

	cfg := newConfig(opts...)
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConstructionCancelled, err)
		}
	}

	runID := newRunID()
	V := st.Graph.Vertices()
	m := len(st.Graph.Edges())

	_, span := cfg.Tracer.Start(ctx, "frontierzdd.Construct", trace.WithAttributes(
		attribute.Int("vertices", V),
		attribute.Int("edges", m),
		attribute.String("run_id", runID),
	))
	defer span.End()

	cfg.Logger.Info("construct starting", "run_id", runID, "vertices", V, "edges", m, "s", st.S, "t", st.T)
	start := time.Now()

	nodes := newNodeTable(cfg.DebugAssertions)
	deg := make([]uint8, V+1)
	comp := make([]int32, V+1)
	for v := 1; v <= V; v++ {
		comp[v] = int32(v)
	}
	rootID := nodes.addNode(1, deg, comp)

	eng := &engine{state: st, nodes: nodes, cfg: cfg, numEdges: m}
	levels := make([][]NodeID, m+1)
	levels[1] = []NodeID{rootID}

	for i := 1; i <= m; i++ {
		if cfg.MemoryLimit > 0 && nodes.estimatedBytes() > cfg.MemoryLimit {
			return nil, ErrMemoryLimit
		}
		next, err := eng.processLevel(levels[i], i)
		if err != nil {
			return nil, err
		}
		if i < m {
			levels[i+1] = next
		}
		cfg.Logger.Debug("level complete", "run_id", runID, "level", i, "width", len(levels[i]))
	}

	z := &ZDD{
		nodes:       nodes,
		root:        rootID,
		levels:      levels,
		numVertices: V,
		numEdges:    m,
		RunID:       runID,
	}

	dur := time.Since(start)
	span.SetAttributes(
		attribute.Int("node_count", z.NodeCount()),
		attribute.Int("frontier_width", st.Frontier.MaxWidth()),
	)
	cfg.Logger.Info("construct finished", "run_id", runID, "node_count", z.NodeCount(), "duration", dur)
	cfg.Metrics.observeConstruct(runID, float64(dur.Microseconds())/1000.0, z.NodeCount(), st.Frontier.MaxWidth())

	return z, nil
}
