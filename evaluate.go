package frontierzdd

import (
	"context"
	"fmt"
	"math/big"

	"go.opentelemetry.io/otel/attribute"
)

// Evaluator computes a value over a constructed ZDD by a single bottom-up
// pass. Solution counting is the only fold this package needs, but the
// interface shape (grounded on the reference Evaluator/CountEvaluator
// split) leaves room for other bottom-up folds (e.g. cheapest path)
// without touching Construct.
type Evaluator interface {
	Evaluate(ctx context.Context, z *ZDD) (*big.Int, error)
}

// CountEvaluator computes the number of ⊤-reaching root-to-leaf paths,
// i.e. the number of simple s-t paths the ZDD represents.
// It deliberately does not mutate Node: a solution-count slot living on
// Node would only ever be populated by this one evaluator, so it is kept
// evaluator-local instead of growing the shared node representation for
// a single consumer.
type CountEvaluator struct{}

// Evaluate walks levels m down to 1, accumulating sol(n) = sol(lo) +
// sol(hi) in arbitrary precision.
func (CountEvaluator) Evaluate(_ context.Context, z *ZDD) (*big.Int, error) {
	if z == nil || z.nodes == nil {
		return nil, ErrNotConstructed
	}

	sol := make(map[NodeID]*big.Int, z.NodeCount())
	sol[ZeroNode] = big.NewInt(0)
	sol[OneNode] = big.NewInt(1)

	for level := z.numEdges; level >= 1; level-- {
		for _, id := range z.levels[level] {
			n, err := z.nodes.GetNode(id)
			if err != nil {
				return nil, err
			}
			loSol, ok := sol[n.Lo]
			if !ok {
				return nil, fmt.Errorf("%w: lo child %d of node %d evaluated out of order", ErrInvariantViolation, n.Lo, id)
			}
			hiSol, ok := sol[n.Hi]
			if !ok {
				return nil, fmt.Errorf("%w: hi child %d of node %d evaluated out of order", ErrInvariantViolation, n.Hi, id)
			}
			sol[id] = new(big.Int).Add(loSol, hiSol)
		}
	}

	root, ok := sol[z.root]
	if !ok {
		return nil, ErrNotConstructed
	}
	return root, nil
}

// SolutionCount is the convenience entry point for counting: count(ZDD)
// -> big integer. It wraps CountEvaluator with the same logging/tracing
// conventions Construct uses.
func SolutionCount(ctx context.Context, z *ZDD, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)

	ctx, span := cfg.Tracer.Start(ctx, "frontierzdd.SolutionCount")
	defer span.End()

	count, err := CountEvaluator{}.Evaluate(ctx, z)
	if err != nil {
		cfg.Logger.Error("solution count failed", "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("solution_count", count.String()))
	cfg.Logger.Info("solution count computed", "run_id", z.RunID, "count", count.String())
	return count, nil
}
