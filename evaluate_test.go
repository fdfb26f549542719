package frontierzdd_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	zdd "github.com/0h-n0/frontier-basic-go"
)

func TestSolutionCount_NilZDD(t *testing.T) {
	_, err := zdd.SolutionCount(context.Background(), nil)
	require.ErrorIs(t, err, zdd.ErrNotConstructed)
}

func TestCountEvaluator_Evaluate(t *testing.T) {
	g := mustGraph(t, 2, []zdd.Edge{{1, 2}})
	st, err := zdd.BuildState(g, 1, 2)
	require.NoError(t, err)

	z, err := zdd.Construct(context.Background(), st)
	require.NoError(t, err)

	count, err := (zdd.CountEvaluator{}).Evaluate(context.Background(), z)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), count)
}
