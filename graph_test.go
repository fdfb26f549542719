package frontierzdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	zdd "github.com/0h-n0/frontier-basic-go"
)

func TestBuildGraph_Valid(t *testing.T) {
	g, err := zdd.BuildGraph(4, []zdd.Edge{{Src: 1, Dst: 2}, {Src: 2, Dst: 3}})
	require.NoError(t, err)
	require.Equal(t, 4, g.Vertices())
	require.Len(t, g.Edges(), 2)
}

func TestBuildGraph_TooFewVertices(t *testing.T) {
	_, err := zdd.BuildGraph(1, []zdd.Edge{{Src: 1, Dst: 1}})
	require.ErrorIs(t, err, zdd.ErrTooFewVertices)
}

func TestBuildGraph_EmptyEdges(t *testing.T) {
	_, err := zdd.BuildGraph(2, nil)
	require.ErrorIs(t, err, zdd.ErrEmptyEdgeList)
}

func TestBuildGraph_VertexOutOfRange(t *testing.T) {
	_, err := zdd.BuildGraph(2, []zdd.Edge{{Src: 1, Dst: 3}})
	require.ErrorIs(t, err, zdd.ErrVertexOutOfRange)
}

func TestBuildGraph_SelfLoopRejected(t *testing.T) {
	_, err := zdd.BuildGraph(2, []zdd.Edge{{Src: 1, Dst: 1}})
	require.ErrorIs(t, err, zdd.ErrSelfLoop)
}

func TestBuildGraph_ParallelEdgesAllowed(t *testing.T) {
	g, err := zdd.BuildGraph(2, []zdd.Edge{{Src: 1, Dst: 2}, {Src: 1, Dst: 2}})
	require.NoError(t, err)
	require.Len(t, g.Edges(), 2)
}
