package frontierzdd_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	zdd "github.com/0h-n0/frontier-basic-go"
)

func TestZDD_DebugString(t *testing.T) {
	g := mustGraph(t, 2, []zdd.Edge{{1, 2}})
	st, err := zdd.BuildState(g, 1, 2)
	require.NoError(t, err)

	z, err := zdd.Construct(context.Background(), st)
	require.NoError(t, err)

	out := z.DebugString()
	require.True(t, strings.HasPrefix(out, "root="))
	require.Contains(t, out, " : (")
}

func TestZDD_LevelsAndLevelNodeIDs(t *testing.T) {
	g := mustGraph(t, 4, []zdd.Edge{{1, 2}, {1, 3}, {2, 4}, {3, 4}})
	st, err := zdd.BuildState(g, 1, 4)
	require.NoError(t, err)

	z, err := zdd.Construct(context.Background(), st)
	require.NoError(t, err)

	require.Equal(t, 4, z.Levels())
	require.NotEmpty(t, z.LevelNodeIDs(1))
	require.Nil(t, z.LevelNodeIDs(0))
	require.Nil(t, z.LevelNodeIDs(99))
}

func TestZDD_RunIDPropagatesFromConstruct(t *testing.T) {
	g := mustGraph(t, 2, []zdd.Edge{{1, 2}})
	st, err := zdd.BuildState(g, 1, 2)
	require.NoError(t, err)

	z, err := zdd.Construct(context.Background(), st)
	require.NoError(t, err)
	require.NotEmpty(t, z.RunID)
}
