package frontierzdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeTable_Terminals(t *testing.T) {
	nt := newNodeTable(false)
	require.Equal(t, 2, nt.Size())

	zero, err := nt.GetNode(ZeroNode)
	require.NoError(t, err)
	require.True(t, zero.IsTerminal())

	one, err := nt.GetNode(OneNode)
	require.NoError(t, err)
	require.True(t, one.IsTerminal())
}

func TestNodeTable_AddAndSetChildren(t *testing.T) {
	nt := newNodeTable(false)
	id := nt.addNode(1, []uint8{0, 0, 0}, []int32{0, 1, 2})
	require.Equal(t, NodeID(2), id)
	require.Equal(t, 3, nt.Size())

	err := nt.setChildren(id, ZeroNode, OneNode)
	require.NoError(t, err)

	n, err := nt.GetNode(id)
	require.NoError(t, err)
	require.Equal(t, ZeroNode, n.Lo)
	require.Equal(t, OneNode, n.Hi)
	require.False(t, n.IsTerminal())
}

func TestNodeTable_SetChildrenTwiceFails(t *testing.T) {
	nt := newNodeTable(false)
	id := nt.addNode(1, []uint8{0}, []int32{0})
	require.NoError(t, nt.setChildren(id, ZeroNode, OneNode))

	err := nt.setChildren(id, ZeroNode, ZeroNode)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestNodeTable_SetChildrenTwicePanicsInDebugMode(t *testing.T) {
	nt := newNodeTable(true)
	id := nt.addNode(1, []uint8{0}, []int32{0})
	require.NoError(t, nt.setChildren(id, ZeroNode, OneNode))

	require.Panics(t, func() {
		_ = nt.setChildren(id, ZeroNode, ZeroNode)
	})
}

func TestNodeTable_GetNode_InvalidID(t *testing.T) {
	nt := newNodeTable(false)
	_, err := nt.GetNode(NodeID(99))
	require.ErrorIs(t, err, ErrInvalidNode)
}
