package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilcrypt/veil/graph"
	"github.com/veilcrypt/veil/zkpprogram"
)

func TestLowerMulConstraint(t *testing.T) {
	c := NewContext(testField())
	x := c.AddPrivateInput()
	y := c.AddPublicInput()
	c.AddConstraint(c.AddMultiplication(x, y), big.NewInt(21))

	prog := Lower(c)
	require.NoError(t, zkpprogram.Validate(prog))
	require.Equal(t, testField(), prog.Field)

	require.Len(t, prog.Nodes, 4)
	require.Equal(t, zkpprogram.OpPrivateInput, prog.Nodes[0].Op)
	require.Equal(t, zkpprogram.OpPublicInput, prog.Nodes[1].Op)
	require.Equal(t, zkpprogram.OpMul, prog.Nodes[2].Op)
	require.Equal(t, zkpprogram.OpConstraint, prog.Nodes[3].Op)
	require.Equal(t, big.NewInt(21), prog.Nodes[3].Value)

	require.Equal(t, []zkpprogram.Edge{
		{From: 0, To: 2, Kind: zkpprogram.LeftOperand},
		{From: 1, To: 2, Kind: zkpprogram.RightOperand},
		{From: 2, To: 3, Kind: zkpprogram.UnorderedOperand},
	}, prog.Edges)

	constant, public, private := prog.NumInputs()
	require.Equal(t, 0, constant)
	require.Equal(t, 1, public)
	require.Equal(t, 1, private)
}

func TestLowerGadgetInvocation(t *testing.T) {
	c := NewContext(testField())
	g := pairGadget{}
	err := Use(c, func() error {
		x := c.AddPrivateInput()
		y := c.AddPrivateInput()
		InvokeGadget(g, []graph.NodeID{x, y})
		return nil
	})
	require.NoError(t, err)

	prog := Lower(c)
	require.NoError(t, zkpprogram.Validate(prog))

	// ordered positions survive lowering
	var positions []int
	for _, e := range prog.Edges {
		if e.Kind == zkpprogram.OrderedOperand {
			positions = append(positions, e.Position)
		}
	}
	require.ElementsMatch(t, []int{0, 1}, positions)

	var nbHidden int
	for _, n := range prog.Nodes {
		if n.Op == zkpprogram.OpHiddenInput {
			nbHidden++
		}
	}
	require.Equal(t, 3, nbHidden)
}

func TestLowerTopologicalEdges(t *testing.T) {
	c := NewContext(testField())
	x := c.AddPrivateInput()
	k := c.AddConstant(big.NewInt(3))
	c.AddConstraint(c.AddAddition(c.AddNegate(x), k), big.NewInt(0))

	prog := Lower(c)
	require.NoError(t, zkpprogram.Validate(prog))
	for _, e := range prog.Edges {
		require.Less(t, e.From, e.To)
	}
}

func TestLowerDeterministic(t *testing.T) {
	build := func() *zkpprogram.Program {
		c := NewContext(testField())
		x := c.AddPrivateInput()
		k := c.AddConstantInput()
		c.AddConstraint(c.AddMultiplication(x, k), big.NewInt(12))
		return Lower(c)
	}
	require.Equal(t, build().Serialize(), build().Serialize())
}
