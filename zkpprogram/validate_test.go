package zkpprogram_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/veilcrypt/veil/zkpprogram"
)

func constraintProgram() *zkpprogram.Program {
	return &zkpprogram.Program{
		Field: ecc.BN254.ScalarField(),
		Nodes: []zkpprogram.Node{
			{Op: zkpprogram.OpPublicInput, Slot: 0},
			{Op: zkpprogram.OpPrivateInput, Slot: 0},
			{Op: zkpprogram.OpMul},
			{Op: zkpprogram.OpConstraint, Value: big.NewInt(1)},
		},
		Edges: []zkpprogram.Edge{
			{From: 0, To: 2, Kind: zkpprogram.LeftOperand},
			{From: 1, To: 2, Kind: zkpprogram.RightOperand},
			{From: 2, To: 3, Kind: zkpprogram.UnorderedOperand},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, zkpprogram.Validate(constraintProgram()))
	require.NoError(t, zkpprogram.Validate(inverseProgram(t)))
}

func TestValidateRejectsBadEdges(t *testing.T) {
	p := constraintProgram()
	p.Edges[0].To = 9
	require.ErrorContains(t, zkpprogram.Validate(p), "out of range")

	p = constraintProgram()
	p.Edges[0] = zkpprogram.Edge{From: 2, To: 0, Kind: zkpprogram.LeftOperand}
	require.ErrorContains(t, zkpprogram.Validate(p), "not topologically ordered")
}

func TestValidateRejectsBadArity(t *testing.T) {
	p := constraintProgram()
	p.Edges = p.Edges[1:]
	require.ErrorContains(t, zkpprogram.Validate(p), "left and one right")

	p = constraintProgram()
	p.Edges[2].Kind = zkpprogram.UnaryOperand
	require.ErrorContains(t, zkpprogram.Validate(p), "unordered operand")

	p = constraintProgram()
	p.Edges = append(p.Edges, zkpprogram.Edge{From: 0, To: 1, Kind: zkpprogram.UnaryOperand})
	require.ErrorContains(t, zkpprogram.Validate(p), "must have no operands")

	p = constraintProgram()
	p.Nodes[3].Value = nil
	require.ErrorContains(t, zkpprogram.Validate(p), "has no value")
}

func TestValidateRejectsBadInvocation(t *testing.T) {
	base := func() *zkpprogram.Program { return inverseProgram(t) }

	// edge 0 wires the invocation to its hidden input, edge 1 carries the
	// gadget input

	// gadget input arriving on a non-ordered edge
	p := base()
	p.Edges[1].Kind = zkpprogram.LeftOperand
	require.ErrorContains(t, zkpprogram.Validate(p), "non-ordered operand")

	// ordered position out of range
	p = base()
	p.Edges[1].Position = 5
	require.ErrorContains(t, zkpprogram.Validate(p), "permutation")

	// hidden input cut loose from its invocation
	p = base()
	p.Edges = p.Edges[1:]
	require.ErrorContains(t, zkpprogram.Validate(p), "hidden inputs, want 1")

	// invocation without its gadget
	p = base()
	p.Nodes[1].Gadget = nil
	require.ErrorContains(t, zkpprogram.Validate(p), "has no gadget")
}
