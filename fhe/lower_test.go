package fhe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/veilcrypt/veil/fheprogram"
)

func TestLowerAddProgram(t *testing.T) {
	c := NewContext(DefaultParams())
	a := c.AddCiphertextInput()
	b := c.AddCiphertextInput()
	sum := c.AddAddition(a, b)
	c.AddOutput(sum)

	prog, err := Lower(c)
	require.NoError(t, err)
	require.NoError(t, fheprogram.Validate(prog))

	require.Equal(t, []fheprogram.Node{
		{Op: fheprogram.OpInputCiphertext, Position: 0},
		{Op: fheprogram.OpInputCiphertext, Position: 1},
		{Op: fheprogram.OpAdd},
		{Op: fheprogram.OpOutputCiphertext},
	}, prog.Nodes)
	require.Equal(t, []fheprogram.Edge{
		{From: 0, To: 2, Kind: fheprogram.LeftOperand},
		{From: 1, To: 2, Kind: fheprogram.RightOperand},
		{From: 2, To: 3, Kind: fheprogram.UnaryOperand},
	}, prog.Edges)
	require.Equal(t, 2, prog.NumInputs())
	require.Equal(t, 1, prog.NumOutputs())
}

func TestLowerInputPositionsFollowInsertionRank(t *testing.T) {
	c := NewContext(DefaultParams())
	x := c.AddCiphertextInput()
	c.AddLiteral(NewU64Literal(7))
	p := c.AddPlaintextInput()
	y := c.AddCiphertextInput()
	c.AddOutput(c.AddAddition(c.AddAdditionPlaintext(x, p), y))

	prog, err := Lower(c)
	require.NoError(t, err)
	require.NoError(t, fheprogram.Validate(prog))

	var inputs []fheprogram.Node
	for _, n := range prog.Nodes {
		if n.Op == fheprogram.OpInputCiphertext || n.Op == fheprogram.OpInputPlaintext {
			inputs = append(inputs, n)
		}
	}
	require.Equal(t, []fheprogram.Node{
		{Op: fheprogram.OpInputCiphertext, Position: 0},
		{Op: fheprogram.OpInputPlaintext, Position: 1},
		{Op: fheprogram.OpInputCiphertext, Position: 2},
	}, inputs)
}

func TestLowerRotations(t *testing.T) {
	c := NewContext(DefaultParams())
	x := c.AddCiphertextInput()
	amount := c.AddLiteral(NewU64Literal(2))
	c.AddOutput(c.AddRotateLeft(x, amount))
	c.AddOutput(c.AddRotateRight(x, amount))
	c.AddOutput(c.AddSwapRows(x))

	prog, err := Lower(c)
	require.NoError(t, err)
	require.NoError(t, fheprogram.Validate(prog))

	kinds := make(map[fheprogram.OpKind]int)
	for _, n := range prog.Nodes {
		kinds[n.Op]++
	}
	require.Equal(t, 1, kinds[fheprogram.OpShiftLeft])
	require.Equal(t, 1, kinds[fheprogram.OpShiftRight])
	require.Equal(t, 1, kinds[fheprogram.OpSwapRows])
	require.Equal(t, 3, kinds[fheprogram.OpOutputCiphertext])
}

func TestLowerPlaintextEncodingIsDeferred(t *testing.T) {
	c := NewContext(DefaultParams())
	x := c.AddCiphertextInput()

	// coefficient out of range: insertion succeeds, lowering reports it
	bad := c.AddPlaintextLiteral(&Plaintext{Coeffs: []uint64{99}, PlainModulus: 10})
	c.AddOutput(c.AddMultiplicationPlaintext(x, bad))

	_, err := Lower(c)
	require.Error(t, err)
	require.Contains(t, err.Error(), "literal node 1")
	require.Contains(t, err.Error(), "exceeds modulus")
}

func TestLowerPlaintextLiteral(t *testing.T) {
	c := NewContext(DefaultParams())
	x := c.AddCiphertextInput()
	p := c.AddPlaintextLiteral(&Plaintext{Coeffs: []uint64{1, 2}, PlainModulus: 64})
	c.AddOutput(c.AddAdditionPlaintext(x, p))

	prog, err := Lower(c)
	require.NoError(t, err)
	require.Equal(t, fheprogram.OpLiteralPlaintext, prog.Nodes[1].Op)
	require.NotEmpty(t, prog.Nodes[1].Plaintext)
}

func TestLowerDeterministic(t *testing.T) {
	build := func() *fheprogram.Program {
		c := NewContext(DefaultParams())
		a := c.AddCiphertextInput()
		b := c.AddCiphertextInput()
		lit := c.AddLiteral(NewU64Literal(5))
		c.AddOutput(c.AddMultiplicationPlaintext(c.AddAddition(a, b), lit))
		prog, err := Lower(c)
		require.NoError(t, err)
		return prog
	}
	p1, p2 := build(), build()
	require.Empty(t, cmp.Diff(p1, p2))
	require.Equal(t, p1.Serialize(), p2.Serialize())
}
