package veil

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/veilcrypt/veil/fhe"
	"github.com/veilcrypt/veil/fheprogram"
	"github.com/veilcrypt/veil/zkp"
	"github.com/veilcrypt/veil/zkpprogram"
)

func TestCompileFHE(t *testing.T) {
	prog, err := CompileFHE(fhe.DefaultParams(), func() error {
		fhe.With(func(ctx *fhe.Context) {
			a := ctx.AddCiphertextInput()
			b := ctx.AddCiphertextInput()
			ctx.AddOutput(ctx.AddAddition(a, b))
		})
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, fheprogram.SchemeBfv, prog.Scheme)
	require.Equal(t, 2, prog.NumInputs())
	require.Equal(t, 1, prog.NumOutputs())
	require.Len(t, prog.Nodes, 4)
}

func TestCompileFHEPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := CompileFHE(fhe.DefaultParams(), func() error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestCompileFHEReportsBadLiteral(t *testing.T) {
	_, err := CompileFHE(fhe.DefaultParams(), func() error {
		fhe.With(func(ctx *fhe.Context) {
			x := ctx.AddCiphertextInput()
			bad := ctx.AddPlaintextLiteral(&fhe.Plaintext{Coeffs: []uint64{5}, PlainModulus: 2})
			ctx.AddOutput(ctx.AddMultiplicationPlaintext(x, bad))
		})
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds modulus")
}

func TestCompileZKP(t *testing.T) {
	prog, err := CompileZKP(ecc.BN254.ScalarField(), func() error {
		zkp.With(func(ctx *zkp.Context) {
			x := ctx.AddPrivateInput()
			y := ctx.AddPublicInput()
			ctx.AddConstraint(ctx.AddMultiplication(x, y), big.NewInt(21))
		})
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, zkpprogram.Validate(prog))

	_, err = prog.Evaluate(nil, []*big.Int{big.NewInt(3)}, []*big.Int{big.NewInt(7)})
	require.NoError(t, err)

	_, err = prog.Evaluate(nil, []*big.Int{big.NewInt(3)}, []*big.Int{big.NewInt(8)})
	require.Error(t, err)
}

func TestCompileZKPSequential(t *testing.T) {
	// compilation scopes do not leak into each other
	for i := 0; i < 2; i++ {
		_, err := CompileZKP(ecc.BN254.ScalarField(), func() error {
			zkp.With(func(ctx *zkp.Context) {
				ctx.AddConstraint(ctx.AddPublicInput(), big.NewInt(1))
			})
			return nil
		})
		require.NoError(t, err)
	}
}
