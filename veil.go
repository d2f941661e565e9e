// Package veil is a compiler frontend for arithmetic programs that run under
// fully-homomorphic encryption or are proven as zero-knowledge circuits. A
// program is a function issuing builder calls against the active construction
// context; compiling it records those calls as a dependency graph and lowers
// the graph into a canonical, backend-ready compiled program.
package veil

import (
	"fmt"
	"math/big"

	"github.com/veilcrypt/veil/fhe"
	"github.com/veilcrypt/veil/fheprogram"
	"github.com/veilcrypt/veil/logger"
	"github.com/veilcrypt/veil/zkp"
	"github.com/veilcrypt/veil/zkpprogram"
)

// CompileFHE builds an FHE program. program runs with a fresh context
// installed as the active fhe context; it issues builder calls through
// fhe.With, typically via a code-generation layer.
func CompileFHE(params *fhe.Params, program func() error) (*fheprogram.Program, error) {
	ctx := fhe.NewContext(params)
	if err := fhe.Use(ctx, program); err != nil {
		return nil, err
	}
	prog, err := fhe.Lower(ctx)
	if err != nil {
		return nil, err
	}
	if err := fheprogram.Validate(prog); err != nil {
		return nil, fmt.Errorf("compiled program is malformed: %w", err)
	}
	log := logger.Logger()
	log.Info().
		Int("nbNodes", len(prog.Nodes)).
		Int("nbEdges", len(prog.Edges)).
		Int("nbInputs", prog.NumInputs()).
		Int("nbOutputs", prog.NumOutputs()).
		Msg("compiled fhe program")
	return prog, nil
}

// CompileZKP builds a ZKP program over the given field. program runs with a
// fresh context installed as the active zkp context; it issues builder calls
// through zkp.With and zkp.InvokeGadget.
func CompileZKP(field *big.Int, program func() error) (*zkpprogram.Program, error) {
	ctx := zkp.NewContext(field)
	if err := zkp.Use(ctx, program); err != nil {
		return nil, err
	}
	prog := zkp.Lower(ctx)
	if err := zkpprogram.Validate(prog); err != nil {
		return nil, fmt.Errorf("compiled program is malformed: %w", err)
	}
	nbConstant, nbPublic, nbPrivate := prog.NumInputs()
	log := logger.Logger()
	log.Info().
		Int("nbNodes", len(prog.Nodes)).
		Int("nbEdges", len(prog.Edges)).
		Int("nbConstantInputs", nbConstant).
		Int("nbPublicInputs", nbPublic).
		Int("nbPrivateInputs", nbPrivate).
		Msg("compiled zkp program")
	return prog, nil
}
