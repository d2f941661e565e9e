package fhe

import (
	"fmt"

	"github.com/veilcrypt/veil/fheprogram"
	"github.com/veilcrypt/veil/frontend"
	"github.com/veilcrypt/veil/graph"
)

// Lower converts a finished context into a backend-ready program. It is a
// pure function over the context; the context must not be mutated afterwards.
//
// Node identifiers are compacted into a dense 0..N numbering in id order, so
// structurally identical programs lower to byte-identical compiled graphs.
// Input nodes are bound to call-argument positions by their insertion rank
// among all input nodes; the code-generation layer inserts them in argument
// order and the binding relies on that.
//
// A plaintext literal that fails to encode yields an error naming the
// offending node; no error surfaces before lowering runs.
func Lower(c *Context) (*fheprogram.Program, error) {
	ids := c.G.Nodes()
	compact := make(map[graph.NodeID]uint64, len(ids))
	for i, id := range ids {
		compact[id] = uint64(i)
	}

	prog := &fheprogram.Program{
		Scheme: c.Data.Scheme,
		Nodes:  make([]fheprogram.Node, 0, len(ids)),
	}

	inputRank := 0
	for _, id := range ids {
		op := c.G.NodeData(id)
		node, err := lowerOperation(op, &inputRank)
		if err != nil {
			return nil, fmt.Errorf("literal node %d: %w", id, err)
		}
		prog.Nodes = append(prog.Nodes, node)
	}

	for _, e := range c.G.Edges() {
		prog.Edges = append(prog.Edges, fheprogram.Edge{
			From: compact[e.From],
			To:   compact[e.To],
			Kind: lowerOperand(e.Data),
		})
	}
	return prog, nil
}

func lowerOperation(op Operation, inputRank *int) (fheprogram.Node, error) {
	switch op.Kind {
	case OpInputCiphertext, OpInputPlaintext:
		kind := fheprogram.OpInputCiphertext
		if op.Kind == OpInputPlaintext {
			kind = fheprogram.OpInputPlaintext
		}
		n := fheprogram.Node{Op: kind, Position: *inputRank}
		*inputRank++
		return n, nil
	case OpLiteral:
		if op.Literal.Kind == LiteralU64 {
			return fheprogram.Node{Op: fheprogram.OpLiteralU64, U64: op.Literal.U64}, nil
		}
		b, err := op.Literal.Plaintext.Bytes()
		if err != nil {
			return fheprogram.Node{}, err
		}
		return fheprogram.Node{Op: fheprogram.OpLiteralPlaintext, Plaintext: b}, nil
	case OpAdd:
		return fheprogram.Node{Op: fheprogram.OpAdd}, nil
	case OpAddPlaintext:
		return fheprogram.Node{Op: fheprogram.OpAddPlaintext}, nil
	case OpSub:
		return fheprogram.Node{Op: fheprogram.OpSub}, nil
	case OpSubPlaintext:
		return fheprogram.Node{Op: fheprogram.OpSubPlaintext}, nil
	case OpNegate:
		return fheprogram.Node{Op: fheprogram.OpNegate}, nil
	case OpMultiply:
		return fheprogram.Node{Op: fheprogram.OpMultiply}, nil
	case OpMultiplyPlaintext:
		return fheprogram.Node{Op: fheprogram.OpMultiplyPlaintext}, nil
	case OpRotateLeft:
		return fheprogram.Node{Op: fheprogram.OpShiftLeft}, nil
	case OpRotateRight:
		return fheprogram.Node{Op: fheprogram.OpShiftRight}, nil
	case OpSwapRows:
		return fheprogram.Node{Op: fheprogram.OpSwapRows}, nil
	case OpOutput:
		return fheprogram.Node{Op: fheprogram.OpOutputCiphertext}, nil
	}
	panic(fmt.Sprintf("unknown operation %v", op.Kind))
}

func lowerOperand(o frontend.Operand) fheprogram.OperandKind {
	switch o.Kind {
	case frontend.Left:
		return fheprogram.LeftOperand
	case frontend.Right:
		return fheprogram.RightOperand
	case frontend.Unary:
		return fheprogram.UnaryOperand
	}
	panic(fmt.Sprintf("operand role %v cannot appear in an fhe program", o))
}
