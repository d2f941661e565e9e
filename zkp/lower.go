package zkp

import (
	"fmt"

	"github.com/veilcrypt/veil/frontend"
	"github.com/veilcrypt/veil/graph"
	"github.com/veilcrypt/veil/zkpprogram"
)

// Lower converts a finished context into a backend-ready program. It is a
// pure function over the context; the context must not be mutated afterwards.
// Node identifiers are compacted into a dense 0..N numbering in id order, so
// structurally identical programs lower to byte-identical compiled graphs.
func Lower(c *Context) *zkpprogram.Program {
	ids := c.G.Nodes()
	compact := make(map[graph.NodeID]uint64, len(ids))
	for i, id := range ids {
		compact[id] = uint64(i)
	}

	prog := &zkpprogram.Program{
		Field: c.Data.Field,
		Nodes: make([]zkpprogram.Node, 0, len(ids)),
	}
	for _, id := range ids {
		prog.Nodes = append(prog.Nodes, lowerOperation(c.G.NodeData(id)))
	}
	for _, e := range c.G.Edges() {
		prog.Edges = append(prog.Edges, zkpprogram.Edge{
			From:     compact[e.From],
			To:       compact[e.To],
			Kind:     lowerOperand(e.Data),
			Position: e.Data.Position,
		})
	}
	return prog
}

func lowerOperation(op Operation) zkpprogram.Node {
	switch op.Kind {
	case OpPrivateInput:
		return zkpprogram.Node{Op: zkpprogram.OpPrivateInput, Slot: op.Slot}
	case OpPublicInput:
		return zkpprogram.Node{Op: zkpprogram.OpPublicInput, Slot: op.Slot}
	case OpConstantInput:
		return zkpprogram.Node{Op: zkpprogram.OpConstantInput, Slot: op.Slot}
	case OpHiddenInput:
		return zkpprogram.Node{Op: zkpprogram.OpHiddenInput, Slot: op.Slot}
	case OpConstraint:
		return zkpprogram.Node{Op: zkpprogram.OpConstraint, Value: op.Value}
	case OpConstant:
		return zkpprogram.Node{Op: zkpprogram.OpConstant, Value: op.Value}
	case OpInvokeGadget:
		return zkpprogram.Node{Op: zkpprogram.OpInvokeGadget, Gadget: op.Gadget}
	case OpAdd:
		return zkpprogram.Node{Op: zkpprogram.OpAdd}
	case OpSub:
		return zkpprogram.Node{Op: zkpprogram.OpSub}
	case OpMul:
		return zkpprogram.Node{Op: zkpprogram.OpMul}
	case OpNeg:
		return zkpprogram.Node{Op: zkpprogram.OpNeg}
	}
	panic(fmt.Sprintf("unknown operation %v", op.Kind))
}

func lowerOperand(o frontend.Operand) zkpprogram.OperandKind {
	switch o.Kind {
	case frontend.Left:
		return zkpprogram.LeftOperand
	case frontend.Right:
		return zkpprogram.RightOperand
	case frontend.Unary:
		return zkpprogram.UnaryOperand
	case frontend.Ordered:
		return zkpprogram.OrderedOperand
	case frontend.Unordered:
		return zkpprogram.UnorderedOperand
	}
	panic(fmt.Sprintf("unknown operand role %v", o))
}
