// Package zkpprogram defines the backend-ready form of a compiled ZKP
// program, the operation vocabulary handed to an R1CS backend, together
// with the Gadget interface, validation, serialization, and a reference
// evaluator used to check witnesses against a compiled program.
package zkpprogram

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"

	"github.com/veilcrypt/veil/graph"
)

// Gadget is a parametric compute-and-prove unit. During construction its
// GenCircuit describes the sub-circuit proving a relation between the gadget
// inputs and the hidden inputs; at witness-solving time its hint computes the
// concrete hidden-input values.
//
// A gadget's identity is its Name, a stable key chosen by the implementor.
// Two gadgets with the same name are considered the same operation.
type Gadget interface {
	// GenCircuit builds the gadget's sub-circuit on the active construction
	// context. Both argument slices have exactly the declared lengths. The
	// returned ids are the gadget's outputs, handed back to the caller
	// verbatim.
	GenCircuit(gadgetInputs, hiddenInputs []graph.NodeID) []graph.NodeID

	// HintFunc returns the host-side computation producing the hidden-input
	// values from the gadget-input values. It runs at evaluation time, never
	// during graph construction.
	HintFunc() solver.Hint

	// GadgetInputCount returns the expected number of gadget inputs.
	GadgetInputCount() int

	// HiddenInputCount returns the expected number of hidden inputs.
	HiddenInputCount() int

	// Name returns the gadget's stable identity key, also used for rendering.
	Name() string
}

// OpKind enumerates the backend operation tags.
type OpKind uint8

const (
	_ OpKind = iota
	OpPrivateInput
	OpPublicInput
	OpConstantInput
	OpHiddenInput
	OpConstraint
	OpConstant
	OpInvokeGadget
	OpAdd
	OpSub
	OpMul
	OpNeg
)

var opKindNames = map[OpKind]string{
	OpPrivateInput:  "PrivateInput",
	OpPublicInput:   "PublicInput",
	OpConstantInput: "ConstantInput",
	OpHiddenInput:   "HiddenInput",
	OpConstraint:    "Constraint",
	OpConstant:      "Constant",
	OpInvokeGadget:  "InvokeGadget",
	OpAdd:           "Add",
	OpSub:           "Sub",
	OpMul:           "Mul",
	OpNeg:           "Neg",
}

func (k OpKind) String() string {
	if s, ok := opKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Node is one operation of a compiled program. Slot is the input slot for
// input operations and the gadget argument index for hidden inputs; Value is
// set for OpConstraint and OpConstant; Gadget is set for OpInvokeGadget.
type Node struct {
	Op     OpKind
	Slot   int
	Value  *big.Int
	Gadget Gadget
}

func (n Node) String() string {
	switch n.Op {
	case OpPrivateInput, OpPublicInput, OpConstantInput, OpHiddenInput:
		return fmt.Sprintf("%v(%d)", n.Op, n.Slot)
	case OpConstraint, OpConstant:
		return fmt.Sprintf("%v(%v)", n.Op, n.Value)
	case OpInvokeGadget:
		return fmt.Sprintf("InvokeGadget(%s)", n.Gadget.Name())
	}
	return n.Op.String()
}

// OperandKind enumerates the backend operand-role tags.
type OperandKind uint8

const (
	LeftOperand OperandKind = iota
	RightOperand
	UnaryOperand
	OrderedOperand
	UnorderedOperand
)

func (k OperandKind) String() string {
	switch k {
	case LeftOperand:
		return "LeftOperand"
	case RightOperand:
		return "RightOperand"
	case UnaryOperand:
		return "UnaryOperand"
	case OrderedOperand:
		return "OrderedOperand"
	case UnorderedOperand:
		return "UnorderedOperand"
	}
	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// Edge wires the output of node From into node To. Position is meaningful for
// OrderedOperand edges only. Node references are dense indices into
// Program.Nodes, and every edge satisfies From < To.
type Edge struct {
	From     uint64
	To       uint64
	Kind     OperandKind
	Position int
}

// Program is an immutable compiled ZKP program with a canonical dense node
// numbering over the given field. It is produced once by the frontend
// lowering pass and must not be modified afterwards.
type Program struct {
	Field *big.Int
	Nodes []Node
	Edges []Edge
}

// NumInputs returns the number of constant, public, and private input slots.
func (p *Program) NumInputs() (constant, public, private int) {
	for _, n := range p.Nodes {
		switch n.Op {
		case OpConstantInput:
			constant++
		case OpPublicInput:
			public++
		case OpPrivateInput:
			private++
		}
	}
	return
}

func (p *Program) Print() {
	fmt.Printf("field=%v nbNodes=%d nbEdges=%d\n", p.Field, len(p.Nodes), len(p.Edges))
	for i, n := range p.Nodes {
		fmt.Printf("n%d = %v\n", i, n)
	}
	for _, e := range p.Edges {
		if e.Kind == OrderedOperand {
			fmt.Printf("n%d -> n%d (Ordered(%d))\n", e.From, e.To, e.Position)
		} else {
			fmt.Printf("n%d -> n%d (%v)\n", e.From, e.To, e.Kind)
		}
	}
}
