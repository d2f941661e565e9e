// Package fheprogram defines the backend-ready form of a compiled FHE
// program: the operation and operand vocabulary the scheme-specific backend
// compiler consumes, plus validation and a binary serialization of the
// canonical graph.
package fheprogram

import "fmt"

// SchemeType identifies the homomorphic encryption scheme a program targets.
type SchemeType uint8

const (
	SchemeBfv SchemeType = iota
)

func (s SchemeType) String() string {
	if s == SchemeBfv {
		return "bfv"
	}
	return fmt.Sprintf("SchemeType(%d)", uint8(s))
}

// SecurityLevel is the lattice security level in bits.
type SecurityLevel int

const (
	SecurityTC128 SecurityLevel = 128
	SecurityTC192 SecurityLevel = 192
	SecurityTC256 SecurityLevel = 256
)

// OpKind enumerates the backend operation tags.
type OpKind uint8

const (
	_ OpKind = iota
	OpInputCiphertext
	OpInputPlaintext
	OpLiteralU64
	OpLiteralPlaintext
	OpAdd
	OpAddPlaintext
	OpSub
	OpSubPlaintext
	OpNegate
	OpMultiply
	OpMultiplyPlaintext
	OpShiftLeft
	OpShiftRight
	OpSwapRows
	OpOutputCiphertext
)

var opKindNames = map[OpKind]string{
	OpInputCiphertext:   "InputCiphertext",
	OpInputPlaintext:    "InputPlaintext",
	OpLiteralU64:        "LiteralU64",
	OpLiteralPlaintext:  "LiteralPlaintext",
	OpAdd:               "Add",
	OpAddPlaintext:      "AddPlaintext",
	OpSub:               "Sub",
	OpSubPlaintext:      "SubPlaintext",
	OpNegate:            "Negate",
	OpMultiply:          "Multiply",
	OpMultiplyPlaintext: "MultiplyPlaintext",
	OpShiftLeft:         "ShiftLeft",
	OpShiftRight:        "ShiftRight",
	OpSwapRows:          "SwapRows",
	OpOutputCiphertext:  "OutputCiphertext",
}

func (k OpKind) String() string {
	if s, ok := opKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// IsBinary reports whether the operation takes a left and a right operand.
func (k OpKind) IsBinary() bool {
	switch k {
	case OpAdd, OpAddPlaintext, OpSub, OpSubPlaintext,
		OpMultiply, OpMultiplyPlaintext, OpShiftLeft, OpShiftRight:
		return true
	}
	return false
}

// IsUnary reports whether the operation takes a single operand.
func (k OpKind) IsUnary() bool {
	return k == OpNegate || k == OpSwapRows || k == OpOutputCiphertext
}

// IsLeaf reports whether the operation takes no operands.
func (k OpKind) IsLeaf() bool {
	switch k {
	case OpInputCiphertext, OpInputPlaintext, OpLiteralU64, OpLiteralPlaintext:
		return true
	}
	return false
}

// Node is one operation of a compiled program.
type Node struct {
	Op OpKind

	// Position is the 0-based call-argument position bound to this node.
	// Valid for input operations only.
	Position int

	// U64 is the value of an OpLiteralU64 node.
	U64 uint64

	// Plaintext is the encoded payload of an OpLiteralPlaintext node.
	Plaintext []byte
}

func (n Node) String() string {
	switch n.Op {
	case OpInputCiphertext, OpInputPlaintext:
		return fmt.Sprintf("%v(%d)", n.Op, n.Position)
	case OpLiteralU64:
		return fmt.Sprintf("LiteralU64(%d)", n.U64)
	case OpLiteralPlaintext:
		return fmt.Sprintf("LiteralPlaintext(%d bytes)", len(n.Plaintext))
	}
	return n.Op.String()
}

// OperandKind enumerates the backend operand-role tags.
type OperandKind uint8

const (
	LeftOperand OperandKind = iota
	RightOperand
	UnaryOperand
)

func (k OperandKind) String() string {
	switch k {
	case LeftOperand:
		return "LeftOperand"
	case RightOperand:
		return "RightOperand"
	case UnaryOperand:
		return "UnaryOperand"
	}
	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// Edge wires the output of node From into node To. Node references are dense
// indices into Program.Nodes.
type Edge struct {
	From uint64
	To   uint64
	Kind OperandKind
}

// Program is an immutable compiled FHE program with a canonical dense node
// numbering. It is produced once by the frontend lowering pass and must not
// be modified afterwards.
type Program struct {
	Scheme SchemeType
	Nodes  []Node
	Edges  []Edge
}

// NumInputs returns the number of input nodes.
func (p *Program) NumInputs() int {
	n := 0
	for _, node := range p.Nodes {
		if node.Op == OpInputCiphertext || node.Op == OpInputPlaintext {
			n++
		}
	}
	return n
}

// NumOutputs returns the number of designated result slots.
func (p *Program) NumOutputs() int {
	n := 0
	for _, node := range p.Nodes {
		if node.Op == OpOutputCiphertext {
			n++
		}
	}
	return n
}

func (p *Program) Print() {
	fmt.Printf("scheme=%v nbNodes=%d nbEdges=%d\n", p.Scheme, len(p.Nodes), len(p.Edges))
	for i, n := range p.Nodes {
		fmt.Printf("n%d = %v\n", i, n)
	}
	for _, e := range p.Edges {
		fmt.Printf("n%d -> n%d (%v)\n", e.From, e.To, e.Kind)
	}
}
