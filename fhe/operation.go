// Package fhe implements the frontend intermediate representation for FHE
// programs: the operation vocabulary, the construction context and its
// builder operations, and the lowering pass producing a backend-ready
// fheprogram.Program.
package fhe

import "fmt"

// OpKind enumerates the frontend operation tags of an FHE program.
type OpKind uint8

const (
	_ OpKind = iota
	// OpInputCiphertext loads a ciphertext from a call argument.
	OpInputCiphertext
	// OpInputPlaintext loads a plaintext from a call argument.
	OpInputPlaintext
	// OpLiteral is a literal value serving as an operand to other operations.
	OpLiteral
	OpAdd
	// OpAddPlaintext adds a ciphertext and a plaintext value.
	OpAddPlaintext
	OpSub
	OpSubPlaintext
	OpNegate
	OpMultiply
	OpMultiplyPlaintext
	OpRotateLeft
	OpRotateRight
	// OpSwapRows swaps the rows of a batched vector.
	OpSwapRows
	// OpOutput marks its operand as a result of the program.
	OpOutput
)

var opKindNames = map[OpKind]string{
	OpInputCiphertext:   "InputCiphertext",
	OpInputPlaintext:    "InputPlaintext",
	OpLiteral:           "Literal",
	OpAdd:               "Add",
	OpAddPlaintext:      "AddPlaintext",
	OpSub:               "Sub",
	OpSubPlaintext:      "SubPlaintext",
	OpNegate:            "Negate",
	OpMultiply:          "Multiply",
	OpMultiplyPlaintext: "MultiplyPlaintext",
	OpRotateLeft:        "RotateLeft",
	OpRotateRight:       "RotateRight",
	OpSwapRows:          "SwapRows",
	OpOutput:            "Output",
}

func (k OpKind) String() string {
	if s, ok := opKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Operation is the payload of one frontend IR node. Literal is set for
// OpLiteral nodes only.
type Operation struct {
	Kind    OpKind
	Literal *Literal
}

func (op Operation) String() string {
	if op.Kind == OpLiteral {
		return fmt.Sprintf("Literal(%v)", op.Literal)
	}
	return op.Kind.String()
}

// Equal compares two operations structurally. Literals compare by value.
func (op Operation) Equal(other Operation) bool {
	if op.Kind != other.Kind {
		return false
	}
	if op.Kind == OpLiteral {
		return op.Literal.Equal(other.Literal)
	}
	return true
}

// IsInput reports whether the operation binds a call argument. The lowering
// pass assigns argument positions by the insertion rank of these nodes.
func (op Operation) IsInput() bool {
	return op.Kind == OpInputCiphertext || op.Kind == OpInputPlaintext
}
