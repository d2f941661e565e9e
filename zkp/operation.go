// Package zkp implements the frontend intermediate representation for ZKP
// programs: the operation vocabulary, the construction context with its input
// slot counters, the gadget expansion protocol, and the lowering pass
// producing a backend-ready zkpprogram.Program.
package zkp

import (
	"fmt"
	"math/big"

	"github.com/veilcrypt/veil/zkpprogram"
)

// OpKind enumerates the frontend operation tags of a ZKP program.
type OpKind uint8

const (
	_ OpKind = iota
	// OpPrivateInput loads a prover-supplied input from a witness slot.
	OpPrivateInput
	// OpPublicInput loads an input known to both prover and verifier.
	OpPublicInput
	// OpConstantInput loads a program constant bound at JIT time.
	OpConstantInput
	// OpHiddenInput is a gadget-introduced input whose value is computed by
	// the gadget's hint outside the graph.
	OpHiddenInput
	// OpConstraint asserts its operand equals the given value.
	OpConstraint
	// OpConstant is a literal field element.
	OpConstant
	// OpInvokeGadget anchors one gadget expansion.
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

// Operation is the payload of one frontend IR node. Slot is the input slot
// for the input kinds and the gadget argument index for hidden inputs; Value
// is set for OpConstraint and OpConstant; Gadget is set for OpInvokeGadget.
type Operation struct {
	Kind   OpKind
	Slot   int
	Value  *big.Int
	Gadget zkpprogram.Gadget
}

// String renders the operation with the same fields Equal compares.
func (op Operation) String() string {
	switch op.Kind {
	case OpPrivateInput, OpPublicInput, OpConstantInput, OpHiddenInput:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Slot)
	case OpConstraint, OpConstant:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Value)
	case OpInvokeGadget:
		return fmt.Sprintf("InvokeGadget(%s)", op.Gadget.Name())
	}
	return op.Kind.String()
}

// Equal compares two operations structurally. Every input kind is keyed on
// its slot, values compare numerically, and gadgets compare by their stable
// name.
func (op Operation) Equal(other Operation) bool {
	if op.Kind != other.Kind {
		return false
	}
	switch op.Kind {
	case OpPrivateInput, OpPublicInput, OpConstantInput, OpHiddenInput:
		return op.Slot == other.Slot
	case OpConstraint, OpConstant:
		return op.Value.Cmp(other.Value) == 0
	case OpInvokeGadget:
		return op.Gadget.Name() == other.Gadget.Name()
	}
	return true
}
