package frontend

import "fmt"

// OperandKind enumerates the roles an edge can play for its destination node.
type OperandKind uint8

const (
	// Left marks the left operand of a binary operation.
	Left OperandKind = iota
	// Right marks the right operand of a binary operation.
	Right
	// Unary marks the single operand of a unary operation.
	Unary
	// Ordered marks one of several position-significant operands.
	Ordered
	// Unordered marks an operand whose position carries no meaning.
	Unordered
)

// Operand is the payload attached to every IR edge. Position is meaningful
// only for Ordered operands.
type Operand struct {
	Kind     OperandKind
	Position int
}

func OrderedOperand(position int) Operand {
	return Operand{Kind: Ordered, Position: position}
}

func (o Operand) String() string {
	switch o.Kind {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Unary:
		return "Unary"
	case Ordered:
		return fmt.Sprintf("Ordered(%d)", o.Position)
	case Unordered:
		return "Unordered"
	}
	return fmt.Sprintf("OperandKind(%d)", o.Kind)
}
