package zkpprogram

import "fmt"

// Validate checks the structural invariants of a compiled program: edge
// references in range and topologically ordered (From < To), the operand
// arity of every node, and gadget invocation wiring.
func Validate(p *Program) error {
	n := uint64(len(p.Nodes))
	for i, e := range p.Edges {
		if e.From >= n || e.To >= n {
			return fmt.Errorf("edge %d (%d -> %d) out of range", i, e.From, e.To)
		}
		if e.From >= e.To {
			return fmt.Errorf("edge %d (%d -> %d) is not topologically ordered", i, e.From, e.To)
		}
	}

	type degrees struct {
		left, right, unary, ordered, unordered, in int
	}
	deg := make([]degrees, n)
	for _, e := range p.Edges {
		d := &deg[e.To]
		d.in++
		switch e.Kind {
		case LeftOperand:
			d.left++
		case RightOperand:
			d.right++
		case UnaryOperand:
			d.unary++
		case OrderedOperand:
			d.ordered++
		case UnorderedOperand:
			d.unordered++
		default:
			return fmt.Errorf("edge %d -> %d has unknown operand kind %d", e.From, e.To, e.Kind)
		}
	}

	for i, node := range p.Nodes {
		d := deg[i]
		switch node.Op {
		case OpAdd, OpSub, OpMul:
			if d.left != 1 || d.right != 1 || d.in != 2 {
				return fmt.Errorf("node %d (%v) must have exactly one left and one right operand", i, node.Op)
			}
		case OpNeg:
			if d.unary != 1 || d.in != 1 {
				return fmt.Errorf("node %d (Neg) must have exactly one unary operand", i)
			}
		case OpConstraint:
			if d.unordered != 1 || d.in != 1 {
				return fmt.Errorf("node %d (Constraint) must have exactly one unordered operand", i)
			}
			if node.Value == nil {
				return fmt.Errorf("node %d (Constraint) has no value", i)
			}
		case OpConstant:
			if d.in != 0 {
				return fmt.Errorf("node %d (Constant) must have no operands", i)
			}
			if node.Value == nil {
				return fmt.Errorf("node %d (Constant) has no value", i)
			}
		case OpPrivateInput, OpPublicInput, OpConstantInput:
			if d.in != 0 {
				return fmt.Errorf("node %d (%v) must have no operands", i, node.Op)
			}
		case OpHiddenInput:
			if d.unary != 1 || d.in != 1 {
				return fmt.Errorf("node %d (HiddenInput) must be wired to exactly one gadget invocation", i)
			}
		case OpInvokeGadget:
			if node.Gadget == nil {
				return fmt.Errorf("node %d (InvokeGadget) has no gadget", i)
			}
			if err := validateInvocation(p, i); err != nil {
				return err
			}
		default:
			return fmt.Errorf("node %d has unknown operation %d", i, node.Op)
		}
	}
	return nil
}

func validateInvocation(p *Program, id int) error {
	g := p.Nodes[id].Gadget
	seen := make([]bool, g.GadgetInputCount())
	nbOrdered, nbHidden := 0, 0
	for _, e := range p.Edges {
		if int(e.To) == id {
			if e.Kind != OrderedOperand {
				return fmt.Errorf("node %d (InvokeGadget %s) has a non-ordered operand", id, g.Name())
			}
			if e.Position < 0 || e.Position >= len(seen) || seen[e.Position] {
				return fmt.Errorf("node %d (InvokeGadget %s) operand positions are not a permutation of 0..%d", id, g.Name(), len(seen)-1)
			}
			seen[e.Position] = true
			nbOrdered++
		}
		if int(e.From) == id {
			if e.Kind != UnaryOperand || p.Nodes[e.To].Op != OpHiddenInput {
				return fmt.Errorf("node %d (InvokeGadget %s) has a non-hidden-input successor", id, g.Name())
			}
			nbHidden++
		}
	}
	if nbOrdered != g.GadgetInputCount() {
		return fmt.Errorf("node %d (InvokeGadget %s) has %d gadget inputs, want %d", id, g.Name(), nbOrdered, g.GadgetInputCount())
	}
	if nbHidden != g.HiddenInputCount() {
		return fmt.Errorf("node %d (InvokeGadget %s) has %d hidden inputs, want %d", id, g.Name(), nbHidden, g.HiddenInputCount())
	}
	return nil
}
