package zkpprogram

import (
	"fmt"
	"math/big"
	"sort"
)

// Evaluate computes every node value over the program's field from the given
// input vectors, running gadget hints to obtain hidden-input values, and
// checks every constraint node. It returns the per-node values on success and
// an error identifying the first failing constraint or missing input.
//
// This is a reference evaluator for witness checking and tests; proof systems
// consume the program through their own backends.
func (p *Program) Evaluate(constantInputs, publicInputs, privateInputs []*big.Int) ([]*big.Int, error) {
	in := make([][]edgeRef, len(p.Nodes))
	out := make([][]edgeRef, len(p.Nodes))
	for _, e := range p.Edges {
		in[e.To] = append(in[e.To], edgeRef{from: int(e.From), to: int(e.To), kind: e.Kind, position: e.Position})
		out[e.From] = append(out[e.From], edgeRef{from: int(e.From), to: int(e.To), kind: e.Kind, position: e.Position})
	}

	values := make([]*big.Int, len(p.Nodes))
	hidden := make(map[int]*big.Int)

	// Node ids are topologically ordered (Validate enforces From < To), so a
	// single ascending pass sees every operand before its consumer.
	for id, node := range p.Nodes {
		switch node.Op {
		case OpConstantInput:
			v, err := inputValue(constantInputs, node.Slot, "constant")
			if err != nil {
				return nil, err
			}
			values[id] = p.reduce(v)
		case OpPublicInput:
			v, err := inputValue(publicInputs, node.Slot, "public")
			if err != nil {
				return nil, err
			}
			values[id] = p.reduce(v)
		case OpPrivateInput:
			v, err := inputValue(privateInputs, node.Slot, "private")
			if err != nil {
				return nil, err
			}
			values[id] = p.reduce(v)
		case OpConstant:
			values[id] = p.reduce(node.Value)
		case OpHiddenInput:
			v, ok := hidden[id]
			if !ok {
				return nil, fmt.Errorf("hidden input node %d was never assigned by a gadget", id)
			}
			values[id] = v
		case OpInvokeGadget:
			if err := p.runGadget(id, node.Gadget, in[id], out[id], values, hidden); err != nil {
				return nil, err
			}
		case OpAdd, OpSub, OpMul:
			l, r, err := binaryOperands(in[id], values, id)
			if err != nil {
				return nil, err
			}
			t := new(big.Int)
			switch node.Op {
			case OpAdd:
				t.Add(l, r)
			case OpSub:
				t.Sub(l, r)
			case OpMul:
				t.Mul(l, r)
			}
			values[id] = p.reduce(t)
		case OpNeg:
			x, err := unaryOperand(in[id], values, id)
			if err != nil {
				return nil, err
			}
			values[id] = p.reduce(new(big.Int).Neg(x))
		case OpConstraint:
			x, err := unorderedOperand(in[id], values, id)
			if err != nil {
				return nil, err
			}
			want := p.reduce(node.Value)
			if x.Cmp(want) != 0 {
				return nil, fmt.Errorf("constraint node %d failed: got %v, want %v", id, x, want)
			}
			values[id] = x
		}
	}
	return values, nil
}

type edgeRef struct {
	from, to int
	kind     OperandKind
	position int
}

func (p *Program) reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, p.Field)
}

func inputValue(inputs []*big.Int, slot int, kind string) (*big.Int, error) {
	if slot < 0 || slot >= len(inputs) {
		return nil, fmt.Errorf("missing %s input for slot %d (%d supplied)", kind, slot, len(inputs))
	}
	return inputs[slot], nil
}

func binaryOperands(in []edgeRef, values []*big.Int, id int) (*big.Int, *big.Int, error) {
	var l, r *big.Int
	for _, e := range in {
		switch e.kind {
		case LeftOperand:
			l = values[e.from]
		case RightOperand:
			r = values[e.from]
		}
	}
	if l == nil || r == nil {
		return nil, nil, fmt.Errorf("node %d is missing a binary operand", id)
	}
	return l, r, nil
}

func unaryOperand(in []edgeRef, values []*big.Int, id int) (*big.Int, error) {
	for _, e := range in {
		if e.kind == UnaryOperand {
			return values[e.from], nil
		}
	}
	return nil, fmt.Errorf("node %d is missing its unary operand", id)
}

func unorderedOperand(in []edgeRef, values []*big.Int, id int) (*big.Int, error) {
	for _, e := range in {
		if e.kind == UnorderedOperand {
			return values[e.from], nil
		}
	}
	return nil, fmt.Errorf("node %d is missing its constrained operand", id)
}

// runGadget gathers the ordered gadget inputs, runs the gadget's hint, and
// assigns the results to the invocation's hidden-input nodes.
func (p *Program) runGadget(id int, g Gadget, in, out []edgeRef, values []*big.Int, hidden map[int]*big.Int) error {
	ordered := make([]edgeRef, 0, len(in))
	for _, e := range in {
		if e.kind == OrderedOperand {
			ordered = append(ordered, e)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].position < ordered[j].position })

	gadgetInputs := make([]*big.Int, len(ordered))
	for i, e := range ordered {
		gadgetInputs[i] = values[e.from]
	}
	hiddenOut := make([]*big.Int, g.HiddenInputCount())
	for i := range hiddenOut {
		hiddenOut[i] = big.NewInt(0)
	}
	if err := g.HintFunc()(p.Field, gadgetInputs, hiddenOut); err != nil {
		return fmt.Errorf("gadget %s hint failed at node %d: %w", g.Name(), id, err)
	}

	for _, e := range out {
		if e.kind != UnaryOperand {
			continue
		}
		arg := p.Nodes[e.to].Slot
		if arg < 0 || arg >= len(hiddenOut) {
			return fmt.Errorf("gadget %s at node %d has hidden input with bad argument index %d", g.Name(), id, arg)
		}
		hidden[e.to] = p.reduce(hiddenOut[arg])
	}
	return nil
}
