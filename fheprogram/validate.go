package fheprogram

import "fmt"

// Validate checks the structural invariants of a compiled program: edge
// references in range, the operand arity of every node, and dense input
// positions. The lowering pass emits programs that always pass; Validate
// guards programs arriving from storage or other processes.
func Validate(p *Program) error {
	n := uint64(len(p.Nodes))
	for i, e := range p.Edges {
		if e.From >= n || e.To >= n {
			return fmt.Errorf("edge %d (%d -> %d) out of range", i, e.From, e.To)
		}
	}

	inDegree := make([]int, n)
	left := make([]int, n)
	right := make([]int, n)
	unary := make([]int, n)
	for _, e := range p.Edges {
		inDegree[e.To]++
		switch e.Kind {
		case LeftOperand:
			left[e.To]++
		case RightOperand:
			right[e.To]++
		case UnaryOperand:
			unary[e.To]++
		default:
			return fmt.Errorf("edge %d -> %d has unknown operand kind %d", e.From, e.To, e.Kind)
		}
	}

	positions := []int{}
	for i, node := range p.Nodes {
		switch {
		case node.Op.IsBinary():
			if left[i] != 1 || right[i] != 1 || inDegree[i] != 2 {
				return fmt.Errorf("node %d (%v) must have exactly one left and one right operand", i, node.Op)
			}
		case node.Op.IsUnary():
			if unary[i] != 1 || inDegree[i] != 1 {
				return fmt.Errorf("node %d (%v) must have exactly one unary operand", i, node.Op)
			}
		case node.Op.IsLeaf():
			if inDegree[i] != 0 {
				return fmt.Errorf("node %d (%v) must have no operands", i, node.Op)
			}
			if node.Op == OpInputCiphertext || node.Op == OpInputPlaintext {
				positions = append(positions, node.Position)
			}
		default:
			return fmt.Errorf("node %d has unknown operation %d", i, node.Op)
		}
	}

	// input positions must be exactly 0..n-1 in node order
	for i, pos := range positions {
		if pos != i {
			return fmt.Errorf("input node positions are not canonical: rank %d has position %d", i, pos)
		}
	}
	return nil
}
