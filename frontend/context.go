// Package frontend contains the scheme-independent machinery for constructing
// frontend intermediate representations: the construction context shared by
// the FHE and ZKP frontends, the operand-role vocabulary, and the scoped
// registration of the context currently under construction.
package frontend

import (
	"fmt"

	"github.com/veilcrypt/veil/graph"
)

// Operation is the constraint on node payloads stored in a Context's graph.
type Operation interface {
	fmt.Stringer
}

// Context owns the graph of one program under construction plus
// scheme-specific bookkeeping of type D. A Context lives for exactly one
// compilation: created empty, mutated through builder operations, consumed by
// the lowering pass.
//
// A builder operation appends one node and all of its operand edges together;
// callers never observe a partially wired node.
type Context[O Operation, D any] struct {
	G    *graph.Graph[O, Operand]
	Data D
}

func NewContext[O Operation, D any](data D) *Context[O, D] {
	return &Context[O, D]{
		G:    graph.New[O, Operand](),
		Data: data,
	}
}

// AddNode appends a leaf node with no operands.
func (c *Context[O, D]) AddNode(op O) graph.NodeID {
	return c.G.AddNode(op)
}

// AddBinary appends a node consuming left and right. All binary operation
// kinds share this wiring.
func (c *Context[O, D]) AddBinary(op O, left, right graph.NodeID) graph.NodeID {
	id := c.G.AddNode(op)
	c.G.AddEdge(left, id, Operand{Kind: Left})
	c.G.AddEdge(right, id, Operand{Kind: Right})
	return id
}

// AddUnary appends a node consuming a single operand.
func (c *Context[O, D]) AddUnary(op O, x graph.NodeID) graph.NodeID {
	id := c.G.AddNode(op)
	c.G.AddEdge(x, id, Operand{Kind: Unary})
	return id
}

// AddEdge appends a single operand edge. Builder operations that do their own
// wiring (constraints, gadget expansion) use this directly.
func (c *Context[O, D]) AddEdge(from, to graph.NodeID, o Operand) {
	c.G.AddEdge(from, to, o)
}
