package zkp

import (
	"math/big"

	"github.com/veilcrypt/veil/frontend"
	"github.com/veilcrypt/veil/graph"
)

// Data tracks the scheme-local state of a ZKP program under construction: the
// field the program is defined over and the next free slot of each input
// kind. Slots only ever grow; a slot is never reused within one context.
type Data struct {
	Field             *big.Int
	nextPublicInput   int
	nextPrivateInput  int
	nextConstantInput int
}

// Context holds the graph of a ZKP program during construction.
type Context struct {
	frontend.Context[Operation, *Data]
}

// NewContext creates an empty construction context over the given field.
func NewContext(field *big.Int) *Context {
	return &Context{Context: *frontend.NewContext[Operation](&Data{Field: field})}
}

var active frontend.Slot[Context]

// Use installs ctx as the active ZKP construction context for the duration of
// f. The registration is released on every exit path. Nested activation
// panics.
func Use(ctx *Context, f func() error) error {
	return active.Use(ctx, f)
}

// With runs f with the active ZKP context. It panics when called outside a
// Use scope.
func With(f func(*Context)) {
	active.With(f)
}

// AddPublicInput adds an input visible to both prover and verifier,
// occupying the next public input slot.
func (c *Context) AddPublicInput() graph.NodeID {
	id := c.AddNode(Operation{Kind: OpPublicInput, Slot: c.Data.nextPublicInput})
	c.Data.nextPublicInput++
	return id
}

// AddPrivateInput adds a witness input, occupying the next private input
// slot.
func (c *Context) AddPrivateInput() graph.NodeID {
	id := c.AddNode(Operation{Kind: OpPrivateInput, Slot: c.Data.nextPrivateInput})
	c.Data.nextPrivateInput++
	return id
}

// AddConstantInput adds a JIT-time constant input, occupying the next
// constant input slot.
func (c *Context) AddConstantInput() graph.NodeID {
	id := c.AddNode(Operation{Kind: OpConstantInput, Slot: c.Data.nextConstantInput})
	c.Data.nextConstantInput++
	return id
}

// AddHiddenInput adds a gadget hidden input bound to the given gadget
// argument index. Only the gadget expansion protocol calls this.
func (c *Context) AddHiddenInput(gadgetArgID int) graph.NodeID {
	return c.AddNode(Operation{Kind: OpHiddenInput, Slot: gadgetArgID})
}

// AddAddition adds an addition to this context.
func (c *Context) AddAddition(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpAdd}, left, right)
}

// AddSubtraction adds a subtraction to this context.
func (c *Context) AddSubtraction(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpSub}, left, right)
}

// AddMultiplication adds a multiplication to this context.
func (c *Context) AddMultiplication(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpMul}, left, right)
}

// AddNegate adds a unary negation to this context.
func (c *Context) AddNegate(x graph.NodeID) graph.NodeID {
	return c.AddUnary(Operation{Kind: OpNeg}, x)
}

// AddConstraint asserts that x equals val.
func (c *Context) AddConstraint(x graph.NodeID, val *big.Int) graph.NodeID {
	id := c.G.AddNode(Operation{Kind: OpConstraint, Value: val})
	c.AddEdge(x, id, frontend.Operand{Kind: frontend.Unordered})
	return id
}

// AddConstant adds a field-element constant to this context, reusing an
// existing node when the same value is already present. Callers must not
// assume a fresh node is created.
func (c *Context) AddConstant(val *big.Int) graph.NodeID {
	for _, id := range c.G.Nodes() {
		op := c.G.NodeData(id)
		if op.Kind == OpConstant && op.Value.Cmp(val) == 0 {
			return id
		}
	}
	return c.AddNode(Operation{Kind: OpConstant, Value: val})
}

// Equal reports whether two contexts encode the same program, compared by
// graph isomorphism. Test and debugging use only; see graph.Isomorphic for
// the cost caveat.
func (c *Context) Equal(o *Context) bool {
	return graph.Isomorphic(c.G, o.G, Operation.Equal, func(a, b frontend.Operand) bool {
		return a == b
	})
}
