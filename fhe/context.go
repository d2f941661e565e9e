package fhe

import (
	"github.com/veilcrypt/veil/frontend"
	"github.com/veilcrypt/veil/graph"
)

// Context holds the graph of an FHE program during construction.
type Context struct {
	frontend.Context[Operation, *Params]
}

// NewContext creates an empty construction context for the given parameters.
func NewContext(params *Params) *Context {
	return &Context{Context: *frontend.NewContext[Operation](params)}
}

var active frontend.Slot[Context]

// Use installs ctx as the active FHE construction context for the duration of
// f. The registration is released on every exit path. Nested activation
// panics.
func Use(ctx *Context, f func() error) error {
	return active.Use(ctx, f)
}

// With runs f with the active FHE context. It panics when called outside a
// Use scope.
func With(f func(*Context)) {
	active.With(f)
}

// AddCiphertextInput adds a ciphertext input to this context.
func (c *Context) AddCiphertextInput() graph.NodeID {
	return c.AddNode(Operation{Kind: OpInputCiphertext})
}

// AddPlaintextInput adds a plaintext input to this context.
func (c *Context) AddPlaintextInput() graph.NodeID {
	return c.AddNode(Operation{Kind: OpInputPlaintext})
}

// AddLiteral adds a literal to this context, reusing an existing node when
// the same value is already present. Callers must not assume a fresh node is
// created.
func (c *Context) AddLiteral(lit *Literal) graph.NodeID {
	for _, id := range c.G.Nodes() {
		op := c.G.NodeData(id)
		if op.Kind == OpLiteral && op.Literal.Equal(lit) {
			return id
		}
	}
	return c.AddNode(Operation{Kind: OpLiteral, Literal: lit})
}

// AddPlaintextLiteral adds an encoded plaintext literal to this context.
func (c *Context) AddPlaintextLiteral(p *Plaintext) graph.NodeID {
	return c.AddLiteral(NewPlaintextLiteral(p))
}

// AddAddition adds an addition to this context.
func (c *Context) AddAddition(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpAdd}, left, right)
}

// AddAdditionPlaintext adds an addition of a ciphertext and a plaintext.
func (c *Context) AddAdditionPlaintext(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpAddPlaintext}, left, right)
}

// AddSubtraction adds a subtraction to this context.
func (c *Context) AddSubtraction(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpSub}, left, right)
}

// AddSubtractionPlaintext adds a subtraction of a plaintext.
func (c *Context) AddSubtractionPlaintext(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpSubPlaintext}, left, right)
}

// AddNegate adds a unary negation to this context.
func (c *Context) AddNegate(x graph.NodeID) graph.NodeID {
	return c.AddUnary(Operation{Kind: OpNegate}, x)
}

// AddMultiplication adds a multiplication to this context.
func (c *Context) AddMultiplication(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpMultiply}, left, right)
}

// AddMultiplicationPlaintext adds a multiplication of a ciphertext by a
// plaintext.
func (c *Context) AddMultiplicationPlaintext(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpMultiplyPlaintext}, left, right)
}

// AddRotateLeft adds a left rotation. right is the shift amount.
func (c *Context) AddRotateLeft(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpRotateLeft}, left, right)
}

// AddRotateRight adds a right rotation. right is the shift amount.
func (c *Context) AddRotateRight(left, right graph.NodeID) graph.NodeID {
	return c.AddBinary(Operation{Kind: OpRotateRight}, left, right)
}

// AddSwapRows adds a row swap.
func (c *Context) AddSwapRows(x graph.NodeID) graph.NodeID {
	return c.AddUnary(Operation{Kind: OpSwapRows}, x)
}

// AddOutput marks x as a result of the program.
func (c *Context) AddOutput(x graph.NodeID) graph.NodeID {
	return c.AddUnary(Operation{Kind: OpOutput}, x)
}

// Equal reports whether two contexts encode the same program, compared by
// graph isomorphism. Test and debugging use only; see graph.Isomorphic for
// the cost caveat.
func (c *Context) Equal(o *Context) bool {
	return graph.Isomorphic(c.G, o.G, Operation.Equal, func(a, b frontend.Operand) bool {
		return a == b
	})
}
