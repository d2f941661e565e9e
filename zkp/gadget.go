package zkp

import (
	"fmt"

	"github.com/veilcrypt/veil/frontend"
	"github.com/veilcrypt/veil/graph"
	"github.com/veilcrypt/veil/zkpprogram"
)

// InvokeGadget expands g's sub-circuit into the active context and returns
// the gadget's output ids.
//
// The argument count is checked against the gadget's declared arity before
// any node is created; a mismatch panics with the graph untouched. On success
// one invocation node is added, the gadget's hidden inputs are created and
// wired from the invocation node with unary edges (their order carries no
// meaning), and each supplied input is wired to the invocation node with an
// ordered edge whose position is its index in gadgetInputs; that position is
// the binding between argument order and the gadget's proof logic.
//
// Must be called inside a Use scope, not inside a With callback.
func InvokeGadget(g zkpprogram.Gadget, gadgetInputs []graph.NodeID) []graph.NodeID {
	if len(gadgetInputs) != g.GadgetInputCount() {
		panic(fmt.Sprintf("%s gadget input mismatch: expected %d arguments found %d",
			g.Name(), g.GadgetInputCount(), len(gadgetInputs)))
	}

	hiddenInputs := make([]graph.NodeID, 0, g.HiddenInputCount())
	With(func(ctx *Context) {
		invocation := ctx.AddNode(Operation{Kind: OpInvokeGadget, Gadget: g})

		for i := 0; i < g.HiddenInputCount(); i++ {
			hidden := ctx.AddHiddenInput(i)
			ctx.AddEdge(invocation, hidden, frontend.Operand{Kind: frontend.Unary})
			hiddenInputs = append(hiddenInputs, hidden)
		}

		for i, in := range gadgetInputs {
			ctx.AddEdge(in, invocation, frontend.OrderedOperand(i))
		}
	})

	return g.GenCircuit(gadgetInputs, hiddenInputs)
}
