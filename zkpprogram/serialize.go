package zkpprogram

import (
	"sync"

	"github.com/veilcrypt/veil/utils"
)

const serializeMagic = 0x7665696c7a6b7031 // "veilzkp1"

var (
	registryLock sync.Mutex
	registry     = make(map[string]Gadget)
)

// RegisterGadget makes a gadget available to Deserialize under its Name. A
// gadget invocation node serializes as the gadget's name only; the process
// reading the program back must register the same gadget.
func RegisterGadget(g Gadget) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[g.Name()] = g
}

func registeredGadget(name string) Gadget {
	registryLock.Lock()
	defer registryLock.Unlock()
	return registry[name]
}

// Serialize converts a Program into a byte array for storage or transmission.
// Structurally identical programs serialize to identical bytes.
func (p *Program) Serialize() []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(serializeMagic)
	o.AppendBigInt(p.Field)
	o.AppendUint64(uint64(len(p.Nodes)))
	for _, n := range p.Nodes {
		o.AppendUint8(uint8(n.Op))
		switch n.Op {
		case OpPrivateInput, OpPublicInput, OpConstantInput, OpHiddenInput:
			o.AppendUint64(uint64(n.Slot))
		case OpConstraint, OpConstant:
			o.AppendBigInt(n.Value)
		case OpInvokeGadget:
			o.AppendBytes([]byte(n.Gadget.Name()))
		}
	}
	o.AppendUint64(uint64(len(p.Edges)))
	for _, e := range p.Edges {
		o.AppendUint64(e.From)
		o.AppendUint64(e.To)
		o.AppendUint8(uint8(e.Kind))
		if e.Kind == OrderedOperand {
			o.AppendUint64(uint64(e.Position))
		}
	}
	return o.Bytes()
}

// Deserialize reconstructs a Program serialized by Serialize. Gadgets are
// resolved through the registry; it panics on an unregistered gadget or a
// buffer that was not produced by Serialize.
func Deserialize(buf []byte) *Program {
	in := utils.NewInputBuf(buf)
	if in.ReadUint64() != serializeMagic {
		panic("invalid file header")
	}
	p := &Program{Field: in.ReadBigInt()}
	nbNodes := in.ReadUint64()
	p.Nodes = make([]Node, nbNodes)
	for i := uint64(0); i < nbNodes; i++ {
		n := Node{Op: OpKind(in.ReadUint8())}
		switch n.Op {
		case OpPrivateInput, OpPublicInput, OpConstantInput, OpHiddenInput:
			n.Slot = int(in.ReadUint64())
		case OpConstraint, OpConstant:
			n.Value = in.ReadBigInt()
		case OpInvokeGadget:
			name := string(in.ReadBytes())
			n.Gadget = registeredGadget(name)
			if n.Gadget == nil {
				panic("gadget not registered: " + name)
			}
		}
		p.Nodes[i] = n
	}
	nbEdges := in.ReadUint64()
	p.Edges = make([]Edge, nbEdges)
	for i := uint64(0); i < nbEdges; i++ {
		e := Edge{
			From: in.ReadUint64(),
			To:   in.ReadUint64(),
			Kind: OperandKind(in.ReadUint8()),
		}
		if e.Kind == OrderedOperand {
			e.Position = int(in.ReadUint64())
		}
		p.Edges[i] = e
	}
	if !in.IsEnd() {
		panic("trailing bytes after program")
	}
	return p
}
