package fheprogram

import "github.com/veilcrypt/veil/utils"

const serializeMagic = 0x7665696c66686531 // "veilfhe1"

// Serialize converts a Program into a byte array for storage or transmission.
// Structurally identical programs serialize to identical bytes.
func (p *Program) Serialize() []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(serializeMagic)
	o.AppendUint8(uint8(p.Scheme))
	o.AppendUint64(uint64(len(p.Nodes)))
	for _, n := range p.Nodes {
		o.AppendUint8(uint8(n.Op))
		switch n.Op {
		case OpInputCiphertext, OpInputPlaintext:
			o.AppendUint64(uint64(n.Position))
		case OpLiteralU64:
			o.AppendUint64(n.U64)
		case OpLiteralPlaintext:
			o.AppendBytes(n.Plaintext)
		}
	}
	o.AppendUint64(uint64(len(p.Edges)))
	for _, e := range p.Edges {
		o.AppendUint64(e.From)
		o.AppendUint64(e.To)
		o.AppendUint8(uint8(e.Kind))
	}
	return o.Bytes()
}

// Deserialize reconstructs a Program serialized by Serialize. It panics on a
// buffer that was not produced by Serialize.
func Deserialize(buf []byte) *Program {
	in := utils.NewInputBuf(buf)
	if in.ReadUint64() != serializeMagic {
		panic("invalid file header")
	}
	p := &Program{Scheme: SchemeType(in.ReadUint8())}
	nbNodes := in.ReadUint64()
	p.Nodes = make([]Node, nbNodes)
	for i := uint64(0); i < nbNodes; i++ {
		n := Node{Op: OpKind(in.ReadUint8())}
		switch n.Op {
		case OpInputCiphertext, OpInputPlaintext:
			n.Position = int(in.ReadUint64())
		case OpLiteralU64:
			n.U64 = in.ReadUint64()
		case OpLiteralPlaintext:
			n.Plaintext = in.ReadBytes()
		}
		p.Nodes[i] = n
	}
	nbEdges := in.ReadUint64()
	p.Edges = make([]Edge, nbEdges)
	for i := uint64(0); i < nbEdges; i++ {
		p.Edges[i] = Edge{
			From: in.ReadUint64(),
			To:   in.ReadUint64(),
			Kind: OperandKind(in.ReadUint8()),
		}
	}
	if !in.IsEnd() {
		panic("trailing bytes after program")
	}
	return p
}
