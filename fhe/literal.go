package fhe

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// LiteralKind discriminates the payload of a Literal.
type LiteralKind uint8

const (
	// LiteralU64 is an unsigned 64-bit integer literal.
	LiteralU64 LiteralKind = iota
	// LiteralPlaintext is an encoded plaintext literal.
	LiteralPlaintext
)

// Literal is the value of an OpLiteral node.
type Literal struct {
	Kind      LiteralKind
	U64       uint64
	Plaintext *Plaintext
}

func NewU64Literal(x uint64) *Literal {
	return &Literal{Kind: LiteralU64, U64: x}
}

func NewPlaintextLiteral(p *Plaintext) *Literal {
	return &Literal{Kind: LiteralPlaintext, Plaintext: p}
}

// Equal compares literals by value. The literal-deduplication scan uses it to
// decide whether an existing node can be reused.
func (l *Literal) Equal(o *Literal) bool {
	if l.Kind != o.Kind {
		return false
	}
	if l.Kind == LiteralU64 {
		return l.U64 == o.U64
	}
	return l.Plaintext.Equal(o.Plaintext)
}

func (l *Literal) String() string {
	if l.Kind == LiteralU64 {
		return fmt.Sprintf("U64(%d)", l.U64)
	}
	return fmt.Sprintf("Plaintext(%d coeffs)", len(l.Plaintext.Coeffs))
}

// Plaintext is an encoded plaintext polynomial: the coefficients of the
// encoding, each reduced modulo the plaintext modulus.
type Plaintext struct {
	Coeffs       []uint64
	PlainModulus uint64
}

func (p *Plaintext) Equal(o *Plaintext) bool {
	if p.PlainModulus != o.PlainModulus || len(p.Coeffs) != len(o.Coeffs) {
		return false
	}
	for i, c := range p.Coeffs {
		if c != o.Coeffs[i] {
			return false
		}
	}
	return true
}

// Bytes serializes the plaintext for the backend. A malformed plaintext is
// reported here, at lowering time, rather than when the literal node was
// inserted.
func (p *Plaintext) Bytes() ([]byte, error) {
	if len(p.Coeffs) == 0 {
		return nil, fmt.Errorf("plaintext has no coefficients")
	}
	if p.PlainModulus == 0 {
		return nil, fmt.Errorf("plaintext has no modulus")
	}
	for i, c := range p.Coeffs {
		if c >= p.PlainModulus {
			return nil, fmt.Errorf("plaintext coefficient %d (%d) exceeds modulus %d", i, c, p.PlainModulus)
		}
	}
	b, err := cbor.Marshal(struct {
		Coeffs       []uint64 `cbor:"1,keyasint"`
		PlainModulus uint64   `cbor:"2,keyasint"`
	}{p.Coeffs, p.PlainModulus})
	if err != nil {
		return nil, fmt.Errorf("encode plaintext: %w", err)
	}
	return b, nil
}
