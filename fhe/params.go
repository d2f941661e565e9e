package fhe

import "github.com/veilcrypt/veil/fheprogram"

// Params is the set of scheme parameters a program is constructed against.
// The frontend records them with the context; the backend compiler consumes
// them alongside the compiled program.
type Params struct {
	Scheme           fheprogram.SchemeType
	LatticeDimension uint64
	PlainModulus     uint64
	CoeffModulus     []uint64
	SecurityLevel    fheprogram.SecurityLevel
}

// DefaultParams returns BFV parameters suitable for small test programs.
func DefaultParams() *Params {
	return &Params{
		Scheme:           fheprogram.SchemeBfv,
		LatticeDimension: 4096,
		PlainModulus:     1 << 20,
		SecurityLevel:    fheprogram.SecurityTC128,
	}
}
