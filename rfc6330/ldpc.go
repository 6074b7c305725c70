package rfc6330

import "github.com/go-raptorq/raptorq/matrix"

// GenerateLDPC fills l (S rows by L columns) with the LDPC constraint
// rows for parameter set p: a left block with three set bits per
// column across the first B columns, an S-wide identity block at
// column offset B, and a double diagonal across the final P PI
// columns.
//
// Grounded on _examples/original_source/tvrq/ldpc.c
// (ldpc_generate_mat).
func GenerateLDPC(l matrix.View, p Parameters) {
	if l.NRow() != p.S || l.NCol() != p.L {
		panic("rfc6330: GenerateLDPC shape mismatch")
	}
	matrix.Clear(l)

	for i := 0; i < p.B; i++ {
		a := 1 + i/p.S
		b := i % p.S
		l.SetEl(b, i, 1)
		b = (b + a) % p.S
		l.SetEl(b, i, 1)
		b = (b + a) % p.S
		l.SetEl(b, i, 1)
	}

	for i := 0; i < p.S; i++ {
		l.SetEl(i, i+p.B, 1)
	}

	for i := 0; i < p.S; i++ {
		a := i % p.P
		b := (i + 1) % p.P
		l.SetEl(i, p.W+a, 1)
		l.SetEl(i, p.W+b, 1)
	}
}
