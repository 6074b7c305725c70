package rfc6330

import "github.com/go-raptorq/raptorq/matrix"

// GenerateLT fills m (len(isis) rows by L columns) with the LT
// constraint row for each internal symbol index in isis: each row's
// tuple picks an initial LT column and steps by a mod W for d-1
// further hits, then an initial PI column (rejection-sampled below P)
// and steps by a1 mod P1, again rejection-sampled, for d1-1 further
// hits.
//
// Grounded on _examples/original_source/tvrq/lt.c (lt_generate_mat).
func GenerateLT(m matrix.View, p Parameters, isis []uint32) {
	if m.NRow() != len(isis) || m.NCol() != p.L {
		panic("rfc6330: GenerateLT shape mismatch")
	}
	matrix.Clear(m)

	for i, isi := range isis {
		t := GenerateFromISI(isi, p)

		b := t.B
		m.SetEl(i, b, 1)
		for j := 1; j < t.D; j++ {
			b = (b + t.A) % p.W
			m.SetEl(i, b, 1)
		}

		b1 := t.B1
		for b1 >= p.P {
			b1 = (b1 + t.A1) % p.P1
		}
		m.SetEl(i, p.W+b1, 1)
		for j := 1; j < t.D1; j++ {
			b1 = (b1 + t.A1) % p.P1
			for b1 >= p.P {
				b1 = (b1 + t.A1) % p.P1
			}
			m.SetEl(i, p.W+b1, 1)
		}
	}
}
