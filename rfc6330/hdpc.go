package rfc6330

import (
	"github.com/go-raptorq/raptorq/gf256"
	"github.com/go-raptorq/raptorq/matrix"
)

// GenerateHDPCSpecExact fills h (H rows by L columns) with the HDPC
// constraint rows by building the MT and GAMMA matrices RFC 6330
// §5.3.3.3 defines and multiplying them, then appending an H-by-H
// identity block.
//
// Grounded on _examples/original_source/tvrq/hdpc.c
// (hdpc_generate_mat_specexact).
func GenerateHDPCSpecExact(h matrix.View, p Parameters) {
	if h.NRow() != p.H || h.NCol() != p.L {
		panic("rfc6330: GenerateHDPCSpecExact shape mismatch")
	}

	d := p.Kprime + p.S
	mt := matrix.NewOctet(p.H, d, make([]byte, p.H*d))
	for j := 0; j < d-1; j++ {
		a := int(Rand(uint32(j+1), 6, uint32(p.H)))
		b := (a + int(Rand(uint32(j+1), 7, uint32(p.H-1))) + 1) % p.H
		mt.SetEl(a, j, 1)
		mt.SetEl(b, j, 1)
	}
	val := byte(1)
	for j := 0; j < p.H; j++ {
		mt.SetEl(j, d-1, val)
		val = gf256.Mul(val, 2)
	}

	gamma := matrix.NewOctet(d, d, make([]byte, d*d))
	val = 1
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			gamma.SetEl(j, j-i, val)
		}
		val = gf256.Mul(val, 2)
	}

	gHDPC := h.SubView(0, 0, p.H, d)
	matrix.Mul(gHDPC, mt, gamma)

	iH := h.SubView(0, d, p.H, p.H)
	matrix.Clear(iH)
	for i := 0; i < p.H; i++ {
		iH.SetEl(i, i, 1)
	}
}

// GenerateHDPCFaster fills h with the same HDPC rows as
// GenerateHDPCSpecExact but without materializing MT and GAMMA: each
// column of G_HDPC is derived from the next by doubling (multiplying
// by the GF(256) generator) and flipping two Rand-selected rows.
//
// Grounded on _examples/original_source/tvrq/hdpc.c
// (hdpc_generate_mat_faster).
func GenerateHDPCFaster(h matrix.View, p Parameters) {
	if h.NRow() != p.H || h.NCol() != p.L {
		panic("rfc6330: GenerateHDPCFaster shape mismatch")
	}

	d := p.Kprime + p.S
	gHDPC := h.SubView(0, 0, p.H, d)
	matrix.Clear(gHDPC)

	val := byte(1)
	for j := 0; j < p.H; j++ {
		gHDPC.SetEl(j, d-1, val)
		val = gf256.Mul(val, 2)
	}

	for j := d - 2; j >= 0; j-- {
		for i := 0; i < p.H; i++ {
			gHDPC.SetEl(i, j, gf256.Mul(2, gHDPC.GetEl(i, j+1)))
		}
		a := int(Rand(uint32(j+1), 6, uint32(p.H)))
		gHDPC.SetEl(a, j, gf256.Add(1, gHDPC.GetEl(a, j)))
		a = (a + int(Rand(uint32(j+1), 7, uint32(p.H-1))) + 1) % p.H
		gHDPC.SetEl(a, j, gf256.Add(1, gHDPC.GetEl(a, j)))
	}

	iH := h.SubView(0, d, p.H, p.H)
	matrix.Clear(iH)
	for i := 0; i < p.H; i++ {
		iH.SetEl(i, i, 1)
	}
}

// GenerateHDPC is the HDPC constructor used by the rest of this
// package: the faster variant, which produces the same rows as
// GenerateHDPCSpecExact without the intermediate MT/GAMMA allocation.
func GenerateHDPC(h matrix.View, p Parameters) {
	GenerateHDPCFaster(h, p)
}
