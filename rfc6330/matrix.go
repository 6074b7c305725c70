package rfc6330

import "github.com/go-raptorq/raptorq/matrix"

// ConstraintDim returns the row and column counts of the constraint
// matrix A for parameter set p given nESIs received encoding symbols:
// one row per received symbol, plus (Kprime-K) padding rows, plus S
// LDPC rows, plus H HDPC rows; L columns always.
//
// Grounded on _examples/original_source/tvrq/rq_matrix.c
// (rq_matrix_get_dim).
func ConstraintDim(p Parameters, nESIs int) (nRows, nCols int) {
	nRows = nESIs + (p.Kprime - p.K) + p.S + p.H
	nCols = p.L
	return
}

// GenerateConstraintMatrix fills a (ConstraintDim(p, len(esis)) shape)
// with the full constraint matrix: LT rows for the given ESIs plus the
// Kprime-K padding ISIs, then S LDPC rows, then H HDPC rows.
//
// Grounded on _examples/original_source/tvrq/rq_matrix.c
// (rq_matrix_generate).
func GenerateConstraintMatrix(a matrix.View, p Parameters, esis []uint32) {
	nRows, nCols := ConstraintDim(p, len(esis))
	if a.NRow() != nRows || a.NCol() != nCols {
		panic("rfc6330: GenerateConstraintMatrix shape mismatch")
	}

	nPad := p.Kprime - p.K
	nISIs := len(esis) + nPad
	isis := make([]uint32, nISIs)
	for i, esi := range esis {
		isi := esi
		if esi >= uint32(p.K) {
			isi += uint32(nPad)
		}
		isis[i] = isi
	}
	for i := 0; i < nPad; i++ {
		isis[len(esis)+i] = uint32(p.K + i)
	}

	rowOffs := 0
	lt := a.SubView(rowOffs, 0, nISIs, p.L)
	GenerateLT(lt, p, isis)
	rowOffs += nISIs

	ldpc := a.SubView(rowOffs, 0, p.S, p.L)
	GenerateLDPC(ldpc, p)
	rowOffs += p.S

	hdpc := a.SubView(rowOffs, 0, p.H, p.L)
	GenerateHDPC(hdpc, p)
	rowOffs += p.H

	if rowOffs != nRows {
		panic("rfc6330: GenerateConstraintMatrix row accounting error")
	}
}
