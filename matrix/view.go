// Package matrix implements the two dense matrix-view abstractions the
// RaptorQ codec is built on: a bit-packed view over GF(2) and a
// byte-per-element view over GF(256). Both share one algebraic surface
// (the View interface below) so the PLUQ factorization and its solves
// in pluq.go are written exactly once and run identically over either
// field, dispatching field-specific addition/multiplication/inversion
// through the view itself.
//
// Grounded on _examples/original_source/algebra/{m2v,m256v,mv_generic}.*,
// which the RFC 6330 reference implementation produces via a textual
// #include template; here the same sharing is expressed with a Go
// interface instead, per the "trait/interface on the element type"
// option in the Design Notes.
package matrix

// View is a rectangular, possibly-aliasing window into caller-owned
// storage. Implementations never allocate on element access; SubView
// and NewSameKind are the only operations that construct new Go values
// (the former aliases the receiver's backing storage, the latter
// allocates a small scratch buffer of matching field/packing).
//
// Every row/column index is 0-based and must satisfy 0 <= idx < NRow()
// (respectively NCol()); out-of-range indices are contract violations
// and implementations panic rather than return an error, mirroring the
// C reference's assert()-based contract.
type View interface {
	NRow() int
	NCol() int

	GetEl(r, c int) byte
	SetEl(r, c int, v byte)

	SwapRows(r1, r2 int)
	SwapCols(c1, c2 int)

	ClearRow(r int)
	MultRow(r int, alpha byte)

	// MultAddRow sets dst row dr += alpha * src row sr, elementwise.
	// src and dst must have the same concrete type and column count.
	MultAddRow(src View, sr int, alpha byte, dr int)

	// MultAddRowFrom behaves like MultAddRow but only touches columns
	// [offs, NCol()).
	MultAddRowFrom(src View, sr, offs int, alpha byte, dr int)

	// MultColFrom scales column c from row offs downward by alpha.
	MultColFrom(c, offs int, alpha byte)

	CopyRow(src View, sr, dr int)
	CopyCol(src View, sc, dc int)
	RowIsZero(r int) bool

	// FieldAdd and FieldMul/FieldInv expose the underlying field's
	// arithmetic so the generic whole-matrix and PLUQ algorithms in
	// this package never need to know which field they're running
	// over.
	FieldAdd(a, b byte) byte
	FieldMul(a, b byte) byte
	FieldInv(v byte) byte

	// SubView returns an aliasing view into the receiver's backing
	// storage. Writes through the subview mutate the parent.
	SubView(rowOffs, colOffs, nr, nc int) View

	// NewSameKind allocates a fresh, independently-backed view with
	// the receiver's field and packing, used for the scratch row/column
	// buffer permutation needs.
	NewSameKind(nRow, nCol int) View
}
