package matrix

import "github.com/go-raptorq/raptorq/gf256"

// Octet is a dense, row-major matrix view over GF(256): one byte per
// element, row stride possibly larger than the column count so the
// view can alias a wider parent.
//
// Grounded on _examples/original_source/algebra/m256v.c.
type Octet struct {
	nRow, nCol int
	stride     int
	storage    []byte
	base       int
}

// NewOctet constructs a view of shape (nRow, nCol) backed by storage,
// with row stride nCol (no slack columns). storage must have length at
// least nRow*nCol.
func NewOctet(nRow, nCol int, storage []byte) *Octet {
	if len(storage) < nRow*nCol {
		panic("matrix: storage too small for Octet view")
	}
	return &Octet{nRow: nRow, nCol: nCol, stride: nCol, storage: storage}
}

// OctetStorageLen returns the number of bytes NewOctet requires for a
// view of the given shape.
func OctetStorageLen(nRow, nCol int) int {
	return nRow * nCol
}

func (m *Octet) NRow() int { return m.nRow }
func (m *Octet) NCol() int { return m.nCol }

func (m *Octet) offs(r, c int) int {
	if r < 0 || r >= m.nRow {
		panic("matrix: row index out of range")
	}
	if c < 0 || c > m.nCol {
		panic("matrix: column index out of range")
	}
	return m.base + r*m.stride + c
}

func (m *Octet) GetEl(r, c int) byte {
	if c >= m.nCol {
		panic("matrix: column index out of range")
	}
	return m.storage[m.offs(r, c)]
}

func (m *Octet) SetEl(r, c int, v byte) {
	if c >= m.nCol {
		panic("matrix: column index out of range")
	}
	m.storage[m.offs(r, c)] = v
}

func (m *Octet) SwapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	o1, o2 := m.offs(r1, 0), m.offs(r2, 0)
	for i := 0; i < m.nCol; i++ {
		m.storage[o1+i], m.storage[o2+i] = m.storage[o2+i], m.storage[o1+i]
	}
}

func (m *Octet) SwapCols(c1, c2 int) {
	if c1 == c2 {
		return
	}
	for r := 0; r < m.nRow; r++ {
		o1, o2 := m.offs(r, c1), m.offs(r, c2)
		m.storage[o1], m.storage[o2] = m.storage[o2], m.storage[o1]
	}
}

func (m *Octet) ClearRow(r int) {
	o := m.offs(r, 0)
	row := m.storage[o : o+m.nCol]
	for i := range row {
		row[i] = 0
	}
}

func (m *Octet) MultRow(r int, alpha byte) {
	if alpha == 0 {
		m.ClearRow(r)
		return
	}
	logAlpha := gf256.Log[alpha]
	o := m.offs(r, 0)
	for i := 0; i < m.nCol; i++ {
		v := m.storage[o+i]
		if v != 0 {
			m.storage[o+i] = gf256.Exp[int(gf256.Log[v])+int(logAlpha)]
		}
	}
}

func (m *Octet) MultAddRow(src View, sr int, alpha byte, dr int) {
	m.MultAddRowFrom(src, sr, 0, alpha, dr)
}

func (m *Octet) MultAddRowFrom(src View, sr, offs int, alpha byte, dr int) {
	s, ok := src.(*Octet)
	if !ok {
		panic("matrix: MultAddRowFrom requires another *Octet")
	}
	if s.nCol != m.nCol {
		panic("matrix: column count mismatch")
	}
	if alpha == 0 {
		return
	}
	so := s.offs(sr, offs)
	to := m.offs(dr, offs)
	n := m.nCol - offs
	if alpha == 1 {
		for i := 0; i < n; i++ {
			m.storage[to+i] ^= s.storage[so+i]
		}
		return
	}
	logAlpha := gf256.Log[alpha]
	for i := 0; i < n; i++ {
		v := s.storage[so+i]
		if v != 0 {
			m.storage[to+i] ^= gf256.Exp[int(gf256.Log[v])+int(logAlpha)]
		}
	}
}

func (m *Octet) MultColFrom(c, offs int, alpha byte) {
	if alpha != 0 {
		logAlpha := gf256.Log[alpha]
		for r := offs; r < m.nRow; r++ {
			o := m.offs(r, c)
			if v := m.storage[o]; v != 0 {
				m.storage[o] = gf256.Exp[int(gf256.Log[v])+int(logAlpha)]
			}
		}
		return
	}
	for r := offs; r < m.nRow; r++ {
		m.storage[m.offs(r, c)] = 0
	}
}

func (m *Octet) CopyRow(src View, sr, dr int) {
	s, ok := src.(*Octet)
	if !ok {
		panic("matrix: CopyRow requires another *Octet")
	}
	if s.nCol != m.nCol {
		panic("matrix: column count mismatch")
	}
	copy(m.storage[m.offs(dr, 0):m.offs(dr, 0)+m.nCol], s.storage[s.offs(sr, 0):s.offs(sr, 0)+s.nCol])
}

func (m *Octet) CopyCol(src View, sc, dc int) {
	s, ok := src.(*Octet)
	if !ok {
		panic("matrix: CopyCol requires another *Octet")
	}
	if s.nRow != m.nRow {
		panic("matrix: row count mismatch")
	}
	for r := 0; r < m.nRow; r++ {
		m.storage[m.offs(r, dc)] = s.storage[s.offs(r, sc)]
	}
}

func (m *Octet) RowIsZero(r int) bool {
	o := m.offs(r, 0)
	for i := 0; i < m.nCol; i++ {
		if m.storage[o+i] != 0 {
			return false
		}
	}
	return true
}

func (m *Octet) FieldAdd(a, b byte) byte { return gf256.Add(a, b) }
func (m *Octet) FieldMul(a, b byte) byte { return gf256.Mul(a, b) }
func (m *Octet) FieldInv(v byte) byte    { return gf256.Inv(v) }

func (m *Octet) SubView(rowOffs, colOffs, nr, nc int) View {
	if rowOffs < 0 || rowOffs+nr > m.nRow {
		panic("matrix: row subview out of range")
	}
	if colOffs < 0 || colOffs+nc > m.nCol {
		panic("matrix: column subview out of range")
	}
	return &Octet{
		nRow: nr, nCol: nc, stride: m.stride,
		storage: m.storage, base: m.base + rowOffs*m.stride + colOffs,
	}
}

func (m *Octet) NewSameKind(nRow, nCol int) View {
	return NewOctet(nRow, nCol, make([]byte, nRow*nCol))
}
