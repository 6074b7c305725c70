package rqcodec

import (
	"github.com/go-raptorq/raptorq/matrix"
	"github.com/go-raptorq/raptorq/rfc6330"
	"github.com/go-raptorq/raptorq/rqlog"
)

// InterWorkMem accumulates received-symbol ids for a single source
// block before Compile builds the decoding schedule.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterWorkMem_, RqInterInit, RqInterAddIds).
type InterWorkMem struct {
	params rfc6330.Parameters
	esis   []uint32
	esiMax int
	log    rqlog.Logger
}

// SetLogger attaches a logger to w; by default InterWorkMem logs
// nothing.
func (w *InterWorkMem) SetLogger(l rqlog.Logger) { w.log = l }

func (w *InterWorkMem) logger() rqlog.Logger {
	if w.log == nil {
		return rqlog.Discard
	}
	return w.log
}

// InterMemSizes reports the byte sizes a caller-managed-memory port of
// this package would need for InterWorkMem and InterProgram at a given
// K and extra-id allowance, plus the resulting intermediate symbol
// count. Present for parity with the ported C API; NewInterWorkMem
// does not require calling this first.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterGetMemSizes).
func InterMemSizes(maxK, maxExtra int) (workMemSize, progMemSize, interSymNum int, err error) {
	p := rfc6330.ParametersFor(maxK)
	if p.Invalid() {
		return 0, 0, 0, ErrDomain
	}
	maxISICount := maxExtra + p.Kprime
	const esiHeader = 24
	const progHeader = 24
	workMemSize = esiHeader + maxISICount*4
	nRows := maxISICount + p.S + p.H
	progMemSize = progHeader + nRows*4 + nRows*p.L
	interSymNum = p.L
	return
}

// NewInterWorkMem creates work memory for a source block of size k,
// sized to hold up to k+maxExtra received symbol ids.
//
// Grounded on _examples/original_source/api/tvrq_api.c (RqInterInit).
func NewInterWorkMem(k, maxExtra int) (*InterWorkMem, error) {
	p := rfc6330.ParametersFor(k)
	if p.Invalid() {
		return nil, ErrDomain
	}
	return &InterWorkMem{
		params: p,
		esis:   make([]uint32, 0, k+maxExtra),
		esiMax: k + maxExtra,
	}, nil
}

// AddIDs records count consecutive encoding symbol ids starting at
// begin. If adding all of them would exceed the work memory's
// capacity, as many as fit are recorded and ErrMaxIDsReached is
// returned.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterAddIds).
func (w *InterWorkMem) AddIDs(begin int32, count int32) error {
	var err error
	if len(w.esis)+int(count) > w.esiMax {
		count = int32(w.esiMax - len(w.esis))
		err = ErrMaxIDsReached
		w.logger().Errorf("maximum number of ESIs reached, truncating add to %d", count)
	}
	for i := int32(0); i < count; i++ {
		w.esis = append(w.esis, uint32(begin+i))
	}
	return err
}

// NESI returns the number of symbol ids recorded so far.
func (w *InterWorkMem) NESI() int { return len(w.esis) }

// InterProgram is the compiled decoding schedule produced from an
// InterWorkMem: a factored constraint matrix and the row permutation
// that maps constraint rows back to received symbols (or to zero, for
// padding/LDPC/HDPC rows).
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterProgram_).
type InterProgram struct {
	params  rfc6330.Parameters
	lu      *matrix.Octet
	decomp  matrix.Decomp
	nESI    int
}

// Compile builds the constraint matrix for the recorded symbol ids and
// factors it. It returns ErrInsufficientIDs if the recorded ids do not
// provide a full-rank set of constraints.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterCompile).
func (w *InterWorkMem) Compile() (*InterProgram, error) {
	p := w.params
	nRows, nCols := rfc6330.ConstraintDim(p, len(w.esis))
	lu := matrix.NewOctet(nRows, nCols, make([]byte, nRows*nCols))
	rfc6330.GenerateConstraintMatrix(lu, p, w.esis)

	d := matrix.LUDecompInplace(lu)
	if d.Rank < nCols {
		w.logger().Errorf("insufficient ids to decode: rank %d of %d", d.Rank, nCols)
		return nil, ErrInsufficientIDs
	}
	// The reference decomposition never permutes columns when the
	// matrix achieves full rank; this holds here too, since
	// LUDecompInplace searches every row of column i at or below the
	// diagonal before moving to a later column, and at full column rank
	// column i always has a nonzero element there.
	for i, c := range d.ColPerm {
		if c != i {
			panic("rqcodec: unexpected column permutation in full-rank decomposition")
		}
	}

	return &InterProgram{
		params: p,
		lu:     lu.SubView(0, 0, d.Rank, d.Rank).(*matrix.Octet),
		decomp: matrix.Decomp{Rank: d.Rank, RowPerm: d.RowPerm, ColPerm: d.ColPerm},
		nESI:   len(w.esis),
	}, nil
}

// InterSymNum returns L, the number of intermediate symbols Execute
// produces.
func (p *InterProgram) InterSymNum() int { return p.params.L }

// Execute solves for the intermediate block given the received symbol
// data, laid out as nESI consecutive symbols of symSize bytes each
// (inSym must have length exactly NESI()*symSize, where NESI is the
// symbol count Compile was built from). It returns the L-symbol
// intermediate block, symSize bytes per symbol.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqInterExecute). The reference implementation comments out an
// input-size check on pcInSymMem; this port performs it, since a
// short input buffer is exactly the kind of caller error the
// buffer-sized API is meant to catch early rather than read out of
// bounds.
func (p *InterProgram) Execute(symSize int, inSym []byte) ([]byte, error) {
	if len(inSym) < p.nESI*symSize {
		return nil, ErrNoMem
	}

	ibStorage := make([]byte, p.decomp.Rank*symSize)
	ib := matrix.NewOctet(p.decomp.Rank, symSize, ibStorage)
	y := matrix.NewOctet(p.nESI, symSize, inSym[:p.nESI*symSize])

	for i := 0; i < p.decomp.Rank; i++ {
		l := p.decomp.RowPerm[i]
		if l >= p.nESI {
			ib.ClearRow(i)
		} else {
			ib.CopyRow(y, l, i)
		}
	}

	matrix.LUInvmultInplace(p.lu, p.decomp, ib)
	return ibStorage, nil
}
