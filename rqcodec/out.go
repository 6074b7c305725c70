package rqcodec

import (
	"github.com/go-raptorq/raptorq/matrix"
	"github.com/go-raptorq/raptorq/rfc6330"
)

// OutWorkMem accumulates the encoding symbol ids a caller wants
// generated from the intermediate block.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqOutWorkMem_, RqOutInit, RqOutAddIds).
type OutWorkMem struct {
	params rfc6330.Parameters
	esis   []uint32
	esiMax int
}

// OutMemSizes reports the byte sizes a caller-managed-memory port of
// this package would need for OutWorkMem and OutProgram holding up to
// nOutSymNum symbol ids. Present for parity with the ported C API.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqOutGetMemSizes).
func OutMemSizes(nOutSymNum int) (workMemSize, progMemSize int) {
	const header = 24
	sz := header + nOutSymNum*4
	return sz, sz
}

// NewOutWorkMem creates work memory for requesting output symbols from
// a source block of size k, able to hold up to esiCapacity ids.
//
// Grounded on _examples/original_source/api/tvrq_api.c (RqOutInit).
func NewOutWorkMem(k int, esiCapacity int) (*OutWorkMem, error) {
	p := rfc6330.ParametersFor(k)
	if p.Invalid() {
		return nil, ErrDomain
	}
	return &OutWorkMem{params: p, esis: make([]uint32, 0, esiCapacity), esiMax: esiCapacity}, nil
}

// AddIDs records count consecutive encoding symbol ids starting at
// begin, truncating and returning ErrMaxIDsReached if the work
// memory's capacity would be exceeded.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqOutAddIds).
func (w *OutWorkMem) AddIDs(begin int32, count int32) error {
	var err error
	if len(w.esis)+int(count) > w.esiMax {
		count = int32(w.esiMax - len(w.esis))
		err = ErrMaxIDsReached
	}
	for i := int32(0); i < count; i++ {
		w.esis = append(w.esis, uint32(begin+i))
	}
	return err
}

// NESI returns the number of symbol ids recorded so far.
func (w *OutWorkMem) NESI() int { return len(w.esis) }

// OutProgram is the compiled symbol-id list an OutWorkMem produces:
// Compile here is a pure snapshot (no matrix work happens until
// Execute) and never fails: the ids are held in a Go slice, so there
// is no caller-sized destination buffer to check the way the C ABI's
// fixed-size struct does.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqOutProgram_, RqOutCompile). The reference's RqOutCompile rejects
// when the destination buffer is larger than needed (`sz <
// nOutProgMemSize`), the opposite sense of RqInterCompile's check;
// this port has no buffer-sized Compile, and the size checks it does
// make (in both Execute methods) reject only when the buffer is
// smaller than required.
type OutProgram struct {
	params rfc6330.Parameters
	esis   []uint32
}

// Compile snapshots the recorded symbol ids into an OutProgram.
func (w *OutWorkMem) Compile() (*OutProgram, error) {
	esis := make([]uint32, len(w.esis))
	copy(esis, w.esis)
	return &OutProgram{params: w.params, esis: esis}, nil
}

// NESI returns the number of output symbols Execute will produce.
func (p *OutProgram) NESI() int { return len(p.esis) }

// Execute generates the requested output symbols from the intermediate
// block, interSym holding at least L symbols of symSize bytes each
// (only the first L are read). It
// returns NESI() consecutive symbols of symSize bytes each.
//
// Grounded on _examples/original_source/api/tvrq_api.c
// (RqOutExecute).
func (p *OutProgram) Execute(symSize int, interSym []byte) ([]byte, error) {
	if len(interSym) < p.params.L*symSize {
		return nil, ErrNoMem
	}

	i := matrix.NewOctet(p.params.L, symSize, interSym[:p.params.L*symSize])
	outStorage := make([]byte, len(p.esis)*symSize)
	o := matrix.NewOctet(len(p.esis), symSize, outStorage)

	for row, esi := range p.esis {
		t := rfc6330.GenerateFromESI(esi, p.params)

		o.CopyRow(i, t.B, row)
		b := t.B
		for j := 1; j < t.D; j++ {
			b = (b + t.A) % p.params.W
			o.MultAddRow(i, b, 1, row)
		}

		b1 := t.B1
		for b1 >= p.params.P {
			b1 = (b1 + t.A1) % p.params.P1
		}
		o.MultAddRow(i, p.params.W+b1, 1, row)
		for j := 1; j < t.D1; j++ {
			b1 = (b1 + t.A1) % p.params.P1
			for b1 >= p.params.P {
				b1 = (b1 + t.A1) % p.params.P1
			}
			o.MultAddRow(i, p.params.W+b1, 1, row)
		}
	}

	return outStorage, nil
}
