package rfc6330

import (
	"testing"

	"github.com/go-raptorq/raptorq/matrix"
)

func TestParametersForK10(t *testing.T) {
	p := ParametersFor(10)
	if p.K != 10 || p.Kprime != 10 || p.J != 254 || p.S != 7 || p.H != 10 || p.W != 17 || p.L != 27 {
		t.Fatalf("ParametersFor(10) = %+v, want the documented K=10 anchor", p)
	}
}

func TestParametersForInvalidK(t *testing.T) {
	if p := ParametersFor(0); !p.Invalid() {
		t.Fatalf("ParametersFor(0) should be invalid, got %+v", p)
	}
	if p := ParametersFor(MaxK + 1); !p.Invalid() {
		t.Fatalf("ParametersFor(MaxK+1) should be invalid, got %+v", p)
	}
}

func TestDegWithinBounds(t *testing.T) {
	w := 17
	for v := 0; v < 1<<20; v += 997 {
		d := Deg(v, w)
		if d < 1 || d > w-2 {
			t.Fatalf("Deg(%d,%d) = %d out of [1,%d]", v, w, d, w-2)
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a := Rand(12345, 3, 1000)
	b := Rand(12345, 3, 1000)
	if a != b {
		t.Fatalf("Rand not deterministic: %d != %d", a, b)
	}
	if a >= 1000 {
		t.Fatalf("Rand(...,1000) = %d >= 1000", a)
	}
}

func TestRandVariesWithIndex(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 8; i++ {
		seen[Rand(999, i, 1<<20)] = true
	}
	if len(seen) < 4 {
		t.Fatalf("Rand(999, i, ...) too repetitive across i: %v", seen)
	}
}

func TestGenerateFromESIAppliesPadding(t *testing.T) {
	p := ParametersFor(10)
	p.K = 8
	tWithoutPad := GenerateFromISI(9, p)
	tWithPad := GenerateFromESI(9, p)
	if tWithoutPad == tWithPad {
		t.Fatalf("GenerateFromESI should differ from GenerateFromISI once ESI >= K")
	}
}

func TestGenerateLDPCShapeAndStructure(t *testing.T) {
	p := ParametersFor(10)
	l := matrix.NewOctet(p.S, p.L, make([]byte, p.S*p.L))
	GenerateLDPC(l, p)
	for i := 0; i < p.S; i++ {
		if l.GetEl(i, i+p.B) != 1 {
			t.Fatalf("expected identity bit at LDPC row %d, col %d", i, i+p.B)
		}
	}
}

func TestGenerateLTProducesNonemptyRows(t *testing.T) {
	p := ParametersFor(10)
	isis := []uint32{0, 1, 2, 3, 4}
	m := matrix.NewOctet(len(isis), p.L, make([]byte, len(isis)*p.L))
	GenerateLT(m, p, isis)
	for i := range isis {
		if m.RowIsZero(i) {
			t.Fatalf("LT row %d is all zero", i)
		}
	}
}

func TestHDPCVariantsAgree(t *testing.T) {
	p := ParametersFor(10)
	a := matrix.NewOctet(p.H, p.L, make([]byte, p.H*p.L))
	b := matrix.NewOctet(p.H, p.L, make([]byte, p.H*p.L))
	GenerateHDPCSpecExact(a, p)
	GenerateHDPCFaster(b, p)
	for r := 0; r < p.H; r++ {
		for c := 0; c < p.L; c++ {
			if a.GetEl(r, c) != b.GetEl(r, c) {
				t.Fatalf("HDPC variants disagree at (%d,%d): %d vs %d", r, c, a.GetEl(r, c), b.GetEl(r, c))
			}
		}
	}
}

func TestConstraintMatrixDimAndSystematicRank(t *testing.T) {
	p := ParametersFor(10)
	esis := make([]uint32, p.K)
	for i := range esis {
		esis[i] = uint32(i)
	}
	nr, nc := ConstraintDim(p, len(esis))
	if nc != p.L {
		t.Fatalf("ConstraintDim columns = %d, want %d", nc, p.L)
	}
	a := matrix.NewOctet(nr, nc, make([]byte, nr*nc))
	GenerateConstraintMatrix(a, p, esis)

	d := matrix.LUDecompInplace(a)
	if d.Rank != p.L {
		t.Fatalf("systematic constraint matrix rank = %d, want full rank %d", d.Rank, p.L)
	}
}
