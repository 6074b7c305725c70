package matrix

import (
	"math/rand"
	"testing"
)

func randOctet(rng *rand.Rand, nr, nc int) *Octet {
	m := NewOctet(nr, nc, make([]byte, nr*nc))
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			m.SetEl(r, c, byte(rng.Intn(256)))
		}
	}
	return m
}

func cloneOctet(m *Octet) *Octet {
	out := NewOctet(m.NRow(), m.NCol(), make([]byte, m.NRow()*m.NCol()))
	Copy(out, m)
	return out
}

func TestOctetPermuteRowsFromConvention(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := randOctet(rng, 6, 4)
	orig := cloneOctet(m)

	perm := []int{3, 1, 4, 0, 5, 2}
	PermuteRows(m, append([]int(nil), perm...))

	for i, p := range perm {
		for c := 0; c < m.NCol(); c++ {
			if m.GetEl(i, c) != orig.GetEl(p, c) {
				t.Fatalf("row %d col %d: got %d want %d", i, c, m.GetEl(i, c), orig.GetEl(p, c))
			}
		}
	}
}

func TestOctetPermuteColsFromConvention(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randOctet(rng, 4, 6)
	orig := cloneOctet(m)

	perm := []int{3, 1, 4, 0, 5, 2}
	PermuteCols(m, append([]int(nil), perm...))

	for r := 0; r < m.NRow(); r++ {
		for i, p := range perm {
			if m.GetEl(r, i) != orig.GetEl(r, p) {
				t.Fatalf("row %d col %d: got %d want %d", r, i, m.GetEl(r, i), orig.GetEl(r, p))
			}
		}
	}
}

func TestOctetLUDecompFullRankSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := 8
	for trial := 0; trial < 20; trial++ {
		m := randOctet(rng, n, n)
		orig := cloneOctet(m)
		d := LUDecompInplace(m)
		if d.Rank != n {
			continue // singular draw, skip
		}
		// Reconstruct L*U via LUMult (which applies L to its x
		// operand, here the upper-triangular U extracted from m) and
		// compare against the row/col-permuted original.
		u := NewOctet(n, n, make([]byte, n*n))
		for r := 0; r < n; r++ {
			for c := r; c < n; c++ {
				u.SetEl(r, c, m.GetEl(r, c))
			}
		}
		recon := NewOctet(n, n, make([]byte, n*n))
		LUMult(recon, m, d, u)
		permuted := cloneOctet(orig)
		PermuteRows(permuted, append([]int(nil), d.RowPerm...))
		PermuteCols(permuted, append([]int(nil), d.ColPerm...))
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if recon.GetEl(r, c) != permuted.GetEl(r, c) {
					t.Fatalf("trial %d: reconstruction mismatch at (%d,%d): got %d want %d",
						trial, r, c, recon.GetEl(r, c), permuted.GetEl(r, c))
				}
			}
		}
		return
	}
	t.Skip("no full-rank draw in 20 trials")
}

func TestOctetLUDecompFullRankColPermIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	nr, nc := 8, 5
	for trial := 0; trial < 30; trial++ {
		m := randOctet(rng, nr, nc)
		d := LUDecompInplace(m)
		if d.Rank != nc {
			continue // not full column rank on this draw, retry
		}
		for i, c := range d.ColPerm {
			if c != i {
				t.Fatalf("trial %d: full-rank m>=n decomposition permuted columns: ColPerm[%d] = %d, want %d",
					trial, i, c, i)
			}
		}
		return
	}
	t.Skip("no full-column-rank draw in 30 trials")
}

func TestOctetLUInvmultSolvesIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 6
	for trial := 0; trial < 30; trial++ {
		m := randOctet(rng, n, n)
		d := LUDecompInplace(m)
		if d.Rank != n {
			continue
		}
		x := NewOctet(n, n, make([]byte, n*n))
		for i := 0; i < n; i++ {
			x.SetEl(i, i, 1)
		}
		out := NewOctet(n, n, make([]byte, n*n))
		LUInvmult(out, m, d, x)
		LMultInplace(m, d, out)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				want := byte(0)
				if r == c {
					want = 1
				}
				if out.GetEl(r, c) != want {
					t.Fatalf("L*(L^-1 I) != I at (%d,%d): got %d", r, c, out.GetEl(r, c))
				}
			}
		}
		return
	}
	t.Skip("no full-rank draw in 30 trials")
}

func TestBinarySwapAndMultAddRow(t *testing.T) {
	m := NewBinary(3, 70)
	m.SetEl(0, 5, 1)
	m.SetEl(0, 69, 1)
	m.SetEl(1, 5, 1)

	m.MultAddRowFrom(m, 0, 0, 1, 1)
	if m.GetEl(1, 5) != 0 {
		t.Fatalf("expected bit cleared by XOR, got set")
	}
	if m.GetEl(1, 69) != 1 {
		t.Fatalf("expected bit 69 set after XOR, got clear")
	}

	m.SwapRows(0, 2)
	if m.GetEl(2, 69) != 1 {
		t.Fatalf("expected swapped row to carry bit 69")
	}
	if !m.RowIsZero(0) {
		t.Fatalf("expected row 0 zero after swap with originally-zero row 2")
	}
}

func TestBinaryRowIsZeroTailMasking(t *testing.T) {
	m := NewBinary(1, 65)
	if !m.RowIsZero(0) {
		t.Fatalf("fresh row should be zero")
	}
	m.SetEl(0, 64, 1)
	if m.RowIsZero(0) {
		t.Fatalf("row with bit 64 set should not be zero")
	}
}

func TestSubViewAliasesParent(t *testing.T) {
	parent := NewOctet(4, 4, make([]byte, 16))
	sub := parent.SubView(1, 1, 2, 2)
	sub.SetEl(0, 0, 42)
	if parent.GetEl(1, 1) != 42 {
		t.Fatalf("subview write did not alias parent")
	}
}
