package rqcodec

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRoundTripNoLoss(t *testing.T) {
	const k = 10
	const symSize = 4

	rng := rand.New(rand.NewSource(42))
	src := make([]byte, k*symSize)
	rng.Read(src)

	wm, err := NewInterWorkMem(k, DefaultMaxExtra)
	if err != nil {
		t.Fatalf("NewInterWorkMem: %v", err)
	}
	if err := wm.AddIDs(0, k); err != nil {
		t.Fatalf("AddIDs: %v", err)
	}
	prog, err := wm.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	inter, err := prog.Execute(symSize, src)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(inter) != prog.InterSymNum()*symSize {
		t.Fatalf("intermediate block length = %d, want %d", len(inter), prog.InterSymNum()*symSize)
	}

	owm, err := NewOutWorkMem(k, k)
	if err != nil {
		t.Fatalf("NewOutWorkMem: %v", err)
	}
	if err := owm.AddIDs(0, k); err != nil {
		t.Fatalf("AddIDs: %v", err)
	}
	oprog, err := owm.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out, err := oprog.Execute(symSize, inter)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatalf("round trip mismatch: got %x want %x", out, src)
	}
}

func TestRoundTripWithRepairAfterLoss(t *testing.T) {
	const k = 10
	const symSize = 4
	const repairCount = 6

	rng := rand.New(rand.NewSource(7))
	src := make([]byte, k*symSize)
	rng.Read(src)

	encWM, _ := NewInterWorkMem(k, DefaultMaxExtra)
	encWM.AddIDs(0, k)
	encProg, err := encWM.Compile()
	if err != nil {
		t.Fatalf("encoder Compile: %v", err)
	}
	inter, err := encProg.Execute(symSize, src)
	if err != nil {
		t.Fatalf("encoder Execute: %v", err)
	}

	repairWM, _ := NewOutWorkMem(k, repairCount)
	repairWM.AddIDs(k, repairCount)
	repairProg, _ := repairWM.Compile()
	repair, err := repairProg.Execute(symSize, inter)
	if err != nil {
		t.Fatalf("repair Execute: %v", err)
	}

	// Drop symbols 2 and 5, keep everything else, then bring in enough
	// repair symbols to cover the gap.
	available := map[int][]byte{}
	for i := 0; i < k; i++ {
		if i == 2 || i == 5 {
			continue
		}
		available[i] = src[i*symSize : (i+1)*symSize]
	}
	for i := 0; i < repairCount; i++ {
		available[k+i] = repair[i*symSize : (i+1)*symSize]
	}

	decWM, _ := NewInterWorkMem(k, DefaultMaxExtra)
	buf := make([]byte, 0, len(available)*symSize)
	for esi := 0; esi < k+repairCount; esi++ {
		if data, ok := available[esi]; ok {
			decWM.AddIDs(int32(esi), 1)
			buf = append(buf, data...)
		}
	}
	decProg, err := decWM.Compile()
	if err != nil {
		t.Fatalf("decoder Compile: %v", err)
	}
	decInter, err := decProg.Execute(symSize, buf)
	if err != nil {
		t.Fatalf("decoder Execute: %v", err)
	}

	decOutWM, _ := NewOutWorkMem(k, k)
	decOutWM.AddIDs(0, k)
	decOutProg, _ := decOutWM.Compile()
	recovered, err := decOutProg.Execute(symSize, decInter)
	if err != nil {
		t.Fatalf("decoder output Execute: %v", err)
	}

	if !bytes.Equal(recovered, src) {
		t.Fatalf("loss-recovery mismatch: got %x want %x", recovered, src)
	}
}

func TestInterWorkMemRejectsInvalidK(t *testing.T) {
	if _, err := NewInterWorkMem(0, 0); err != ErrDomain {
		t.Fatalf("expected ErrDomain for K=0, got %v", err)
	}
	if _, err := NewInterWorkMem(1<<20, 0); err != ErrDomain {
		t.Fatalf("expected ErrDomain for too-large K, got %v", err)
	}
}

func TestAddIDsReportsMaxReached(t *testing.T) {
	wm, _ := NewInterWorkMem(10, 0)
	if err := wm.AddIDs(0, 20); err != ErrMaxIDsReached {
		t.Fatalf("expected ErrMaxIDsReached, got %v", err)
	}
	if wm.NESI() != 10 {
		t.Fatalf("NESI() = %d, want 10 (truncated to capacity)", wm.NESI())
	}
}

func TestCompileReportsInsufficientIDs(t *testing.T) {
	wm, _ := NewInterWorkMem(10, DefaultMaxExtra)
	wm.AddIDs(0, 3)
	if _, err := wm.Compile(); err != ErrInsufficientIDs {
		t.Fatalf("expected ErrInsufficientIDs, got %v", err)
	}
}

func TestExecuteRejectsShortInput(t *testing.T) {
	wm, _ := NewInterWorkMem(10, DefaultMaxExtra)
	wm.AddIDs(0, 10)
	prog, err := wm.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := prog.Execute(4, make([]byte, 4)); err != ErrNoMem {
		t.Fatalf("expected ErrNoMem for short input, got %v", err)
	}
}
