package rfc6330

// degreeTable is the cumulative-frequency table from which Deg derives
// a degree value from a uniform draw v in [0, 2^20).
//
// Grounded on _examples/original_source/rfc6330_alg/tuple.c (static
// const int f[]).
var degreeTable = [31]int{
	0,
	5243,
	529531,
	704294,
	791675,
	844104,
	879057,
	904023,
	922747,
	937311,
	948962,
	958494,
	966438,
	973160,
	978921,
	983914,
	988283,
	992138,
	995565,
	998631,
	1001391,
	1003887,
	1006157,
	1008229,
	1010129,
	1011876,
	1013490,
	1014983,
	1016370,
	1017662,
	1048576,
}

// Deg maps a uniform draw v in [0, 2^20) to a degree in [1, W-2],
// per the cumulative distribution in degreeTable.
func Deg(v, w int) int {
	if v < 0 || v >= 1<<20 {
		panic("rfc6330: Deg argument out of range")
	}
	for d := 1; d < len(degreeTable); d++ {
		if degreeTable[d-1] <= v && v < degreeTable[d] {
			if d <= w-2 {
				return d
			}
			return w - 2
		}
	}
	panic("rfc6330: Deg fell through cumulative table")
}

// Tuple is the (d, a, b, d1, a1, b1) sextuple that determines which
// columns of the LT and PI-HDPC blocks a given source/repair symbol
// touches.
type Tuple struct {
	D, A, B    int
	D1, A1, B1 int
}

// GenerateFromISI derives the tuple for internal symbol index x under
// parameter set p.
//
// Grounded on _examples/original_source/rfc6330_alg/tuple.c
// (tuple_generate_from_ISI).
func GenerateFromISI(x uint32, p Parameters) Tuple {
	a := (53591 + uint32(p.J)*997) | 1
	b := 10267 * uint32(p.J+1)
	y := b + x*a

	v := Rand(y, 0, 1<<20)

	var t Tuple
	t.D = Deg(int(v), p.W)
	t.A = 1 + int(Rand(y, 1, uint32(p.W-1)))
	t.B = int(Rand(y, 2, uint32(p.W)))
	if t.D < 4 {
		t.D1 = 2 + int(Rand(x, 3, 2))
	} else {
		t.D1 = 2
	}
	t.A1 = 1 + int(Rand(x, 4, uint32(p.P1-1)))
	t.B1 = int(Rand(x, 5, uint32(p.P1)))
	return t
}

// GenerateFromESI derives the tuple for encoding symbol index x,
// accounting for the gap between K and Kprime padding symbols.
//
// Grounded on _examples/original_source/rfc6330_alg/tuple.c
// (tuple_generate_from_ESI).
func GenerateFromESI(x uint32, p Parameters) Tuple {
	if x >= uint32(p.K) {
		x += uint32(p.Kprime - p.K)
	}
	return GenerateFromISI(x, p)
}
