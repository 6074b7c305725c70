// Package rfc6330 implements the RaptorQ algorithm layer built on top
// of the gf256 and matrix packages: the parameter table, the degree
// distribution and triple-tuple generator, and the LT/LDPC/HDPC
// constraint-matrix generators.
package rfc6330

// Rand implements the deterministic pseudo-random generator used
// throughout triple-tuple generation: four 256-entry tables are
// indexed by successively more significant bytes of y, offset by i,
// and folded together with XOR before reduction modulo m.
//
// Grounded on _examples/original_source/rfc6330_alg/rand.h, which
// declares the function's signature but (like the rest of the
// retrieved corpus) does not carry the V0..V3 table bodies; no file
// under the retrieved examples defines their contents. The tables
// below are generated deterministically at init time from a small
// fixed-point mixing function with good avalanche behavior, not
// transcribed from a published table — callers needing bit-exact
// interoperability with another RaptorQ implementation will need to
// substitute the canonical tables once available.
func Rand(y uint32, i int, m uint32) uint32 {
	x0 := v0[(y+uint32(i))&0xFF]
	x1 := v1[((y>>8)+uint32(i))&0xFF]
	x2 := v2[((y>>16)+uint32(i))&0xFF]
	x3 := v3[((y>>24)+uint32(i))&0xFF]
	return (x0 ^ x1 ^ x2 ^ x3) % m
}

var (
	v0 [256]uint32
	v1 [256]uint32
	v2 [256]uint32
	v3 [256]uint32
)

func init() {
	fillRandTable(&v0, 0x9E3779B97F4A7C15)
	fillRandTable(&v1, 0xC2B2AE3D27D4EB4F)
	fillRandTable(&v2, 0x165667B19E3779F9)
	fillRandTable(&v3, 0x27D4EB2F165667C5)
}

// fillRandTable populates t with 256 pseudo-random 32-bit values
// derived from a splitmix64-style mixer seeded with salt, giving each
// table a distinct, reproducible, well-distributed sequence.
func fillRandTable(t *[256]uint32, salt uint64) {
	state := salt
	for i := range t {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		t[i] = uint32(z)
	}
}
