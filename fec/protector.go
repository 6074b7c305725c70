// Package fec provides a uniform, packet-oriented convenience layer
// over the lower-level codecs this module implements and imports:
// Reed-Solomon (github.com/klauspost/reedsolomon) and the rqcodec
// RaptorQ pipeline. FECProtector lets a caller pick a scheme without
// committing call sites to its particular Encode/Decode shape.
package fec

// Packet is a single shard of data: a source symbol, a parity shard,
// or a RaptorQ repair symbol, depending on which protector produced
// it. A nil Packet denotes an erasure at Decode time.
type Packet []byte

// FECAlgorithmType names a concrete FECProtector implementation.
type FECAlgorithmType int

const (
	ReedSolomon FECAlgorithmType = iota
	RaptorQ
)

func (t FECAlgorithmType) String() string {
	switch t {
	case ReedSolomon:
		return "ReedSolomon"
	case RaptorQ:
		return "RaptorQ"
	default:
		return "unknown"
	}
}

// FECProtector turns a block of source packets into a protected set
// (Encode) and recovers the source packets from a possibly-incomplete
// received set (Decode).
type FECProtector interface {
	Algorithm() FECAlgorithmType
	NumDataShards() int
	NumParityShards() int
	TotalShards() int
	Encode(sourcePackets []Packet) ([]Packet, error)
	Decode(receivedPackets []Packet) ([]Packet, error)
}
