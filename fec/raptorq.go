package fec

import (
	"errors"
	"fmt"

	"github.com/go-raptorq/raptorq/rqcodec"
)

// rqProtector adapts the rqcodec two-stage pipeline to the
// single-call Encode/Decode shape FECProtector exposes. Every call
// builds and discards its own InterWorkMem/OutWorkMem, trading the
// incremental-compile efficiency rqcodec offers for a stateless
// interface that matches Reed-Solomon.
type rqProtector struct {
	numSourceSymbols int // K
	numRepairSymbols int
	symbolSize       int // T
}

// NewRaptorQProtector creates a RaptorQ FECProtector over
// numSourceSymbols source symbols of symbolSize bytes each, generating
// numRepairSymbols repair symbols per Encode call.
func NewRaptorQProtector(numSourceSymbols, numRepairSymbols, symbolSize int) (FECProtector, error) {
	if numSourceSymbols <= 0 {
		return nil, errors.New("number of source symbols must be positive for RaptorQ")
	}
	if symbolSize <= 0 {
		return nil, errors.New("symbol size must be positive for RaptorQ")
	}
	if numRepairSymbols < 0 {
		return nil, errors.New("number of repair symbols must not be negative")
	}
	return &rqProtector{
		numSourceSymbols: numSourceSymbols,
		numRepairSymbols: numRepairSymbols,
		symbolSize:       symbolSize,
	}, nil
}

func (r *rqProtector) Algorithm() FECAlgorithmType { return RaptorQ }
func (r *rqProtector) NumDataShards() int          { return r.numSourceSymbols }
func (r *rqProtector) NumParityShards() int        { return r.numRepairSymbols }
func (r *rqProtector) TotalShards() int            { return r.numSourceSymbols + r.numRepairSymbols }

// Encode produces the K source symbols followed by the configured
// number of repair symbols.
func (r *rqProtector) Encode(sourcePackets []Packet) ([]Packet, error) {
	if len(sourcePackets) != r.numSourceSymbols {
		return nil, fmt.Errorf("RaptorQ Encode: expected %d source packets, got %d", r.numSourceSymbols, len(sourcePackets))
	}

	src := make([]byte, r.numSourceSymbols*r.symbolSize)
	for i, p := range sourcePackets {
		if p == nil {
			return nil, fmt.Errorf("RaptorQ Encode: source packet at index %d is nil", i)
		}
		if len(p) > r.symbolSize {
			return nil, fmt.Errorf("RaptorQ Encode: source packet %d length %d exceeds symbol size %d", i, len(p), r.symbolSize)
		}
		copy(src[i*r.symbolSize:], p)
	}

	wm, err := rqcodec.NewInterWorkMem(r.numSourceSymbols, rqcodec.DefaultMaxExtra)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}
	wm.AddIDs(0, int32(r.numSourceSymbols))
	prog, err := wm.Compile()
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}
	inter, err := prog.Execute(r.symbolSize, src)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}

	total := r.numSourceSymbols + r.numRepairSymbols
	owm, err := rqcodec.NewOutWorkMem(r.numSourceSymbols, total)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}
	owm.AddIDs(0, int32(total))
	oprog, err := owm.Compile()
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}
	out, err := oprog.Execute(r.symbolSize, inter)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Encode: %w", err)
	}

	outputSymbols := make([]Packet, total)
	for i := 0; i < total; i++ {
		outputSymbols[i] = Packet(out[i*r.symbolSize : (i+1)*r.symbolSize])
	}
	return outputSymbols, nil
}

// Decode expects receivedPackets to be indexed by encoding symbol id
// (ESI): receivedPackets[i] is the symbol with ESI i, or nil if it was
// not received. It recovers the K source packets once enough symbols
// are present to reach full rank.
func (r *rqProtector) Decode(receivedPackets []Packet) ([]Packet, error) {
	wm, err := rqcodec.NewInterWorkMem(r.numSourceSymbols, rqcodec.DefaultMaxExtra)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}

	buf := make([]byte, 0, len(receivedPackets)*r.symbolSize)
	for esi, p := range receivedPackets {
		if p == nil {
			continue
		}
		wm.AddIDs(int32(esi), 1)
		padded := make([]byte, r.symbolSize)
		copy(padded, p)
		buf = append(buf, padded...)
	}

	prog, err := wm.Compile()
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}
	inter, err := prog.Execute(r.symbolSize, buf)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}

	owm, err := rqcodec.NewOutWorkMem(r.numSourceSymbols, r.numSourceSymbols)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}
	owm.AddIDs(0, int32(r.numSourceSymbols))
	oprog, err := owm.Compile()
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}
	out, err := oprog.Execute(r.symbolSize, inter)
	if err != nil {
		return nil, fmt.Errorf("RaptorQ Decode: %w", err)
	}

	reconstructed := make([]Packet, r.numSourceSymbols)
	for i := 0; i < r.numSourceSymbols; i++ {
		reconstructed[i] = Packet(out[i*r.symbolSize : (i+1)*r.symbolSize])
	}
	return reconstructed, nil
}
