package main

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// FrameIndex locates one extracted frame in the transmit stream
type FrameIndex struct {
	Offset   int  `cbor:"offset"`
	Sequence int  `cbor:"seq"`
	Checksum byte `cbor:"crc"`
}

// Summary is the machine-readable record of a run
type Summary struct {
	Input           string       `cbor:"input"`
	TXBytes         int          `cbor:"tx_bytes"`
	RXBytes         int          `cbor:"rx_bytes"`
	TXEvents        int          `cbor:"tx_events"`
	RXEvents        int          `cbor:"rx_events"`
	Frames          int          `cbor:"frames"`
	Padding         int          `cbor:"padding"`
	Gaps            int          `cbor:"gaps"`
	Discontinuities int          `cbor:"discontinuities"`
	Index           []FrameIndex `cbor:"index"`
}

func newSummary(input string, p *Parser, res *ExtractResult) *Summary {
	s := &Summary{
		Input:           input,
		TXBytes:         len(p.TX()),
		RXBytes:         len(p.RX()),
		TXEvents:        p.tx.Events,
		RXEvents:        p.rx.Events,
		Frames:          len(res.Frames),
		Padding:         res.Padding,
		Gaps:            p.timing.Gaps,
		Discontinuities: res.Discontinuities,
		Index:           make([]FrameIndex, 0, len(res.Frames)),
	}
	for _, f := range res.Frames {
		s.Index = append(s.Index, FrameIndex{Offset: f.Offset, Sequence: f.Sequence, Checksum: f.Checksum})
	}
	return s
}

// WriteSummary encodes s as CBOR into path
func WriteSummary(path string, s *Summary) error {
	data, err := cbor.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// readSummary decodes a summary previously written by WriteSummary
func readSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Summary
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &s, nil
}
