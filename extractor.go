package main

import (
	"fmt"
	"io"
)

const (
	h2Header0 = 0x01
	msbcSync  = 0xAD

	// MSBCFrameLen is the payload size written per frame
	MSBCFrameLen = 57
	// H2FrameLen is the on-wire size: 2 byte H2 header + payload
	H2FrameLen = 59
)

// h2 header sequence bytes, indexed by sequence number
var h2SequenceBytes = [4]byte{0x08, 0x38, 0xC8, 0xF8}

// frameNumber maps the second H2 header byte to its sequence number
func frameNumber(b byte) int {
	for i, v := range h2SequenceBytes {
		if v == b {
			return i
		}
	}
	return -1
}

// isFrameStart checks the marker at tx[i]. The caller guarantees i+5 < len(tx).
func isFrameStart(tx []byte, i int) bool {
	return tx[i] == h2Header0 && tx[i+2] == msbcSync && tx[i+3] == 0x00 && tx[i+4] == 0x00
}

// ExtractFrames scans tx one byte at a time for H2-framed mSBC frames,
// writes each 57-byte payload to out and reports it on report.
func ExtractFrames(tx []byte, out io.Writer, report io.Writer) (*ExtractResult, error) {
	if report == nil {
		report = io.Discard
	}
	res := &ExtractResult{TotalBytes: len(tx)}
	prevSeq := -1

	for i := 0; i+5 < len(tx); i++ {
		if !isFrameStart(tx, i) {
			continue
		}

		f := Frame{
			Offset:   i,
			Sequence: frameNumber(tx[i+1]),
			Checksum: tx[i+5],
			Data:     frameData(tx, i+2),
		}
		printFrame(report, f)

		if _, err := out.Write(f.Data); err != nil {
			return res, fmt.Errorf("write frame at %d: %w", i, err)
		}

		if f.Sequence >= 0 {
			if prevSeq >= 0 && f.Sequence != (prevSeq+1)%len(h2SequenceBytes) {
				res.Discontinuities++
			}
			prevSeq = f.Sequence
		}
		res.Frames = append(res.Frames, f)
	}

	res.Padding = res.TotalBytes - len(res.Frames)*H2FrameLen
	return res, nil
}

// frameData copies MSBCFrameLen bytes from tx[start:], zero-filling past the end
func frameData(tx []byte, start int) []byte {
	data := make([]byte, MSBCFrameLen)
	if start < len(tx) {
		copy(data, tx[start:])
	}
	return data
}
