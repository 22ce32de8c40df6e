package main

import (
	"fmt"
	"io"
)

const gapMarker = "xxxxxx"

// printTimingReport prints the per-event transmit timing line
func printTimingReport(w io.Writer, r TimingReport) {
	marker := ""
	if r.Gap {
		marker = gapMarker
	}
	fmt.Fprintf(w, "Time %f delta %f milliseconds. Total %f bytes/second %s %f\n",
		r.TimestampMs, r.DeltaMs, r.Throughput, marker, r.SinceMarkerMs)
}

// printFrame prints one located frame
func printFrame(w io.Writer, f Frame) {
	fmt.Fprintf(w, "frame at %d nr %d CRC %02x\n", f.Offset, f.Sequence, f.Checksum)
}

// printSummary prints the final frame count and padding estimate
func printSummary(w io.Writer, res *ExtractResult) {
	fmt.Fprintf(w, "Found %d frames in %d bytes, %d bytes padding\n",
		len(res.Frames), res.TotalBytes, res.Padding)
}
