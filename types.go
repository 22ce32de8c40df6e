package main

// ParserState is the Log Parser's position in the capture
type ParserState int

const (
	StateScanning ParserState = iota
	StateReadingTX
	StateReadingRX
)

func (s ParserState) String() string {
	switch s {
	case StateScanning:
		return "SCANNING"
	case StateReadingTX:
		return "READING_TX_PAYLOAD"
	case StateReadingRX:
		return "READING_RX_PAYLOAD"
	}
	return "UNKNOWN"
}

// Direction of an SCO data event
type Direction int

const (
	DirectionTX Direction = iota
	DirectionRX
)

// DirectionEvent is a parsed "SCO Data TX/RX" line
type DirectionEvent struct {
	Direction      Direction
	DeclaredLength int
	Timestamp      int64 // microseconds
}

// directionState holds the per-direction payload bookkeeping
type directionState struct {
	Stream         []byte
	DeclaredLength int
	Read           int
	Previous       int64 // receive side only, transmit uses TimingState
	Events         int
}

// TimingState tracks transmit throughput between events
type TimingState struct {
	Previous        int64 // microseconds
	First           int64 // microseconds
	HaveFirst       bool
	CumulativeBytes int
	LastMarker      float64 // milliseconds
	Gaps            int
}

// TimingReport is emitted for every transmit event
type TimingReport struct {
	TimestampMs   float64
	DeltaMs       float64
	Throughput    float64 // bytes/second
	Gap           bool
	SinceMarkerMs float64
}

// Frame is one mSBC frame carved out of the transmit stream
type Frame struct {
	Offset   int
	Sequence int // -1 when the H2 header byte is not recognized
	Checksum byte
	Data     []byte
}

// ExtractResult summarizes a frame scan
type ExtractResult struct {
	Frames          []Frame
	TotalBytes      int
	Padding         int
	Discontinuities int
}
