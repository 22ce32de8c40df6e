package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	scoTXPattern = regexp.MustCompile(`^.*SCO Data TX.*dlen (\d+).*?(\d+)\.(\d+)`)
	scoRXPattern = regexp.MustCompile(`^.*SCO Data RX.*dlen (\d+).*?(\d+)\.(\d+)`)
)

const (
	// hex dump region of a btmon payload line (columns 9-55)
	hexColumnStart = 8
	hexColumnEnd   = 55

	defaultGapThresholdMs = 27.0
)

// Parser turns btmon text output into per-direction byte streams
type Parser struct {
	state        ParserState
	tx           directionState
	rx           directionState
	timing       TimingState
	gapThreshold float64
	out          io.Writer
	lineNum      int
}

// NewParser creates a parser that writes transmit timing reports to out.
// A nil out discards them.
func NewParser(out io.Writer, gapThresholdMs float64) *Parser {
	if out == nil {
		out = io.Discard
	}
	return &Parser{
		state:        StateScanning,
		out:          out,
		gapThreshold: gapThresholdMs,
	}
}

// TX returns the accumulated transmit stream
func (p *Parser) TX() []byte { return p.tx.Stream }

// RX returns the accumulated receive stream
func (p *Parser) RX() []byte { return p.rx.Stream }

// ParseLog feeds every line of content to the parser
func (p *Parser) ParseLog(content string) error {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	for _, line := range strings.Split(content, "\n") {
		if err := p.ParseLine(line); err != nil {
			return err
		}
	}
	return nil
}

// ParseLine advances the state machine by one line
func (p *Parser) ParseLine(line string) error {
	p.lineNum++
	line = strings.TrimRight(line, " \t\r\n\v\f")

	switch p.state {
	case StateReadingTX:
		return p.readPayload(line, &p.tx)
	case StateReadingRX:
		return p.readPayload(line, &p.rx)
	}

	ev, ok := parseEventLine(line)
	if !ok {
		return nil
	}

	switch ev.Direction {
	case DirectionTX:
		report := p.timing.observe(ev, p.gapThreshold)
		printTimingReport(p.out, report)
		p.tx.begin(ev)
		p.state = StateReadingTX
	case DirectionRX:
		p.rx.begin(ev)
		p.rx.Previous = ev.Timestamp
		p.state = StateReadingRX
	}
	return nil
}

func (p *Parser) readPayload(line string, d *directionState) error {
	bytes, err := parseHexDump(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", p.lineNum, err)
	}
	d.Stream = append(d.Stream, bytes...)
	d.Read += len(bytes)
	if d.Read >= d.DeclaredLength {
		p.state = StateScanning
	}
	return nil
}

func (d *directionState) begin(ev DirectionEvent) {
	d.DeclaredLength = ev.DeclaredLength
	d.Read = 0
	d.Events++
}

// observe builds the report for a transmit event and then updates the state
func (ts *TimingState) observe(ev DirectionEvent, thresholdMs float64) TimingReport {
	t := ev.Timestamp
	delta := float64(t-ts.Previous) / 1000

	report := TimingReport{
		TimestampMs: float64(t) / 1000,
		DeltaMs:     delta,
		Throughput:  float64(ts.CumulativeBytes) / (float64(t-ts.First) / 1000000),
		Gap:         delta > thresholdMs,
	}
	report.SinceMarkerMs = report.TimestampMs - ts.LastMarker

	if report.Gap {
		ts.LastMarker = report.TimestampMs
		ts.Gaps++
	}
	ts.CumulativeBytes += ev.DeclaredLength
	ts.Previous = t
	if !ts.HaveFirst {
		ts.First = t
		ts.HaveFirst = true
	}
	return report
}

// parseEventLine matches a line against the TX pattern, then the RX pattern
func parseEventLine(line string) (DirectionEvent, bool) {
	if m := scoTXPattern.FindStringSubmatch(line); m != nil {
		if ev, err := newEvent(DirectionTX, m); err == nil {
			return ev, true
		}
	}
	if m := scoRXPattern.FindStringSubmatch(line); m != nil {
		if ev, err := newEvent(DirectionRX, m); err == nil {
			return ev, true
		}
	}
	return DirectionEvent{}, false
}

func newEvent(dir Direction, m []string) (DirectionEvent, error) {
	dlen, err := strconv.Atoi(m[1])
	if err != nil {
		return DirectionEvent{}, fmt.Errorf("invalid dlen: %v", err)
	}
	sec, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return DirectionEvent{}, fmt.Errorf("invalid seconds: %v", err)
	}
	usec, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return DirectionEvent{}, fmt.Errorf("invalid microseconds: %v", err)
	}
	return DirectionEvent{
		Direction:      dir,
		DeclaredLength: dlen,
		Timestamp:      sec*1000000 + usec,
	}, nil
}

// parseHexDump extracts the byte values from a btmon hex dump line
func parseHexDump(line string) ([]byte, error) {
	region := line
	if len(region) > hexColumnEnd {
		region = region[:hexColumnEnd]
	}
	if len(region) > hexColumnStart {
		region = region[hexColumnStart:]
	} else {
		region = ""
	}
	region = strings.TrimRight(region, " \t")

	tokens := strings.Split(region, " ")
	data := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q", tok)
		}
		data = append(data, byte(b))
	}
	return data, nil
}
