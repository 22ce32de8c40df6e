package main

import (
	"fmt"
	"os"
	"strconv"
)

const defaultOutputPath = "output.msbc"

// Config holds the run settings. The input path comes from the command
// line, everything else from the environment.
type Config struct {
	InputPath      string
	OutputPath     string
	SummaryPath    string
	GapThresholdMs float64
}

// LoadConfig builds a Config from args (without the program name) and the environment
func LoadConfig(args []string) (*Config, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: %s <btmon-log>", programName())
	}

	cfg := &Config{
		InputPath:      args[0],
		OutputPath:     defaultOutputPath,
		SummaryPath:    os.Getenv("MSBC_SUMMARY"),
		GapThresholdMs: defaultGapThresholdMs,
	}
	if v := os.Getenv("MSBC_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("MSBC_GAP_THRESHOLD_MS"); v != "" {
		th, err := strconv.ParseFloat(v, 64)
		if err != nil || th <= 0 {
			return nil, fmt.Errorf("invalid MSBC_GAP_THRESHOLD_MS %q", v)
		}
		cfg.GapThresholdMs = th
	}
	return cfg, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "sco-msbc"
}
