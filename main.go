package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses the capture, then extracts frames from the transmit stream
func run(cfg *Config, stdout io.Writer) error {
	content, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p := NewParser(stdout, cfg.GapThresholdMs)
	if err := p.ParseLog(string(content)); err != nil {
		return fmt.Errorf("parse %s: %w", cfg.InputPath, err)
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	res, err := ExtractFrames(p.TX(), out, stdout)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	if err != nil {
		return err
	}

	printSummary(stdout, res)

	if cfg.SummaryPath != "" {
		if err := WriteSummary(cfg.SummaryPath, newSummary(cfg.InputPath, p, res)); err != nil {
			return err
		}
	}
	return nil
}
