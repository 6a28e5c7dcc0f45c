// perft judges chess positions: it replays moves, lists legal moves, reports
// check and mate, and counts move sequences to a fixed depth.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)

	err := run(cfg)
	closeOutput()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags and
// returns a function that closes it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return closer(file)
}

// setupOutputFile configures the output file based on command-line flags and
// returns a function that closes it.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return closer(file)
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Judge a chess position and count its move sequences.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5\n")
	fmt.Fprintf(os.Stderr, "  perft -moves 'f2f3 e7e5 g2g4 d8h4'\n")
	fmt.Fprintf(os.Stderr, "  perft -fen 'r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1' -square e1 -draw\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 4 -divide -json\n")
}
