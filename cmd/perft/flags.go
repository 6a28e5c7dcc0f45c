// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/config"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
)

var (
	// Position options
	fenFlag    = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	movesFlag  = flag.String("moves", "", "Moves to replay first, space or comma separated (e.g. 'e2e4 e7e5')")
	squareFlag = flag.String("square", "", "List the legal destinations of the piece on this square")

	// Exploration options
	depth     = flag.Int("depth", 0, "Count move sequences to this many plies (0 = no counting)")
	divide    = flag.Bool("divide", false, "Report the count below every root move")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	cacheSize = flag.Int("hash", 0, "Transposition cache entries (0 = no cache)")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("json", false, "Output in JSON format")
	colorOutput = flag.Bool("color", false, "Colour the text report")
	drawBoard   = flag.Bool("draw", false, "Draw the board after the text report")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Diagnostics level: 0=none, 1=timing, 2=every replayed move")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyExploreFlags(cfg)
	applyOutputFormatFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

// applyPositionFlags applies the starting position, replayed moves and
// queried square.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Moves = splitMoves(*movesFlag)
	cfg.Square = strings.TrimSpace(*squareFlag)
}

// applyExploreFlags applies move-count exploration flags.
func applyExploreFlags(cfg *config.Config) {
	cfg.Explore.Depth = *depth
	cfg.Explore.Divide = *divide
	cfg.Explore.Workers = *workers
	cfg.Explore.CacheSize = *cacheSize
}

// applyOutputFormatFlags applies output format flags.
func applyOutputFormatFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.Colour = *colorOutput
	cfg.Output.Draw = *drawBoard
}

// splitMoves splits a move list on spaces and commas. It returns nil for an
// empty list.
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
