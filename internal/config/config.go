// Package config provides configuration for the perft command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
)

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable report
	JSON                     // One JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Verbosity levels for LogFile diagnostics.
const (
	Quiet   = 0 // Nothing beyond the report
	Summary = 1 // Timing summary
	Chatty  = 2 // Per-move progress
)

// Config holds all program configuration.
type Config struct {
	// Starting position and the moves replayed from it
	FEN   string
	Moves []string

	// Square whose legal destinations are listed ("" for none)
	Square string

	Verbosity int // 0=nothing, 1=timing summary, 2=per-move progress

	// Grouped settings
	Explore ExploreConfig
	Output  OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        engine.InitialFEN,
		Verbosity:  Summary,
		Explore:    *NewExploreConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity reaches level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the configuration. The FEN itself is checked when it is
// decoded.
func (c *Config) Validate() error {
	if c.FEN == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < Quiet || c.Verbosity > Chatty {
		return fmt.Errorf("verbosity %d not in %d..%d: %w", c.Verbosity, Quiet, Chatty, errors.ErrInvalidConfig)
	}
	if c.Square != "" {
		if _, err := chess.ParseSquare(c.Square); err != nil {
			return fmt.Errorf("square %q: %w", c.Square, errors.ErrInvalidConfig)
		}
	}
	for _, m := range c.Moves {
		if _, err := chess.ParseMove(m); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return c.Explore.Validate()
}
