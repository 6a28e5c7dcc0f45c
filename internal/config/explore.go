package config

import (
	"fmt"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
)

// MaxDepth bounds the exploration depth accepted from the command line.
const MaxDepth = 10

// ExploreConfig holds settings for move-count exploration.
type ExploreConfig struct {
	// Depth in plies; 0 disables counting
	Depth int

	// Workers for the root split; 0 uses one per CPU
	Workers int

	// Divide reports the count below every root move
	Divide bool

	// CacheSize bounds the transposition cache; 0 disables it
	CacheSize int
}

// NewExploreConfig creates an ExploreConfig with default values.
// All fields use Go zero values: no counting, automatic worker count.
func NewExploreConfig() *ExploreConfig {
	return &ExploreConfig{}
}

// Validate checks that the exploration settings are usable.
func (e *ExploreConfig) Validate() error {
	if e.Depth < 0 || e.Depth > MaxDepth {
		return fmt.Errorf("depth %d not in 0..%d: %w", e.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if e.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", e.Workers, errors.ErrInvalidConfig)
	}
	if e.CacheSize < 0 {
		return fmt.Errorf("cache size %d is negative: %w", e.CacheSize, errors.ErrInvalidConfig)
	}
	if e.Divide && e.Depth == 0 {
		return fmt.Errorf("divide needs a depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
