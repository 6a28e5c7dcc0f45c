package main

import (
	"reflect"
	"testing"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/config"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
)

// saveRestoreBool sets a bool flag and returns a function restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"spaces", "e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"commas", "e2e4,e7e5", []string{"e2e4", "e7e5"}},
		{"mixed", " e2e4, e7e5\tg1f3 ", []string{"e2e4", "e7e5", "g1f3"}},
		{"promotion", "a7a8n", []string{"a7a8n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitMoves(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitMoves(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyPositionFlags(t *testing.T) {
	defer saveRestoreString(fenFlag, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreString(movesFlag, "a1a2")()
	defer saveRestoreString(squareFlag, " h1 ")()

	cfg := config.NewConfig()
	applyPositionFlags(cfg)

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if !reflect.DeepEqual(cfg.Moves, []string{"a1a2"}) {
		t.Errorf("Moves = %v; want [a1a2]", cfg.Moves)
	}
	if cfg.Square != "h1" {
		t.Errorf("Square = %q; want h1", cfg.Square)
	}
}

func TestApplyExploreFlags(t *testing.T) {
	defer saveRestoreInt(depth, 3)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreInt(workers, 2)()
	defer saveRestoreInt(cacheSize, 4096)()

	cfg := config.NewConfig()
	applyExploreFlags(cfg)

	want := config.ExploreConfig{Depth: 3, Workers: 2, Divide: true, CacheSize: 4096}
	if cfg.Explore != want {
		t.Errorf("Explore = %+v; want %+v", cfg.Explore, want)
	}
}

func TestApplyOutputFormatFlags(t *testing.T) {
	t.Run("defaults to text", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, false)()
		cfg := config.NewConfig()
		applyOutputFormatFlags(cfg)
		if cfg.Output.Format != config.Text {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
	})

	t.Run("json colour draw", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(colorOutput, true)()
		defer saveRestoreBool(drawBoard, true)()
		cfg := config.NewConfig()
		applyOutputFormatFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
		if !cfg.Output.Colour || !cfg.Output.Draw {
			t.Errorf("Colour = %v, Draw = %v; want both true", cfg.Output.Colour, cfg.Output.Draw)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.FEN != engine.InitialFEN {
			t.Errorf("FEN = %q; want initial position", cfg.FEN)
		}
		if cfg.Verbosity != config.Summary {
			t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Summary)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("quiet overrides verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, config.Chatty)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != config.Quiet {
			t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Quiet)
		}
	})

	t.Run("verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, config.Chatty)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != config.Chatty {
			t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Chatty)
		}
	})
}
