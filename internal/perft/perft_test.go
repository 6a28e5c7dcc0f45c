package perft

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
	chesserrors "github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/hashing"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/testutil"
)

const (
	kiwipete   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	rookEnding = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		long  bool
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1, false},
		{"initial depth 1", engine.InitialFEN, 1, 20, false},
		{"initial depth 2", engine.InitialFEN, 2, 400, false},
		{"initial depth 3", engine.InitialFEN, 3, 8902, false},
		{"initial depth 4", engine.InitialFEN, 4, 197281, true},
		{"rook ending depth 1", rookEnding, 1, 14, false},
		{"rook ending depth 2", rookEnding, 2, 191, false},
		{"rook ending depth 3", rookEnding, 3, 2812, false},
		{"rook ending depth 4", rookEnding, 4, 43238, true},
		{"rook ending depth 5", rookEnding, 5, 674624, true},
		{"kiwipete depth 1", kiwipete, 1, 48, false},
		{"kiwipete depth 2", kiwipete, 2, 2039, false},
		{"kiwipete depth 3", kiwipete, 3, 97862, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep count in short mode")
			}
			t.Parallel()
			board := mustBoard(t, tt.fen)
			got, err := Count(board, tt.depth)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqual(t, engine.BoardToFEN(board), tt.fen, "board must be untouched")
		})
	}
}

func TestCount_NegativeDepth(t *testing.T) {
	_, err := Count(engine.NewInitialBoard(), -1)
	if !errors.Is(err, chesserrors.ErrInvalidDepth) {
		t.Errorf("Count(-1) error = %v, want ErrInvalidDepth", err)
	}
}

func TestCount_WithCache(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 4", engine.InitialFEN, 4, 197281},
		{"rook ending depth 4", rookEnding, 4, 43238},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() {
				t.Skip("skipping deep count in short mode")
			}
			cache := hashing.NewCache(0)
			got, err := Count(mustBoard(t, tt.fen), tt.depth, WithCache(cache, hashing.Hash))
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Count(%d) with cache = %d, want %d", tt.depth, got, tt.want)
			}
			if cache.Len() == 0 {
				t.Error("cache was never filled")
			}
			if cache.Hits() == 0 {
				t.Error("no transposition was reused")
			}
		})
	}
}

func TestCount_CacheWithoutHashIsIgnored(t *testing.T) {
	cache := hashing.NewCache(0)
	got, err := Count(engine.NewInitialBoard(), 3, WithCache(cache, nil))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(8902))
	testutil.AssertEqual(t, cache.Len(), 0)
}

func TestRun_SharedCache(t *testing.T) {
	cache := hashing.NewThreadSafeCache(0)
	res, err := Run(mustBoard(t, kiwipete), 3, 4, WithCache(cache, hashing.Hash))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Nodes, uint64(97862))
	testutil.AssertEqual(t, len(res.Divide), 48)
}

func TestDivide_MatchesSerialCount(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
	}{
		{"initial", engine.InitialFEN, 3, 4},
		{"kiwipete", kiwipete, 2, 0},
		{"rook ending", rookEnding, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			entries, err := Divide(board, tt.depth, tt.workers)
			testutil.AssertNoError(t, err)

			var total uint64
			for _, e := range entries {
				child := *board
				testutil.AssertNoError(t, engine.MakeMove(&child, e.Move))
				want, err := Count(&child, tt.depth-1)
				testutil.AssertNoError(t, err)
				if e.Nodes != want {
					t.Errorf("Divide entry %s = %d, want %d", e.Move, e.Nodes, want)
				}
				total += e.Nodes
			}

			serial, err := Count(board, tt.depth)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, total, serial, "divide total")
			testutil.AssertEqual(t, len(entries), len(engine.AllLegalMoves(board)), "one entry per root move")
		})
	}
}

func TestDivide_SortedByMove(t *testing.T) {
	entries, err := Divide(engine.NewInitialBoard(), 1, 2)
	testutil.AssertNoError(t, err)
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Move.String() >= entries[i].Move.String() {
			t.Errorf("entries not sorted: %s before %s", entries[i-1].Move, entries[i].Move)
		}
	}
	for _, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(1), e.Move.String())
	}
}

func TestDivide_InvalidDepth(t *testing.T) {
	_, err := Divide(engine.NewInitialBoard(), 0, 1)
	if !errors.Is(err, chesserrors.ErrInvalidDepth) {
		t.Errorf("Divide(depth 0) error = %v, want ErrInvalidDepth", err)
	}
}

func TestRun(t *testing.T) {
	t.Run("split by root move", func(t *testing.T) {
		result, err := Run(engine.NewInitialBoard(), 2, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result.Nodes, uint64(400))
		testutil.AssertEqual(t, result.Depth, 2)
		testutil.AssertEqual(t, result.FEN, engine.InitialFEN)
		testutil.AssertEqual(t, len(result.Divide), 20)
		testutil.AssertEqual(t, result.Workers, 2)
	})

	t.Run("automatic worker count", func(t *testing.T) {
		result, err := Run(engine.NewInitialBoard(), 1, 0)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result.Workers, runtime.NumCPU())
	})

	t.Run("depth zero", func(t *testing.T) {
		result, err := Run(engine.NewInitialBoard(), 0, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result.Nodes, uint64(1))
		testutil.AssertTrue(t, result.Divide == nil, "no divide at depth 0")
		testutil.AssertEqual(t, result.Workers, 0)
	})

	t.Run("checkmated side", func(t *testing.T) {
		board := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
		result, err := Run(board, 3, 2)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result.Nodes, uint64(0))
	})
}

func TestResult_NodesPerSecond(t *testing.T) {
	testutil.AssertEqual(t, Result{Nodes: 100}.NodesPerSecond(), uint64(0))
	testutil.AssertEqual(t, Result{Nodes: 3000, Elapsed: 1500 * time.Millisecond}.NodesPerSecond(), uint64(2000))
}

func BenchmarkCount(b *testing.B) {
	board := engine.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Count(board, 3)
	}
}

func BenchmarkDivide(b *testing.B) {
	board := engine.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Divide(board, 3, 0)
	}
}
