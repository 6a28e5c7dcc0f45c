package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	chesserrors "github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/testutil"
)

// mustBoard decodes a FEN string or fails the test.
func mustBoard(tb testing.TB, fen string) *chess.Board {
	tb.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		tb.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, b *chess.Board) bool {
				return b.Get(testutil.Sq(t, "e1")) == chess.W(chess.King) &&
					b.Get(testutil.Sq(t, "e8")) == chess.B(chess.King) &&
					b.Get(testutil.Sq(t, "e2")) == chess.W(chess.Pawn) &&
					b.Get(testutil.Sq(t, "e7")) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastlingRights() &&
					!b.EnPassant
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, b *chess.Board) bool {
				return b.Get(testutil.Sq(t, "e4")) == chess.W(chess.Pawn) &&
					b.Get(testutil.Sq(t, "e2")).IsEmpty() &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPSquare == testutil.Sq(t, "e3")
			},
		},
		{
			name: "partial castling rights and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 5 20",
			checkFn: func(t *testing.T, b *chess.Board) bool {
				return b.Castling == chess.CastlingRights{WhiteKingside: true, BlackQueenside: true} &&
					b.HalfmoveClock == 5 &&
					b.MoveNumber == 20
			},
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8 w - - 0 1",
			checkFn: func(t *testing.T, b *chess.Board) bool {
				return len(b.Occupied(chess.White)) == 0 && len(b.Occupied(chess.Black)) == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if !tt.checkFn(t, board) {
				t.Errorf("NewBoardFromFEN(%q) produced unexpected board: %s", tt.fen, BoardToFEN(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", "field count"},
		{"missing clocks", "8/8/8/8/8/8/8/8 w - -", "field count"},
		{"extra field", "8/8/8/8/8/8/8/8 w - - 0 1 x", "field count"},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"bad letter", "8/8/8/8/8/8/8/7x w - - 0 1", "placement"},
		{"rank too long", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"rank overflow by digit", "p8/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"bad colour", "8/8/8/8/8/8/8/8 x - - 0 1", "active colour"},
		{"bad castling", "8/8/8/8/8/8/8/8 w KX - 0 1", "castling"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - e9 0 1", "en passant"},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -1 1", "halfmove clock"},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 x", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewBoardFromFEN(%q) = %s, want error", tt.fen, BoardToFEN(board))
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("errors.Is(err, ErrInvalidFEN) = false for %v", err)
			}
			var pe *chesserrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("errors.As(err, *ParseError) = false for %v", err)
			}
			if pe.Field != tt.wantField {
				t.Errorf("ParseError.Field = %q, want %q", pe.Field, tt.wantField)
			}
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 49 87",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 5 20",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			if got := BoardToFEN(mustBoard(t, fen)); got != fen {
				t.Errorf("BoardToFEN(NewBoardFromFEN(%q)) = %q", fen, got)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	want := mustBoard(t, InitialFEN)
	if diff := cmp.Diff(want, NewInitialBoard()); diff != "" {
		t.Errorf("NewInitialBoard() mismatch (-want +got):\n%s", diff)
	}
}
