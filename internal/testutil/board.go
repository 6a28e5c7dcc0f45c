package testutil

import (
	"testing"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
)

// Sq parses an algebraic square name and calls t.Fatal if it is invalid.
func Sq(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

// MustMove parses coordinate move text and calls t.Fatal if it is invalid.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// PlaceBoard returns an empty board, White to move, with the given pieces
// placed on named squares.
func PlaceBoard(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, piece := range pieces {
		if err := b.Set(Sq(t, name), piece); err != nil {
			t.Fatalf("Set(%s) error: %v", name, err)
		}
	}
	return b
}

// MoveStrings renders moves in coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SquareStrings renders positions as algebraic square names.
func SquareStrings(positions []chess.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.String()
	}
	return out
}
