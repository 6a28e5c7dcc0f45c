package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A colour without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingPos, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
//
// Candidate attackers are whatever stands a knight's leap away and the first
// piece along each of the eight rays. Each candidate is then judged by the
// same movement rules used for ordinary moves, as if the square held an enemy
// piece.
func IsSquareAttacked(board *chess.Board, square chess.Position, byColour chess.Colour) bool {
	for _, offset := range chess.KnightOffsets {
		from := square.Add(offset)
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != byColour {
			continue
		}
		if pseudoLegal(board, chess.NewMove(from, square), true) {
			return true
		}
	}

	for _, direction := range chess.RayDirections {
		from, piece, ok := castRay(board, square, direction)
		if !ok || piece.Colour != byColour {
			continue
		}
		if pseudoLegal(board, chess.NewMove(from, square), true) {
			return true
		}
	}

	return false
}
