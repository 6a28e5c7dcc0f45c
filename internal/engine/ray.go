package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// castRay walks from start (exclusive) one step at a time in direction and
// returns the first occupied square, or false if the edge is reached first.
func castRay(board *chess.Board, start chess.Position, direction chess.Offset) (chess.Position, chess.Piece, bool) {
	current := start.Add(direction)
	for current.IsOnBoard() {
		if piece := board.Get(current); !piece.IsEmpty() {
			return current, piece, true
		}
		current = current.Add(direction)
	}
	return chess.Position{}, chess.NoPiece, false
}
