package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// MoveLegal reports whether the move is pseudo-legal and does not leave the
// mover's own king in check. The move is tried on a copy of the board; the
// original is never modified.
func MoveLegal(board *chess.Board, move chess.Move) bool {
	if !MovePseudoLegal(board, move) {
		return false
	}
	mover := board.Get(move.From)

	testBoard := board.Copy()
	if err := MakeMove(testBoard, move); err != nil {
		return false
	}
	return !IsInCheck(testBoard, mover.Colour)
}

// candidateSquares returns every square a piece on from could conceivably
// reach: the knight leaps, and each ray up to and including its first
// occupant.
func candidateSquares(board *chess.Board, from chess.Position) []chess.Position {
	candidates := make([]chess.Position, 0, 8+4*(chess.BoardSize-1))
	for _, offset := range chess.KnightOffsets {
		if to := from.Add(offset); to.IsOnBoard() {
			candidates = append(candidates, to)
		}
	}
	for _, direction := range chess.RayDirections {
		for to := from.Add(direction); to.IsOnBoard(); to = to.Add(direction) {
			candidates = append(candidates, to)
			if !board.Get(to).IsEmpty() {
				break
			}
		}
	}
	return candidates
}

// LegalMoves returns the legal destinations of the piece on pos. It returns
// nil for an empty square. A promotion counts as one destination.
func LegalMoves(board *chess.Board, pos chess.Position) []chess.Position {
	if board.Get(pos).IsEmpty() {
		return nil
	}
	var destinations []chess.Position
	for _, to := range candidateSquares(board, pos) {
		if MoveLegal(board, chess.NewMove(pos, to)) {
			destinations = append(destinations, to)
		}
	}
	return destinations
}

// AllLegalMoves returns every legal move of the side to move, as given by the
// board's turn indicator. A pawn reaching the last rank yields one move per
// promotion piece.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(board.ToMove) {
		mover := board.Get(from)
		for _, to := range LegalMoves(board, from) {
			if mover.Type == chess.Pawn && to.Rank == mover.Colour.PromotionRank() {
				for _, pt := range chess.PromotionTypes {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: pt})
				}
				continue
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, from := range board.Occupied(board.ToMove) {
		for _, to := range candidateSquares(board, from) {
			if MoveLegal(board, chess.NewMove(from, to)) {
				return true
			}
		}
	}
	return false
}
