package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// MovePseudoLegal reports whether the move obeys the movement and obstruction
// rules of the piece standing on its origin square. It may still leave the
// mover's own king in check. It never fails: malformed moves are simply not
// pseudo-legal.
func MovePseudoLegal(board *chess.Board, move chess.Move) bool {
	return pseudoLegal(board, move, false)
}

// pseudoLegal is the single movement oracle. In attack mode the destination is
// judged as if it held an enemy piece, so pawns attack empty squares, and a
// king's castling shape is never an attack.
func pseudoLegal(board *chess.Board, move chess.Move, attack bool) bool {
	if !move.IsOnBoard() {
		return false
	}
	mover := board.Get(move.From)
	if mover.IsEmpty() {
		return false
	}
	shape, err := move.Shape()
	if err != nil {
		return false
	}
	if !mover.ShapeAllowed(shape) {
		return false
	}

	switch mover.Type {
	case chess.Pawn:
		isCapture := attack || isMoveCapture(board, move)
		if !mover.ValidatePawnRules(move, isCapture) {
			return false
		}
	case chess.King:
		if shape.IsCastlingShape() {
			if attack {
				return false
			}
			return move.Promotion == chess.NoPieceType && validateCastling(board, move)
		}
	}

	if !attack && !validPromotion(mover, move) {
		return false
	}

	return pathClear(board, move, shape)
}

// isMoveCapture returns true if the move takes an opposing piece, including
// en passant.
func isMoveCapture(board *chess.Board, move chess.Move) bool {
	if IsEnPassant(board, move) {
		return true
	}
	mover := board.Get(move.From)
	target := board.Get(move.To)
	if mover.IsEmpty() || target.IsEmpty() {
		return false
	}
	return mover.Colour != target.Colour
}

// validPromotion checks the move's promotion choice. Only a pawn reaching the
// last rank may name a piece, and only a knight, bishop, rook or queen.
func validPromotion(mover chess.Piece, move chess.Move) bool {
	if move.Promotion == chess.NoPieceType {
		return true
	}
	if mover.Type != chess.Pawn || move.To.Rank != mover.Colour.PromotionRank() {
		return false
	}
	switch move.Promotion {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}
