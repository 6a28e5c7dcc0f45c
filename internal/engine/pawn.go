package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// IsEnPassant returns true if the move is a pawn capturing en passant: a
// one-square forward diagonal onto the board's en passant target.
func IsEnPassant(board *chess.Board, move chess.Move) bool {
	if !board.EnPassant || move.To != board.EPSquare {
		return false
	}
	mover := board.Get(move.From)
	if mover.Type != chess.Pawn {
		return false
	}
	shape, err := move.Shape()
	if err != nil {
		return false
	}
	return shape.Kind == chess.Diagonal && shape.Distance == 1 &&
		move.To.Rank-move.From.Rank == mover.Colour.Forward()
}

// enPassantVictim returns the square of the pawn taken en passant: beside the
// capturing pawn, on the target's file.
func enPassantVictim(move chess.Move) chess.Position {
	return chess.NewPosition(move.To.File, move.From.Rank)
}

// updateEnPassantTarget sets the target after a two-square pawn advance and
// clears it after any other move.
func updateEnPassantTarget(board *chess.Board, mover chess.Piece, move chess.Move) {
	board.ClearEnPassant()
	if mover.Type != chess.Pawn {
		return
	}
	shape, err := move.Shape()
	if err != nil || shape.Kind != chess.Straight || shape.Distance != 2 {
		return
	}
	board.SetEnPassant(move.From.Add(move.Step()))
}
