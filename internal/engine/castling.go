package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// castlingSide recognizes a castling candidate: a king moving two squares
// along its rank. Kingside is toward the higher file.
func castlingSide(board *chess.Board, move chess.Move) (chess.CastlingSide, bool) {
	if board.Get(move.From).Type != chess.King {
		return chess.Kingside, false
	}
	shape, err := move.Shape()
	if err != nil || !shape.IsCastlingShape() || move.From.Rank != move.To.Rank {
		return chess.Kingside, false
	}
	if move.To.File > move.From.File {
		return chess.Kingside, true
	}
	return chess.Queenside, true
}

// validateCastling checks every castling condition: the king leaves its home
// square sideways, the right is intact, the own rook is home with nothing
// between it and the king, and the king does not start on, pass through or
// land on an attacked square.
func validateCastling(board *chess.Board, move chess.Move) bool {
	king := board.Get(move.From)
	side, ok := castlingSide(board, move)
	if !ok {
		return false
	}

	home := king.Colour.HomeRank()
	if move.From != chess.NewPosition(chess.KingFile, home) || move.To.Rank != home {
		return false
	}

	if !board.Castling.CanCastle(king.Colour, side) {
		return false
	}

	rookFile, _ := side.RookFiles()
	rookPos := chess.NewPosition(rookFile, home)
	if board.Get(rookPos) != (chess.Piece{Type: chess.Rook, Colour: king.Colour}) {
		return false
	}

	// The first piece seen from the rook must be the castling king itself.
	towardKing := chess.NewOffset(1, 0)
	if side == chess.Kingside {
		towardKing = chess.NewOffset(-1, 0)
	}
	if hit, _, found := castRay(board, rookPos, towardKing); !found || hit != move.From {
		return false
	}

	kingStep := move.Step()
	attacker := king.Colour.Opposite()
	for i := int8(0); i <= 2; i++ {
		if IsSquareAttacked(board, move.From.Add(kingStep.Scale(i)), attacker) {
			return false
		}
	}
	return true
}

// castleRook moves the rook that accompanies a castling king.
func castleRook(board *chess.Board, side chess.CastlingSide, rank int8) error {
	fromFile, toFile := side.RookFiles()
	return movePiece(board, chess.NewPosition(fromFile, rank), chess.NewPosition(toFile, rank))
}

// updateCastlingRights removes castling rights when a king or rook leaves its
// home square, or anything lands on a rook's home square.
func updateCastlingRights(board *chess.Board, move chess.Move) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRank()
		if move.From == chess.NewPosition(chess.KingFile, home) {
			board.Castling.DisableKing(colour)
		}
		for _, side := range []chess.CastlingSide{chess.Kingside, chess.Queenside} {
			rookFile, _ := side.RookFiles()
			rookHome := chess.NewPosition(rookFile, home)
			if move.From == rookHome || move.To == rookHome {
				board.Castling.DisableRook(colour, side)
			}
		}
	}
}
