package engine

import (
	"fmt"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
)

// MakeMove applies a move to the board in place: it relocates the castling
// rook, removes a pawn taken en passant, moves (and possibly promotes) the
// piece, updates castling rights, the en passant target and the clocks, and
// passes the turn.
//
// The move is not checked for legality; callers validate with MoveLegal
// first. An error is returned only when the board cannot be advanced at all,
// and the board may then be partially updated.
func MakeMove(board *chess.Board, move chess.Move) error {
	if !move.IsOnBoard() {
		return moveError(move, errors.ErrOffBoard)
	}
	mover := board.Get(move.From)
	if mover.IsEmpty() {
		return moveError(move, fmt.Errorf("no piece on %s", move.From))
	}
	captured := board.Get(move.To)

	if side, ok := castlingSide(board, move); ok {
		if err := castleRook(board, side, move.From.Rank); err != nil {
			return moveError(move, err)
		}
	}

	if IsEnPassant(board, move) {
		captured = board.Get(enPassantVictim(move))
		if err := board.Set(enPassantVictim(move), chess.NoPiece); err != nil {
			return moveError(move, err)
		}
	}

	if err := movePiece(board, move.From, move.To); err != nil {
		return moveError(move, err)
	}

	if mover.Type == chess.Pawn && move.To.Rank == mover.Colour.PromotionRank() {
		promoted := move.Promotion
		if promoted == chess.NoPieceType {
			promoted = chess.Queen
		}
		if err := board.Set(move.To, chess.Piece{Type: promoted, Colour: mover.Colour}); err != nil {
			return moveError(move, err)
		}
	}

	updateCastlingRights(board, move)
	updateEnPassantTarget(board, mover, move)

	if mover.Type == chess.Pawn || !captured.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if mover.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()

	return nil
}

// movePiece relocates whatever stands on from to to, emptying from.
func movePiece(board *chess.Board, from, to chess.Position) error {
	piece := board.Get(from)
	if err := board.Set(to, piece); err != nil {
		return err
	}
	return board.Set(from, chess.NoPiece)
}

// moveError wraps a failure with the offending move.
func moveError(move chess.Move, cause error) error {
	return &errors.MoveError{
		Err:  fmt.Errorf("%w: %w", errors.ErrMoveApplication, cause),
		Move: move.String(),
	}
}
