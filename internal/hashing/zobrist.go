// Package hashing provides position keys and a subtree-count cache for
// move-tree exploration.
package hashing

import (
	"math/rand"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
)

// Zobrist keys for pieces, castling, en passant, and side to move.
var (
	pieceKeys     [2][chess.King + 1][chess.NumSquares]uint64 // Indexed by colour, piece type and square
	castlingKeys  [4]uint64                                   // K, Q, k, q
	enPassantKeys [chess.BoardSize]uint64                     // Indexed by target file
	blackKey      uint64                                      // Black to move
)

func init() {
	// A fixed seed keeps keys stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				pieceKeys[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackKey = rnd.Uint64()
}

// Hash returns the Zobrist key of everything that decides the board's future
// moves. The clocks are not included.
func Hash(board *chess.Board) uint64 {
	var key uint64

	for sq, p := range board.Squares {
		if !p.IsEmpty() {
			key ^= pieceKeys[p.Colour][p.Type][sq]
		}
	}

	if board.ToMove == chess.Black {
		key ^= blackKey
	}

	rights := [4]bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			key ^= castlingKeys[i]
		}
	}

	if board.EnPassant {
		key ^= enPassantKeys[board.EPSquare.File]
	}

	return key
}
