package chess

// CastlingSide distinguishes the two castling directions.
type CastlingSide uint8

const (
	Kingside CastlingSide = iota
	Queenside
)

// String returns "O-O" or "O-O-O".
func (s CastlingSide) String() string {
	if s == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// RookFiles returns the files the castling rook moves from and to.
func (s CastlingSide) RookFiles() (from, to int8) {
	if s == Kingside {
		return 7, 5
	}
	return 0, 3
}

// KingFile is the file both kings start on.
const KingFile = 4

// CastlingRights records which castling moves are still available.
// Flags are only ever cleared once set.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// CanCastle reports whether the colour may still castle on the given side.
func (r CastlingRights) CanCastle(c Colour, side CastlingSide) bool {
	switch {
	case c == White && side == Kingside:
		return r.WhiteKingside
	case c == White:
		return r.WhiteQueenside
	case side == Kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// DisableKing clears both rights of the colour.
func (r *CastlingRights) DisableKing(c Colour) {
	r.DisableRook(c, Kingside)
	r.DisableRook(c, Queenside)
}

// DisableRook clears the right on one side.
func (r *CastlingRights) DisableRook(c Colour, side CastlingSide) {
	switch {
	case c == White && side == Kingside:
		r.WhiteKingside = false
	case c == White:
		r.WhiteQueenside = false
	case side == Kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
