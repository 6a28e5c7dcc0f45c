// Package chess provides the value types of the rules engine: board geometry,
// piece vocabulary, move shapes, movement rules, castling rights and the board
// container itself.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int8 {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank holding the colour's king and rooks at the start.
func (c Colour) HomeRank() int8 {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int8 {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the last rank for the colour's pawns.
func (c Colour) PromotionRank() int8 {
	return c.Opposite().HomeRank()
}

// PieceType identifies the kind of a piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// PromotionTypes are the pieces a pawn may become, strongest first.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is NoPiece and marks an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the contents of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(pt PieceType) Piece {
	return Piece{Type: pt, Colour: White}
}

// B creates a black piece.
func B(pt PieceType) Piece {
	return Piece{Type: pt, Colour: Black}
}

// IsEmpty returns true for the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromLetter converts a FEN letter to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, false
	}
	return Piece{Type: pt, Colour: colour}, true
}
