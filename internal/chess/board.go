package chess

// Board represents a chess board with all state needed to judge moves.
//
// Board is a plain value: assigning it copies every square, so a copy can be
// mutated without touching the original.
type Board struct {
	// The board squares indexed by rank*8+file. The zero Piece marks an empty square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Which castling moves are still available.
	Castling CastlingRights

	// Is an en passant capture possible? If so then EPSquare holds the
	// square the capturing pawn lands on.
	EnPassant bool
	EPSquare  Position

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file] = W(backRank[file])
		b.Squares[BoardSize+file] = W(Pawn)
		b.Squares[6*BoardSize+file] = B(Pawn)
		b.Squares[7*BoardSize+file] = B(backRank[file])
	}

	b.ToMove = White
	b.Castling = AllCastlingRights()
	b.EnPassant = false
	b.EPSquare = Position{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the piece at the given position, or NoPiece for an empty or
// off-board square.
func (b *Board) Get(pos Position) Piece {
	index, err := pos.Index()
	if err != nil {
		return NoPiece
	}
	return b.Squares[index]
}

// Set places a piece at the given position. NoPiece empties the square.
func (b *Board) Set(pos Position, piece Piece) error {
	index, err := pos.Index()
	if err != nil {
		return err
	}
	b.Squares[index] = piece
	return nil
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// SetEnPassant records the en passant target square.
func (b *Board) SetEnPassant(pos Position) {
	b.EnPassant = true
	b.EPSquare = pos
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Position{}
}

// FindKing returns the position of the colour's king by scanning the board.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	king := Piece{Type: King, Colour: colour}
	for i, p := range b.Squares {
		if p == king {
			return PositionFromIndex(i), true
		}
	}
	return Position{}, false
}

// Occupied returns the positions holding a piece of the given colour, in
// index order.
func (b *Board) Occupied(colour Colour) []Position {
	var out []Position
	for i, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			out = append(out, PositionFromIndex(i))
		}
	}
	return out
}
