package chess

// IsCastlingShape returns true for the king's two-square sideways candidate.
func (s MoveShape) IsCastlingShape() bool {
	return s.Kind == Straight && s.Distance == 2
}

// forwardFor returns true if the shape heads in the colour's forward direction.
func (s MoveShape) forwardFor(c Colour) bool {
	if c == White {
		return s.ForwardOnly
	}
	return s.BackwardOnly
}

// ShapeAllowed reports whether the piece may ever move with this shape,
// ignoring the rest of the board.
//
// A king's two-square straight shape is allowed here only so that castling
// can be recognized; callers must validate it as castling and never as an
// ordinary king step.
func (p Piece) ShapeAllowed(shape MoveShape) bool {
	switch p.Type {
	case Pawn:
		if !shape.forwardFor(p.Colour) {
			return false
		}
		switch shape.Kind {
		case Straight:
			return shape.Distance == 1 || shape.Distance == 2
		case Diagonal:
			return shape.Distance == 1
		}
		return false
	case Knight:
		return shape.Kind == KnightLeap
	case Bishop:
		return shape.Kind == Diagonal
	case Rook:
		return shape.Kind == Straight
	case Queen:
		return shape.Kind == Straight || shape.Kind == Diagonal
	case King:
		switch shape.Kind {
		case Straight:
			return shape.Distance == 1 || shape.Distance == 2
		case Diagonal:
			return shape.Distance == 1
		}
		return false
	}
	return false
}

// ValidatePawnRules checks the capture-dependent pawn rules. A non-capturing
// pawn move goes straight, two squares only from the starting rank; a
// capturing pawn move goes one square diagonally.
func (p Piece) ValidatePawnRules(m Move, isCapture bool) bool {
	if p.Type != Pawn {
		return false
	}
	shape, err := m.Shape()
	if err != nil {
		return false
	}
	if isCapture {
		return shape.Kind == Diagonal && shape.Distance == 1
	}
	if shape.Kind != Straight {
		return false
	}
	switch shape.Distance {
	case 1:
		return true
	case 2:
		return m.From.Rank == p.Colour.PawnRank()
	}
	return false
}
