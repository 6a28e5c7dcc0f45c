package chess

import (
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
)

// ShapeKind is the geometric category of a move.
type ShapeKind uint8

const (
	Straight ShapeKind = iota
	Diagonal
	KnightLeap
)

// String returns the string representation of a shape kind.
func (k ShapeKind) String() string {
	switch k {
	case Straight:
		return "Straight"
	case Diagonal:
		return "Diagonal"
	}
	return "Knight"
}

// MoveShape classifies the geometry between two squares. It is derived from a
// move and never stored on the board.
//
// ForwardOnly and BackwardOnly are relative to increasing rank, independent of
// the colour of the moving piece. Both are false for a sideways move. Knight
// shapes leave all other fields zero.
type MoveShape struct {
	Kind         ShapeKind
	ForwardOnly  bool
	BackwardOnly bool
	Distance     int8
}

// ShapeFromPositions classifies the move from one square to another.
func ShapeFromPositions(from, to Position) (MoveShape, error) {
	if from == to {
		return MoveShape{}, errors.Wrapf(errors.ErrInvalidShape, "null move on %s", from)
	}
	df := to.File - from.File
	dr := to.Rank - from.Rank
	af, ar := abs(df), abs(dr)

	if (af == 2 && ar == 1) || (af == 1 && ar == 2) {
		return MoveShape{Kind: KnightLeap}, nil
	}

	var kind ShapeKind
	switch {
	case df == 0 || dr == 0:
		kind = Straight
	case af == ar:
		kind = Diagonal
	default:
		return MoveShape{}, errors.Wrapf(errors.ErrInvalidShape, "%s to %s", from, to)
	}
	return MoveShape{
		Kind:         kind,
		ForwardOnly:  dr > 0,
		BackwardOnly: dr < 0,
		Distance:     max(af, ar),
	}, nil
}

// Move is a request to move whatever stands on From to To.
// Promotion names the piece a pawn becomes on the last rank; NoPieceType
// there means a queen.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
}

// NewMove creates a move between two squares.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// Shape derives the move's geometric shape.
func (m Move) Shape() (MoveShape, error) {
	return ShapeFromPositions(m.From, m.To)
}

// IsOnBoard returns true if both endpoints are on the board.
func (m Move) IsOnBoard() bool {
	return m.From.IsOnBoard() && m.To.IsOnBoard()
}

// Step returns the unit step from From towards To. It is only meaningful for
// straight and diagonal shapes.
func (m Move) Step() Offset {
	return Offset{File: sign(m.To.File - m.From.File), Rank: sign(m.To.Rank - m.From.Rank)}
}

// Path returns the squares the move traverses, ending with To. A knight leap is
// never blocked, so its path is just the destination.
func (m Move) Path() ([]Position, error) {
	shape, err := m.Shape()
	if err != nil {
		return nil, err
	}
	if shape.Kind == KnightLeap {
		return []Position{m.To}, nil
	}
	step := m.Step()
	path := make([]Position, 0, shape.Distance)
	for i := int8(1); i <= shape.Distance; i++ {
		path = append(path, m.From.Add(step.Scale(i)))
	}
	return path, nil
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string([]byte{B(m.Promotion).Letter()})
	}
	return s
}

// ParseMove parses coordinate notation such as "g1f3" or "b7b8n".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: %v", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: %v", s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		p, ok := PieceFromLetter(s[4])
		if !ok || p.Colour != Black || p.Type == Pawn || p.Type == King {
			return Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: bad promotion piece", s)
		}
		m.Promotion = p.Type
	}
	return m, nil
}
