package chess

import (
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
	"golang.org/x/exp/constraints"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Position is a square on the board given by zero-based file and rank.
// Off-board positions are representable but cannot be indexed.
type Position struct {
	File int8
	Rank int8
}

// NewPosition creates a position from zero-based file and rank.
func NewPosition(file, rank int8) Position {
	return Position{File: file, Rank: rank}
}

// IsOnBoard returns true if both coordinates lie within the board.
func (p Position) IsOnBoard() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Index converts the position to a linear square index (rank*8+file).
func (p Position) Index() (int, error) {
	if !p.IsOnBoard() {
		return 0, errors.Wrapf(errors.ErrOffBoard, "file %d rank %d", p.File, p.Rank)
	}
	return int(p.Rank)*BoardSize + int(p.File), nil
}

// PositionFromIndex converts a linear square index back to a position.
func PositionFromIndex(index int) Position {
	return Position{File: int8(index % BoardSize), Rank: int8(index / BoardSize)}
}

// Add returns the position displaced by the offset.
func (p Position) Add(o Offset) Position {
	return Position{File: p.File + o.File, Rank: p.Rank + o.Rank}
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.IsOnBoard() {
		return "-"
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// ParseSquare parses an algebraic square name such as "e3".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.Wrapf(errors.ErrOffBoard, "square %q", s)
	}
	p := Position{File: int8(s[0]) - FileBase, Rank: int8(s[1]) - RankBase}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' || !p.IsOnBoard() {
		return Position{}, errors.Wrapf(errors.ErrOffBoard, "square %q", s)
	}
	return p, nil
}

// Offset is a file/rank displacement between two positions.
type Offset struct {
	File int8
	Rank int8
}

// NewOffset creates an offset.
func NewOffset(file, rank int8) Offset {
	return Offset{File: file, Rank: rank}
}

// Scale multiplies both components by n.
func (o Offset) Scale(n int8) Offset {
	return Offset{File: o.File * n, Rank: o.Rank * n}
}

// KnightOffsets are the eight knight leaps.
var KnightOffsets = [8]Offset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// RayDirections are the four straight and four diagonal unit steps.
var RayDirections = [8]Offset{
	// straight
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	// diagonal
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
