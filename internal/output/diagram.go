package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	markSquare  = color.New(color.BgYellow, color.FgBlack)
	fileLabel   = color.New(color.Bold)
)

// DrawBoard writes a diagram of the board with rank 8 at the top. Squares in
// marked are shown with '*' when empty, or highlighted in colour mode.
func DrawBoard(w io.Writer, board *chess.Board, colour bool, marked []chess.Position) error {
	isMarked := make(map[chess.Position]bool, len(marked))
	for _, p := range marked {
		isMarked[p] = true
	}
	if colour {
		return drawColour(w, board, isMarked)
	}
	return drawPlain(w, board, isMarked)
}

// drawPlain writes an ASCII grid.
func drawPlain(w io.Writer, board *chess.Board, marked map[chess.Position]bool) error {
	ew := &errWriter{w: w}
	ew.printf("  +---+---+---+---+---+---+---+---+\n")
	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		ew.printf("%d |", rank+1)
		for file := int8(0); file < chess.BoardSize; file++ {
			pos := chess.NewPosition(file, rank)
			ew.printf(" %c |", squareLetter(board.Get(pos), marked[pos]))
		}
		ew.printf("\n  +---+---+---+---+---+---+---+---+\n")
	}
	ew.printf("    a   b   c   d   e   f   g   h\n")
	return ew.err
}

// drawColour writes a checkered board. Colours are forced on.
func drawColour(w io.Writer, board *chess.Board, marked map[chess.Position]bool) error {
	for _, c := range []*color.Color{lightSquare, darkSquare, markSquare, fileLabel} {
		c.EnableColor()
	}
	ew := &errWriter{w: w}
	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		ew.printf("%s ", fileLabel.Sprint(rank+1))
		for file := int8(0); file < chess.BoardSize; file++ {
			pos := chess.NewPosition(file, rank)
			bg := darkSquare
			if (file+rank)%2 == 1 {
				bg = lightSquare
			}
			if marked[pos] {
				bg = markSquare
			}
			ew.printf("%s", bg.Sprintf(" %c ", squareLetter(board.Get(pos), false)))
		}
		ew.printf("\n")
	}
	ew.printf("  %s\n", fileLabel.Sprint(" a  b  c  d  e  f  g  h "))
	return ew.err
}

// squareLetter returns the FEN letter of the piece, '*' for a marked empty
// square, or '.'.
func squareLetter(p chess.Piece, marked bool) byte {
	switch {
	case !p.IsEmpty():
		return p.Letter()
	case marked:
		return '*'
	}
	return '.'
}

// DrawReport writes the board diagram that accompanies a report, marking the
// destinations of the queried square.
func DrawReport(w io.Writer, board *chess.Board, r *Report, colour bool) error {
	var marked []chess.Position
	for _, d := range r.Destinations {
		pos, err := chess.ParseSquare(d)
		if err != nil {
			return fmt.Errorf("destination %q: %w", d, err)
		}
		marked = append(marked, pos)
	}
	return DrawBoard(w, board, colour, marked)
}
