package engine

import "github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"

// pathClear checks that every square strictly between From and To is empty
// and that To is empty or holds an opposing piece. Knight leaps only check
// the destination.
func pathClear(board *chess.Board, move chess.Move, shape chess.MoveShape) bool {
	mover := board.Get(move.From)
	if mover.IsEmpty() {
		return false
	}

	if shape.Kind != chess.KnightLeap {
		step := move.Step()
		for current := move.From.Add(step); current != move.To; current = current.Add(step) {
			if !board.Get(current).IsEmpty() {
				return false
			}
		}
	}

	target := board.Get(move.To)
	return target.IsEmpty() || target.Colour != mover.Colour
}
