package output

import (
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/perft"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	FEN          string     `json:"fen"`
	ToMove       string     `json:"toMove"` // "white" or "black"
	Status       string     `json:"status"`
	Moves        []string   `json:"moves,omitempty"`
	Square       string     `json:"square,omitempty"`
	Destinations []string   `json:"destinations,omitempty"`
	Perft        *JSONPerft `json:"perft,omitempty"`
}

// JSONPerft represents a move-count exploration in JSON format.
type JSONPerft struct {
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Divide    []JSONDivide `json:"divide,omitempty"`
	Workers   int          `json:"workers,omitempty"`
	ElapsedMs int64        `json:"elapsedMs"`
	NPS       uint64       `json:"nps,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// ReportToJSON converts a report to its JSON form. Divide entries are included
// only when withDivide is set.
func ReportToJSON(r *Report, withDivide bool) *JSONReport {
	jr := &JSONReport{
		FEN:          r.FEN,
		ToMove:       colourName(r.ToMove),
		Status:       r.Status.String(),
		Moves:        r.Moves,
		Square:       r.Square,
		Destinations: r.Destinations,
	}
	if r.Perft != nil {
		jr.Perft = perftToJSON(r.Perft, withDivide)
	}
	return jr
}

func perftToJSON(res *perft.Result, withDivide bool) *JSONPerft {
	jp := &JSONPerft{
		Depth:     res.Depth,
		Nodes:     res.Nodes,
		Workers:   res.Workers,
		ElapsedMs: res.Elapsed.Milliseconds(),
		NPS:       res.NodesPerSecond(),
	}
	if withDivide {
		jp.Divide = make([]JSONDivide, 0, len(res.Divide))
		for _, e := range res.Divide {
			jp.Divide = append(jp.Divide, JSONDivide{Move: e.Move.String(), Nodes: e.Nodes})
		}
	}
	return jp
}
