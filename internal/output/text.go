package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/config"
)

// palette holds the colours used by text reports.
type palette struct {
	label   *color.Color
	check   *color.Color
	ended   *color.Color
	nodes   *color.Color
	move    *color.Color
	printer *message.Printer
}

// newPalette builds a palette. Colours are forced on or off regardless of
// whether the writer is a terminal.
func newPalette(enabled bool) *palette {
	p := &palette{
		label:   color.New(color.Bold),
		check:   color.New(color.FgYellow, color.Bold),
		ended:   color.New(color.FgRed, color.Bold),
		nodes:   color.New(color.FgGreen),
		move:    color.New(color.FgCyan),
		printer: message.NewPrinter(language.English),
	}
	for _, c := range []*color.Color{p.label, p.check, p.ended, p.nodes, p.move} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// count formats n with thousands separators.
func (p *palette) count(n uint64) string {
	return p.printer.Sprintf("%d", n)
}

// status colours a status by severity.
func (p *palette) status(s Status) string {
	switch s {
	case Check:
		return p.check.Sprint(s)
	case Checkmate, Stalemate:
		return p.ended.Sprint(s)
	}
	return s.String()
}

// writeText writes a report in human-readable form.
func writeText(w io.Writer, r *Report, cfg *config.Config) error {
	p := newPalette(cfg.Output.Colour)
	ew := &errWriter{w: w}

	ew.printf("%s %s\n", p.label.Sprint("Position:"), r.FEN)
	if len(r.Moves) > 0 {
		ow := NewOutputWriter(ew, maxLineLength, "          ")
		ow.WriteNoSpace(p.label.Sprint("Replayed:") + " ")
		for _, m := range r.Moves {
			ow.Write(m)
		}
		ow.NewLine()
	}
	ew.printf("%s  %s\n", p.label.Sprint("To move:"), colourName(r.ToMove))
	ew.printf("%s   %s\n", p.label.Sprint("Status:"), p.status(r.Status))

	if r.Square != "" {
		label := p.label.Sprintf("Moves from %s:", r.Square)
		if len(r.Destinations) == 0 {
			ew.printf("%s none\n", label)
		} else {
			ow := NewOutputWriter(ew, maxLineLength, "    ")
			ow.WriteNoSpace(label + " ")
			for _, d := range r.Destinations {
				ow.Write(p.move.Sprint(d))
			}
			ow.NewLine()
		}
	}

	if res := r.Perft; res != nil {
		if cfg.Explore.Divide {
			for _, e := range res.Divide {
				ew.printf("%s: %s\n", p.move.Sprint(e.Move), p.count(e.Nodes))
			}
			ew.printf("\n")
		}
		ew.printf("%s %s\n", p.label.Sprintf("Depth %d:", res.Depth), p.nodes.Sprint(p.count(res.Nodes)))
	}
	return ew.err
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}
