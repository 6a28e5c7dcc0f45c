package main

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/config"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/hashing"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/output"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/perft"
)

// run carries out one invocation: decode the position, replay moves, answer
// the square query, count sequences and write the report.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, err := engine.NewBoardFromFEN(cfg.FEN)
	if err != nil {
		return err
	}
	if err := replay(board, cfg); err != nil {
		return err
	}

	report := &output.Report{
		FEN:    engine.BoardToFEN(board),
		ToMove: board.ToMove,
		Status: positionStatus(board),
		Moves:  cfg.Moves,
	}

	if cfg.Square != "" {
		report.Square = cfg.Square
		report.Destinations, err = squareMoves(board, cfg.Square)
		if err != nil {
			return err
		}
	}

	if cfg.Explore.Depth > 0 {
		cfg.Logf(config.Chatty, "Exploring depth %d\n", cfg.Explore.Depth)
		var opts []perft.Option
		var cache *hashing.ThreadSafeCache
		if cfg.Explore.CacheSize > 0 {
			cache = hashing.NewThreadSafeCache(cfg.Explore.CacheSize)
			opts = append(opts, perft.WithCache(cache, hashing.Hash))
		}
		res, err := perft.Run(board, cfg.Explore.Depth, cfg.Explore.Workers, opts...)
		if err != nil {
			return err
		}
		report.Perft = &res
		logTiming(cfg, res)
		if cache != nil {
			logCache(cfg, cache)
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	if cfg.Output.Draw && cfg.Output.Format == config.Text {
		fmt.Fprintln(cfg.OutputFile)
		if err := output.DrawReport(cfg.OutputFile, board, report, cfg.Output.Colour); err != nil {
			return err
		}
	}
	return w.Close()
}

// replay plays cfg.Moves on board in order. Every move must be legal for the
// side to move.
func replay(board *chess.Board, cfg *config.Config) error {
	for i, text := range cfg.Moves {
		ply := i + 1
		move, err := chess.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, Move: text, Ply: ply}
		}

		mover := board.Get(move.From)
		if mover.IsEmpty() || mover.Colour != board.ToMove || !engine.MoveLegal(board, move) {
			return &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, Ply: ply}
		}
		if err := engine.MakeMove(board, move); err != nil {
			return fmt.Errorf("ply %d: %w", ply, err)
		}
		cfg.Logf(config.Chatty, "%d. %s -> %s\n", ply, text, engine.BoardToFEN(board))
	}
	return nil
}

// squareMoves lists the legal destinations of the piece on square.
func squareMoves(board *chess.Board, square string) ([]string, error) {
	pos, err := chess.ParseSquare(square)
	if err != nil {
		return nil, errors.Wrapf(err, "square %q", square)
	}
	var out []string
	for _, to := range engine.LegalMoves(board, pos) {
		out = append(out, to.String())
	}
	return out, nil
}

// positionStatus derives the game situation of the side to move.
func positionStatus(board *chess.Board) output.Status {
	inCheck := engine.IsInCheck(board, board.ToMove)
	if engine.HasLegalMoves(board) {
		if inCheck {
			return output.Check
		}
		return output.Ongoing
	}
	if inCheck {
		return output.Checkmate
	}
	return output.Stalemate
}

// logCache writes the cache statistics, noting when the capacity was reached.
func logCache(cfg *config.Config, cache *hashing.ThreadSafeCache) {
	full := ""
	if cache.IsFull() {
		full = " (full)"
	}
	cfg.Logf(config.Chatty, "Cache: %d entries%s, %d hits, %d misses\n",
		cache.Len(), full, cache.Hits(), cache.Misses())
}

// logTiming writes the exploration summary with thousands separators.
func logTiming(cfg *config.Config, res perft.Result) {
	p := message.NewPrinter(language.English)
	cfg.Logf(config.Summary, "%s", p.Sprintf("Depth %d: %d nodes in %v (%d nodes/s, %d workers)\n",
		res.Depth, res.Nodes, res.Elapsed.Round(time.Millisecond), res.NodesPerSecond(), res.Workers))
}
