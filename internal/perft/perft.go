// Package perft counts legal move sequences to a fixed depth, serially or
// split across a worker pool at the root.
package perft

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/chess"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/engine"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/errors"
	"github.com/INDA25PlusPlus/wilmerfh-chess/internal/worker"
)

// Cache remembers subtree counts by position key and depth. It must be safe
// for concurrent use when shared by Divide's workers.
type Cache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Option configures an exploration.
type Option func(*counter)

// WithCache reuses subtree counts of transposed positions. hash keys a
// position; positions that differ only in their clocks must share a key.
func WithCache(cache Cache, hash func(*chess.Board) uint64) Option {
	return func(c *counter) {
		c.cache = cache
		c.hash = hash
	}
}

// counter carries the exploration settings down the tree.
type counter struct {
	cache Cache
	hash  func(*chess.Board) uint64
}

func newCounter(opts []Option) *counter {
	c := &counter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.hash == nil {
		c.cache = nil
	}
	return c
}

// Count returns the number of legal move sequences of exactly depth plies
// from board. Depth 0 counts the position itself. The board is not modified.
func Count(board *chess.Board, depth int, opts ...Option) (uint64, error) {
	if depth < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	return newCounter(opts).count(board, depth)
}

func (c *counter) count(board *chess.Board, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	var key uint64
	if c.cache != nil {
		key = c.hash(board)
		if nodes, ok := c.cache.Lookup(key, depth); ok {
			return nodes, nil
		}
	}

	moves := engine.AllLegalMoves(board)
	if depth == 1 {
		c.store(key, depth, uint64(len(moves)))
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, move := range moves {
		child := *board
		if err := engine.MakeMove(&child, move); err != nil {
			return 0, err
		}
		n, err := c.count(&child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	c.store(key, depth, nodes)
	return nodes, nil
}

func (c *counter) store(key uint64, depth int, nodes uint64) {
	if c.cache != nil {
		c.cache.Store(key, depth, nodes)
	}
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Result summarizes one exploration.
type Result struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Divide  []DivideEntry // Sorted by move text
	Workers int           // Goroutines that explored root moves; 0 for a serial count
	Elapsed time.Duration
}

// NodesPerSecond returns the exploration rate, or 0 for an instant run.
func (r Result) NodesPerSecond() uint64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / secs)
}

// Divide counts the sequences below every root move, exploring the root moves
// in parallel. Every branch gets its own copy of the board. workers < 1 uses
// one worker per CPU.
func Divide(board *chess.Board, depth, workers int, opts ...Option) ([]DivideEntry, error) {
	entries, _, err := divide(board, depth, workers, newCounter(opts))
	return entries, err
}

// divide runs the root split and also reports how many workers it used.
func divide(board *chess.Board, depth, workers int, c *counter) ([]DivideEntry, int, error) {
	if depth < 1 {
		return nil, 0, errors.Wrapf(errors.ErrInvalidDepth, "divide needs depth >= 1, got %d", depth)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	moves := engine.AllLegalMoves(board)
	entries := make([]DivideEntry, len(moves))

	pool := worker.NewPool(c.exploreBranch,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()

	var submitErr error
	go func() {
		defer pool.Close()
		for i, move := range moves {
			child := *board
			if err := engine.MakeMove(&child, move); err != nil {
				submitErr = err
				pool.Stop()
				return
			}
			pool.Submit(worker.WorkItem{Board: child, Move: move, Depth: depth - 1, Index: i})
		}
	}()

	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		entries[result.Index] = DivideEntry{Move: result.Move, Nodes: result.Nodes}
	}
	if submitErr != nil {
		return nil, 0, submitErr
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, pool.NumWorkers(), nil
}

// exploreBranch counts one branch on the worker's own board copy.
func (c *counter) exploreBranch(item worker.WorkItem) worker.ProcessResult {
	nodes, err := c.count(&item.Board, item.Depth)
	if err != nil {
		err = fmt.Errorf("branch %s: %w", item.Move, err)
	}
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: nodes,
		Error: err,
	}
}

// Run explores board to depth and times it. A positive depth is always split
// by root move across the worker pool; depth 0 counts the position itself.
func Run(board *chess.Board, depth, workers int, opts ...Option) (Result, error) {
	result := Result{FEN: engine.BoardToFEN(board), Depth: depth}
	start := time.Now()

	if depth < 1 {
		nodes, err := Count(board, depth, opts...)
		if err != nil {
			return Result{}, err
		}
		result.Nodes = nodes
		result.Elapsed = time.Since(start)
		return result, nil
	}

	entries, used, err := divide(board, depth, workers, newCounter(opts))
	if err != nil {
		return Result{}, err
	}
	result.Workers = used
	for _, e := range entries {
		result.Nodes += e.Nodes
	}
	result.Divide = entries
	result.Elapsed = time.Since(start)
	return result, nil
}
