package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	mg "negamax-chess/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore is larger than any evaluation and stands in for infinity.
	MaxScore = 1_000_000

	DefaultDepth = 4
	MaxDepth     = 64
)

// nodeCheckMask controls how often the deadline is polled.
const nodeCheckMask = 1023

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
)

// SearchConfig controls one call to Search.
type SearchConfig struct {
	MaxDepth int
	// TimeLimit switches to iterative deepening from depth 1; the deepest
	// completed iteration wins. Depth 1 always completes.
	TimeLimit time.Duration
	Order     OrderMode
	Seed      int64
	// Workers > 1 splits the root moves across goroutines, each on its own board clone.
	Workers int
	// DisablePruning searches full width with the same recursion.
	DisablePruning bool
	// Info receives UCI-style progress lines when set.
	Info      io.Writer
	PrintCuts bool
}

// SearchResult is what Search hands back to the caller.
type SearchResult struct {
	BestMove mg.Move
	Score    int
	Depth    int
	Stats    CutStatistics
	TimeUsed time.Duration
}

// GetBestMove searches depth plies with alpha-beta negamax and returns the
// best move for color.
func GetBestMove(b *mg.Board, color mg.Color, depth int) (mg.Move, error) {
	res, err := Search(b, color, SearchConfig{MaxDepth: depth})
	return res.BestMove, err
}

// Search runs a search on b for color. The board is mutated during the
// search and restored before Search returns; nothing else may touch it
// meanwhile.
func Search(b *mg.Board, color mg.Color, cfg SearchConfig) (SearchResult, error) {
	if cfg.MaxDepth < 1 {
		return SearchResult{}, ErrInvalidDepth
	}
	cfg.MaxDepth = min(cfg.MaxDepth, MaxDepth)

	var th TimeHandler
	th.StartTime(cfg.TimeLimit)

	rootMoves := b.MovesOf(color, true)
	if len(rootMoves) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}

	var stop atomic.Bool
	s := newSearcher(cfg, cfg.Seed, &th, &stop)
	orderMoves(rootMoves, cfg.Order, s.rng, nil, 0)

	firstDepth := cfg.MaxDepth
	if cfg.TimeLimit > 0 {
		firstDepth = 1
	}

	var res SearchResult
	var total CutStatistics
	for depth := firstDepth; depth <= cfg.MaxDepth; depth++ {
		s.deadlineActive = cfg.TimeLimit > 0 && depth > 1
		s.stats = CutStatistics{}

		var move mg.Move
		var score int
		var err error
		if cfg.Workers > 1 {
			move, score, err = parallelRootSearch(b, rootMoves, depth, color, cfg, &th, &stop, &s.stats)
		} else {
			move, score = s.rootSearch(b, rootMoves, depth, color)
		}
		total.add(s.stats)
		if err != nil {
			return SearchResult{}, err
		}
		if stop.Load() {
			break
		}

		res.BestMove, res.Score, res.Depth = move, score, depth
		if cfg.Info != nil {
			fmt.Fprintln(cfg.Info,
				"info depth", depth,
				"score cp", score,
				"nodes", total.Nodes,
				"time", th.Elapsed().Milliseconds(),
				"pv", move,
			)
		}
		if th.TimeStatus() {
			break
		}
		moveToFront(rootMoves, move)
	}

	res.Stats = total
	res.TimeUsed = th.Elapsed()
	if cfg.Info != nil && cfg.PrintCuts {
		dumpCutStats(cfg.Info, total)
	}
	return res, nil
}

type searcher struct {
	order          OrderMode
	rng            *rand.Rand
	pruning        bool
	th             *TimeHandler
	stop           *atomic.Bool
	deadlineActive bool
	stats          CutStatistics
	killers        KillerStruct
}

func newSearcher(cfg SearchConfig, seed int64, th *TimeHandler, stop *atomic.Bool) *searcher {
	return &searcher{
		order:   cfg.Order,
		rng:     rand.New(rand.NewSource(seed)),
		pruning: !cfg.DisablePruning,
		th:      th,
		stop:    stop,
	}
}

// rootSearch returns the best move at the root. The root window starts at
// (-MaxScore, MaxScore) and only alpha rises, so there is never a cutoff here.
func (s *searcher) rootSearch(b *mg.Board, moves []mg.Move, depth int, side mg.Color) (mg.Move, int) {
	s.stats.Nodes++
	alpha, beta := -MaxScore, MaxScore
	bestScore := -MaxScore
	var bestMove mg.Move

	for _, m := range moves {
		st := b.PerformMove(m)
		score := -s.alphabeta(b, depth-1, 1, -beta, -alpha, side.Opposite())
		b.UndoMove(st)

		if s.stop.Load() {
			break
		}
		if score > bestScore || bestMove.IsZero() {
			bestScore, bestMove = score, m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestMove, bestScore
}

// alphabeta is the negamax recursion below the root. Scores are from the
// point of view of side; a child's score is negated back into ours.
func (s *searcher) alphabeta(b *mg.Board, depth, ply int, alpha, beta int, side mg.Color) int {
	s.stats.Nodes++
	if s.deadlineActive && s.stats.Nodes&nodeCheckMask == 0 && s.th.TimeStatus() {
		s.stop.Store(true)
	}
	if s.stop.Load() {
		return 0
	}

	if depth == 0 {
		s.stats.LeafEvals++
		return Evaluate(b, side)
	}

	moves := b.MovesOf(side, true)
	if len(moves) == 0 {
		// No checkmate or stalemate detection: a side without moves is scored statically.
		s.stats.EmptyNodes++
		return Evaluate(b, side)
	}
	orderMoves(moves, s.order, s.rng, &s.killers, ply)

	bestScore := -MaxScore
	for _, m := range moves {
		st := b.PerformMove(m)
		score := -s.alphabeta(b, depth-1, ply+1, -beta, -alpha, side.Opposite())
		b.UndoMove(st)

		if score > bestScore {
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta && s.pruning {
			s.stats.BetaCutoffs++
			if !m.IsCapture() {
				s.killers.InsertKiller(m.Encode(), ply)
			}
			break
		}
	}
	return bestScore
}
