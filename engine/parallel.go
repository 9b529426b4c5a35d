package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	mg "negamax-chess/chessmg"
)

// parallelRootSearch scores every root move on its own board clone with a
// full window and picks the first best one in root order, which is the move
// the sequential root loop would pick.
func parallelRootSearch(b *mg.Board, moves []mg.Move, depth int, side mg.Color, cfg SearchConfig,
	th *TimeHandler, stop *atomic.Bool, stats *CutStatistics) (mg.Move, int, error) {

	clones := make([]*mg.Board, len(moves))
	for i := range moves {
		clones[i] = b.Clone()
	}

	scores := make([]int, len(moves))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for i := range moves {
		i := i
		g.Go(func() error {
			board := clones[i]
			m, ok := board.Translate(moves[i])
			if !ok {
				return fmt.Errorf("root move %s does not fit the cloned board", moves[i])
			}
			s := newSearcher(cfg, cfg.Seed+int64(i)+1, th, stop)
			s.deadlineActive = cfg.TimeLimit > 0 && depth > 1

			st := board.PerformMove(m)
			scores[i] = -s.alphabeta(board, depth-1, 1, -MaxScore, MaxScore, side.Opposite())
			board.UndoMove(st)

			mu.Lock()
			stats.add(s.stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return mg.Move{}, 0, err
	}

	stats.Nodes++
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], scores[best], nil
}
