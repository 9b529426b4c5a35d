package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	mg "negamax-chess/chessmg"
)

func mustFEN(tb testing.TB, fen string) (*mg.Board, mg.Color) {
	tb.Helper()
	b, side, err := mg.ParseFEN(fen)
	if err != nil {
		tb.Fatalf("parse FEN: %v", err)
	}
	return b, side
}

const middlegameFEN = "r1bq1rk1/pp2bppp/2n1pn2/3p4/3P4/2NBPN2/PP3PPP/R2QK2R w - - 0 1"

func TestDepthOneTakesTheQueen(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	m, err := GetBestMove(b, side, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e4d5" {
		t.Fatalf("expected e4d5, got %v", m)
	}
}

func TestCapturesTheKingWhenPossible(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	m, err := GetBestMove(b, side, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e2e8" {
		t.Fatalf("expected e2e8, got %v", m)
	}
}

func TestDepthTwoAvoidsDefendedPawn(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1")
	m, err := GetBestMove(b, side, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() == "d1d5" {
		t.Fatalf("queen took a pawn defended by c6")
	}
}

func TestPruningDoesNotChangeResult(t *testing.T) {
	for _, fen := range []string{mg.FENStartPos, middlegameFEN} {
		for _, order := range []OrderMode{OrderNatural, OrderCaptures} {
			b, side := mustFEN(t, fen)
			before := b.Layout()

			pruned, err := Search(b, side, SearchConfig{MaxDepth: 3, Order: order})
			if err != nil {
				t.Fatal(err)
			}
			full, err := Search(b, side, SearchConfig{MaxDepth: 3, Order: order, DisablePruning: true})
			if err != nil {
				t.Fatal(err)
			}

			if b.Layout() != before || !b.Validate() {
				t.Fatalf("search did not restore the board")
			}
			if pruned.BestMove.String() != full.BestMove.String() || pruned.Score != full.Score {
				t.Fatalf("%s/%s: pruned %v (%d) vs full %v (%d)", fen, order,
					pruned.BestMove, pruned.Score, full.BestMove, full.Score)
			}
			if pruned.Stats.Nodes >= full.Stats.Nodes {
				t.Fatalf("%s/%s: pruning visited %d nodes, full width %d", fen, order,
					pruned.Stats.Nodes, full.Stats.Nodes)
			}
			if full.Stats.BetaCutoffs != 0 {
				t.Fatalf("full-width search recorded cutoffs")
			}
		}
	}
}

func TestOrderingDoesNotChangeScore(t *testing.T) {
	b, side := mustFEN(t, middlegameFEN)
	var scores []int
	for _, cfg := range []SearchConfig{
		{MaxDepth: 3, Order: OrderNatural},
		{MaxDepth: 3, Order: OrderCaptures},
		{MaxDepth: 3, Order: OrderRandom, Seed: 7},
		{MaxDepth: 3, Order: OrderRandom, Seed: 99},
	} {
		res, err := Search(b, side, cfg)
		if err != nil {
			t.Fatal(err)
		}
		scores = append(scores, res.Score)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] != scores[0] {
			t.Fatalf("scores differ across orderings: %v", scores)
		}
	}
}

func TestRandomOrderIsReproducible(t *testing.T) {
	b, side := mustFEN(t, mg.FENStartPos)
	cfg := SearchConfig{MaxDepth: 2, Order: OrderRandom, Seed: 42}
	first, err := Search(b, side, cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Search(b, side, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first.BestMove.String() != second.BestMove.String() || first.Stats != second.Stats {
		t.Fatalf("same seed gave different searches: %v vs %v", first.BestMove, second.BestMove)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	b, side := mustFEN(t, middlegameFEN)
	before := b.Layout()
	seq, err := Search(b, side, SearchConfig{MaxDepth: 3, Order: OrderCaptures})
	if err != nil {
		t.Fatal(err)
	}
	par, err := Search(b, side, SearchConfig{MaxDepth: 3, Order: OrderCaptures, Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if seq.BestMove.String() != par.BestMove.String() || seq.Score != par.Score {
		t.Fatalf("sequential %v (%d) vs parallel %v (%d)", seq.BestMove, seq.Score, par.BestMove, par.Score)
	}
	if b.Layout() != before {
		t.Fatalf("parallel search touched the caller's board")
	}
	if par.BestMove.Piece != b.PieceAt(par.BestMove.From) {
		t.Fatalf("parallel result does not refer to the caller's pieces")
	}
}

func TestNoLegalMoves(t *testing.T) {
	b, side := mustFEN(t, "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	_, err := GetBestMove(b, side, 2)
	if !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("expected ErrNoLegalMoves, got %v", err)
	}
}

func TestInvalidDepth(t *testing.T) {
	b, side := mustFEN(t, mg.FENStartPos)
	for _, d := range []int{0, -3} {
		if _, err := GetBestMove(b, side, d); !errors.Is(err, ErrInvalidDepth) {
			t.Fatalf("depth %d: expected ErrInvalidDepth, got %v", d, err)
		}
	}
}

func TestEmptyNodeIsScoredStatically(t *testing.T) {
	// White's only move stalemates black; the leaf below is scored, not searched.
	b, side := mustFEN(t, "k7/8/1K6/2Q5/8/8/8/8 w - - 0 1")
	res, err := Search(b, side, SearchConfig{MaxDepth: 2, Order: OrderNatural})
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.EmptyNodes == 0 {
		t.Fatalf("expected at least one node without moves")
	}
}

func TestTimeLimitedSearch(t *testing.T) {
	b, side := mustFEN(t, middlegameFEN)
	var info bytes.Buffer
	start := time.Now()
	res, err := Search(b, side, SearchConfig{
		MaxDepth:  MaxDepth,
		TimeLimit: 50 * time.Millisecond,
		Order:     OrderCaptures,
		Info:      &info,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.BestMove.IsZero() || res.Depth < 1 {
		t.Fatalf("expected a completed iteration, got depth %d move %v", res.Depth, res.BestMove)
	}
	if res.Depth >= MaxDepth {
		t.Fatalf("time limit was ignored")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("search overran its budget: %v", elapsed)
	}
	if !strings.Contains(info.String(), "info depth 1 ") {
		t.Fatalf("missing depth 1 info line:\n%s", info.String())
	}
	if !b.Validate() {
		t.Fatalf("board invalid after an aborted search")
	}
}

func TestSearchInfoAndCutStats(t *testing.T) {
	b, side := mustFEN(t, mg.FENStartPos)
	var info bytes.Buffer
	res, err := Search(b, side, SearchConfig{MaxDepth: 2, Info: &info, PrintCuts: true, DisablePruning: true})
	if err != nil {
		t.Fatal(err)
	}
	out := info.String()
	if !strings.Contains(out, "info depth 2 score cp") || !strings.Contains(out, "pv "+res.BestMove.String()) {
		t.Fatalf("unexpected info output:\n%s", out)
	}
	if !strings.Contains(out, "Beta cutoffs") {
		t.Fatalf("cut statistics missing:\n%s", out)
	}
	if res.Stats.LeafEvals != 400 {
		t.Fatalf("full-width depth 2 from the start should evaluate 400 leaves, got %d", res.Stats.LeafEvals)
	}
}

func BenchmarkSearchDepth3(b *testing.B) {
	board, side := mustFEN(b, middlegameFEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Search(board, side, SearchConfig{MaxDepth: 3, Order: OrderCaptures}); err != nil {
			b.Fatal(err)
		}
	}
}
