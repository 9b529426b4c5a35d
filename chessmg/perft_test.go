package chessmg_test

import (
	"testing"

	mg "negamax-chess/chessmg"
)

type perftCase struct {
	depth int
	nodes uint64
}

func runPerftCases(t *testing.T, b *mg.Board, side mg.Color, cases []perftCase) {
	t.Helper()
	for _, c := range cases {
		got := mg.Perft(b, side, c.depth)
		if got != c.nodes {
			t.Fatalf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
		}
		if !b.Validate() {
			t.Fatalf("board invalid after perft(%d)", c.depth)
		}
	}
}

// The first three plies from the initial position contain no checks or
// pins, so the counts equal standard chess.
func TestPerftInitial(t *testing.T) {
	runPerftCases(t, mg.NewStartBoard(), mg.White, []perftCase{
		{1, 20},
		{2, 400},
		{3, 8902},
	})
}

func TestPerftKingsOnly(t *testing.T) {
	b, side := mustFEN(t, "8/8/8/3k4/8/3K4/8/8 w - - 0 1")
	// d3 king: the three squares on rank 4 touch the black king.
	runPerftCases(t, b, side, []perftCase{{1, 5}})
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := mg.NewStartBoard()
	div := mg.PerftDivide(b, mg.White, 3)
	if len(div) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sum = %d, want 8902", sum)
	}
	if div["e2e4"] != 600 || div["g1f3"] != 440 {
		t.Fatalf("unexpected divide entries e2e4=%d g1f3=%d", div["e2e4"], div["g1f3"])
	}
	if len(mg.PerftDivide(b, mg.White, 0)) != 0 {
		t.Fatalf("divide at depth 0 should be empty")
	}
}

func BenchmarkPerft3_Initial(b *testing.B) {
	board := mg.NewStartBoard()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mg.Perft(board, mg.White, 3)
	}
}
