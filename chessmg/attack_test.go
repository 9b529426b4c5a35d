package chessmg_test

import (
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	mg "negamax-chess/chessmg"
)

func TestAttackedSquaresRookFile(t *testing.T) {
	b, _ := mustFEN(t, "4r3/8/8/8/8/8/8/4K2k w - - 0 1")
	king := b.King(mg.White)
	attacked := b.AttackedSquares(king)
	for _, alg := range []string{"e2", "e1", "a8", "h8"} {
		if !attacked.IsSet(mg.MustPosition(alg)) {
			t.Errorf("%s should be attacked\n%s", alg, attacked.String())
		}
	}
	if attacked.IsSet(mg.MustPosition("d2")) {
		t.Errorf("d2 should not be attacked\n%s", attacked.String())
	}
	if b.PieceAt(king.Pos) != king {
		t.Fatalf("king was not put back on %s", king.Pos)
	}
}

func TestAttackedSquaresBlocker(t *testing.T) {
	b, _ := mustFEN(t, "4r2k/8/8/8/8/4P3/8/4K3 w - - 0 1")
	attacked := b.AttackedSquares(b.King(mg.White))
	if !attacked.IsSet(mg.MustPosition("e3")) {
		t.Errorf("the rook can capture on e3")
	}
	if attacked.IsSet(mg.MustPosition("e2")) || attacked.IsSet(mg.MustPosition("e1")) {
		t.Errorf("the pawn on e3 should block the file\n%s", attacked.String())
	}
}

func TestAttackedSquaresIncludePawnPushes(t *testing.T) {
	// Pawns mark their forward squares rather than their capture diagonals.
	b, _ := mustFEN(t, "7k/8/8/4p3/8/8/8/K7 w - - 0 1")
	attacked := b.AttackedSquares(b.King(mg.White))
	if !attacked.IsSet(mg.MustPosition("e4")) {
		t.Errorf("e4 should be marked by the e5 pawn push")
	}
	if attacked.IsSet(mg.MustPosition("d4")) || attacked.IsSet(mg.MustPosition("f4")) {
		t.Errorf("empty capture diagonals should not be marked\n%s", attacked.String())
	}
}

// Without pawns, the attack map over empty squares agrees with a bitboard
// engine's square-attack test when the defending king is absent there.
func TestAttackedSquaresMatchGoose(t *testing.T) {
	tests := []struct {
		fen  string
		king string
	}{
		{"1r2k3/8/2n5/8/4q3/8/1b6/8 w - - 0 1", "h1"},
		{"3k4/8/8/2b1n3/8/8/6r1/8 w - - 0 1", "a1"},
		{"8/8/8/3k4/8/1n3r2/8/8 w - - 0 1", "h8"},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			oracle, err := gm.ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("oracle ParseFEN: %v", err)
			}
			b, _ := mustFEN(t, tt.fen)
			king := mg.NewPiece(mg.PieceTypeKing, mg.White, mg.MustPosition(tt.king))
			if err := b.Put(king); err != nil {
				t.Fatal(err)
			}
			attacked := b.AttackedSquares(king)

			for sq := mg.Square(0); sq < 64; sq++ {
				pos := sq.Position()
				if p := b.PieceAt(pos); p != nil && p != king {
					continue
				}
				want := oracle.IsSquareAttacked(gm.Square(sq), gm.Black)
				if got := attacked.IsSet(pos); got != want {
					t.Errorf("%s: attacked=%v, oracle says %v\n%s", pos, got, want, attacked.String())
				}
			}
		})
	}
}

func TestAttackBitBoardHelpers(t *testing.T) {
	b, _ := mustFEN(t, "7k/8/8/8/8/8/8/K6r w - - 0 1")
	attacked := b.AttackedSquares(b.King(mg.White))
	if attacked.IsSet(mg.Pos(-1, 0)) || attacked.IsSet(mg.Pos(0, 8)) {
		t.Fatalf("off-board squares are never attacked")
	}
	// Rook h1: a1..g1 and h2..h7 (h8 holds its own king). King h8: g8 g7 h7.
	if got := attacked.Count(); got != 15 {
		t.Fatalf("Count() = %d, want 15\n%s", got, attacked.String())
	}
	bb := attacked.Bitboard()
	if bb&1 == 0 || bb&(1<<63) != 0 {
		t.Fatalf("Bitboard() = %x: a1 must be set, h8 must not", bb)
	}
}
