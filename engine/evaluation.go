package engine

import (
	"fmt"
	"io"

	mg "negamax-chess/chessmg"
)

// Evaluate scores the board from color's point of view: material plus
// piece-square bonus, added for color's pieces and subtracted for the rest.
func Evaluate(b *mg.Board, color mg.Color) int {
	score := 0
	for _, p := range b.AllPieces() {
		v := p.Value + squareBonus(p.Type, p.Color, p.Pos.Square())
		if p.Color == color {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// Material returns the raw material sum of color's pieces.
func Material(b *mg.Board, color mg.Color) int {
	total := 0
	for _, p := range b.Pieces(color) {
		total += p.Value
	}
	return total
}

// GetPiecePhase returns 0 (bare kings) .. TotalPhase (all minor and major pieces present).
func GetPiecePhase(b *mg.Board) int {
	phase := 0
	for _, p := range b.AllPieces() {
		phase += phaseWeight[p.Type]
	}
	if phase > TotalPhase {
		phase = TotalPhase
	}
	return phase
}

// Game phase weights for time allocation
const (
	KnightPhase = 1
	BishopPhase = 1
	RookPhase   = 2
	QueenPhase  = 4
	TotalPhase  = KnightPhase*4 + BishopPhase*4 + RookPhase*4 + QueenPhase*2
)

var phaseWeight = [7]int{
	mg.PieceTypeKnight: KnightPhase,
	mg.PieceTypeBishop: BishopPhase,
	mg.PieceTypeRook:   RookPhase,
	mg.PieceTypeQueen:  QueenPhase,
}

// PrintEvaluation writes a per-side breakdown of the static evaluation.
func PrintEvaluation(w io.Writer, b *mg.Board, color mg.Color) {
	for _, c := range []mg.Color{mg.White, mg.Black} {
		psq := 0
		for _, p := range b.Pieces(c) {
			psq += squareBonus(p.Type, p.Color, p.Pos.Square())
		}
		fmt.Fprintf(w, "info string %s material %d psqt %d\n", c, Material(b, c), psq)
	}
	fmt.Fprintf(w, "info string eval %d (%s to move)\n", Evaluate(b, color), color)
}
