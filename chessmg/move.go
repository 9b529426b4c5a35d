package chessmg

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Move describes one ply. It points at board-owned pieces and owns nothing.
type Move struct {
	Piece    *Piece
	From     Position
	To       Position
	Captured *Piece
}

// NewMove builds a move for p from its current position to dest.
func NewMove(p *Piece, dest Position, captured *Piece) Move {
	return Move{Piece: p, From: p.Pos, To: dest, Captured: captured}
}

// IsZero reports whether m is the zero Move (no mover).
func (m Move) IsZero() bool { return m.Piece == nil }

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool { return m.Captured != nil }

// Encode packs the move into dragontoothmg's 16-bit from/to layout.
func (m Move) Encode() dragontoothmg.Move {
	var dm dragontoothmg.Move
	dm.Setfrom(dragontoothmg.Square(m.From.Square())).Setto(dragontoothmg.Square(m.To.Square()))
	return dm
}

// String produces coordinate notation ("e2e4").
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	dm := m.Encode()
	return dm.String()
}

// ParseMove finds the move written in coordinate notation among the legal
// moves of color on b.
func (b *Board) ParseMove(color Color, movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	want, err := dragontoothmg.ParseMove(movestr)
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", movestr, err)
	}
	for _, m := range b.MovesOf(color, true) {
		if m.Encode() == want {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("move %q is not available for %s", movestr, color)
}
