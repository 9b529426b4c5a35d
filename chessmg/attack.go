package chessmg

import "strings"

// AttackBitBoard marks the squares one side could move a piece onto.
type AttackBitBoard [64]bool

// IsSet reports whether pos is marked. Off-board positions never are.
func (a *AttackBitBoard) IsSet(pos Position) bool {
	return pos.InBounds() && a[pos.Square()]
}

func (a *AttackBitBoard) set(pos Position) { a[pos.Square()] = true }

// Count returns the number of marked squares.
func (a *AttackBitBoard) Count() int {
	n := 0
	for _, v := range a {
		if v {
			n++
		}
	}
	return n
}

// Bitboard packs the grid into a little-endian uint64 (a1 = bit 0).
func (a *AttackBitBoard) Bitboard() uint64 {
	var bb uint64
	for sq, v := range a {
		if v {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// String renders the grid rank 8 first, 'x' for attacked squares.
func (a *AttackBitBoard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if a[rank*8+file] {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AttackedSquares builds the attack map of the side opposing king. The king
// is lifted off the board while the map is computed so that it does not
// shield the squares behind it from sliding pieces.
func (b *Board) AttackedSquares(king *Piece) AttackBitBoard {
	var attacked AttackBitBoard

	sq := king.Pos.Square()
	delete(b.squares, sq)
	for _, m := range b.MovesOf(king.Color.Opposite(), false) {
		attacked.set(m.To)
	}
	b.squares[sq] = king

	return attacked
}
