package chessmg

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Board owns every piece in play and keeps a sparse square -> piece mapping
// that always agrees with each piece's own Pos.
type Board struct {
	squares map[Square]*Piece

	// seq counts PerformMove calls not yet undone; MoveState carries the
	// value it produced so UndoMove can enforce LIFO order.
	seq int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Square]*Piece, 32)}
}

// Get returns the piece at pos, or nil if the square is empty.
func (b *Board) Get(pos Position) (*Piece, error) {
	if !pos.InBounds() {
		return nil, &OutOfBoundsError{Pos: pos}
	}
	return b.squares[pos.Square()], nil
}

// PieceAt is Get for callers that have already bounds-checked pos.
func (b *Board) PieceAt(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.squares[pos.Square()]
}

// Put places p on the board at p.Pos. It is meant for setup code: it
// fails if the square is taken or off the board.
func (b *Board) Put(p *Piece) error {
	if !p.Pos.InBounds() {
		return &OutOfBoundsError{Pos: p.Pos}
	}
	sq := p.Pos.Square()
	if other, ok := b.squares[sq]; ok {
		return &ConfigurationError{Reason: "square " + p.Pos.String() + " already holds " + other.String()}
	}
	b.squares[sq] = p
	return nil
}

// Remove takes whatever piece stands on pos off the board and returns it.
func (b *Board) Remove(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	sq := pos.Square()
	p := b.squares[sq]
	delete(b.squares, sq)
	return p
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int { return len(b.squares) }

// occupiedSquares lists occupied squares in ascending order, which fixes the
// enumeration order of everything built on top of it.
func (b *Board) occupiedSquares() []Square {
	keys := maps.Keys(b.squares)
	slices.Sort(keys)
	return keys
}

// Pieces returns the pieces of color c ordered by square.
func (b *Board) Pieces(c Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for _, sq := range b.occupiedSquares() {
		if p := b.squares[sq]; p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// AllPieces returns every piece ordered by square.
func (b *Board) AllPieces() []*Piece {
	out := make([]*Piece, 0, len(b.squares))
	for _, sq := range b.occupiedSquares() {
		out = append(out, b.squares[sq])
	}
	return out
}

// King returns the king of color c, or nil if it is not on the board.
func (b *Board) King(c Color) *Piece {
	for _, p := range b.squares {
		if p.Type == PieceTypeKing && p.Color == c {
			return p
		}
	}
	return nil
}

// MovesOf returns every move the pieces of color can make. With
// checkLegality false king moves are not filtered against enemy attacks;
// attack-map construction relies on that to avoid mutual recursion.
func (b *Board) MovesOf(color Color, checkLegality bool) []Move {
	moves := make([]Move, 0, 48)
	for _, p := range b.Pieces(color) {
		moves = p.appendMoves(moves, b, checkLegality)
	}
	return moves
}

// Clone deep-copies the board. Pieces in the clone are new instances, so
// moves generated on the original must go through Translate first.
func (b *Board) Clone() *Board {
	c := &Board{squares: make(map[Square]*Piece, len(b.squares))}
	for sq, p := range b.squares {
		cp := *p
		c.squares[sq] = &cp
	}
	return c
}

// Translate maps a move generated on another board with the same placement
// (typically the board this one was cloned from) onto this board's pieces.
func (b *Board) Translate(m Move) (Move, bool) {
	mover := b.PieceAt(m.From)
	if mover == nil || mover.Type != m.Piece.Type || mover.Color != m.Piece.Color {
		return Move{}, false
	}
	var captured *Piece
	if m.Captured != nil {
		captured = b.PieceAt(m.To)
		if captured == nil || captured.Type != m.Captured.Type {
			return Move{}, false
		}
	}
	return Move{Piece: mover, From: m.From, To: m.To, Captured: captured}, true
}

// Validate reports whether the square mapping agrees with every piece's
// stored position.
func (b *Board) Validate() bool {
	for sq, p := range b.squares {
		if p == nil || !p.Pos.InBounds() || p.Pos.Square() != sq {
			return false
		}
	}
	return true
}
