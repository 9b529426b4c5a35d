package chessmg

type direction struct{ df, dr int }

var (
	orthogonalDirs = []direction{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalDirs   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs      = append(append([]direction{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = []direction{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1}}
	kingOffsets    = []direction{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// PossibleMoves generates the moves of p on b. Only king moves are checked
// for safety, and only when checkLegality is set.
func (p *Piece) PossibleMoves(b *Board, checkLegality bool) []Move {
	return p.appendMoves(make([]Move, 0, 16), b, checkLegality)
}

func (p *Piece) appendMoves(moves []Move, b *Board, checkLegality bool) []Move {
	switch p.Type {
	case PieceTypePawn:
		return p.appendPawnMoves(moves, b)
	case PieceTypeKnight:
		return p.appendStepMoves(moves, b, knightOffsets)
	case PieceTypeBishop:
		return p.appendSlidingMoves(moves, b, diagonalDirs)
	case PieceTypeRook:
		return p.appendSlidingMoves(moves, b, orthogonalDirs)
	case PieceTypeQueen:
		return p.appendSlidingMoves(moves, b, queenDirs)
	case PieceTypeKing:
		return p.appendKingMoves(moves, b, checkLegality)
	}
	return moves
}

// appendSlidingMoves walks each ray until it leaves the board or hits a
// piece; an enemy piece ends the ray with a capture.
func (p *Piece) appendSlidingMoves(moves []Move, b *Board, dirs []direction) []Move {
	for _, d := range dirs {
		for sq := p.Pos.Add(d.df, d.dr); sq.InBounds(); sq = sq.Add(d.df, d.dr) {
			occupant := b.PieceAt(sq)
			if occupant == nil {
				moves = append(moves, NewMove(p, sq, nil))
				continue
			}
			if occupant.Color != p.Color {
				moves = append(moves, NewMove(p, sq, occupant))
			}
			break
		}
	}
	return moves
}

func (p *Piece) appendStepMoves(moves []Move, b *Board, offsets []direction) []Move {
	for _, d := range offsets {
		sq := p.Pos.Add(d.df, d.dr)
		if !sq.InBounds() {
			continue
		}
		occupant := b.PieceAt(sq)
		if occupant != nil && occupant.Color == p.Color {
			continue
		}
		moves = append(moves, NewMove(p, sq, occupant))
	}
	return moves
}

func (p *Piece) appendPawnMoves(moves []Move, b *Board) []Move {
	dir := pawnDir(p.Color)

	// Diagonal captures only; there is no en passant.
	for _, df := range [2]int{-1, 1} {
		sq := p.Pos.Add(df, dir)
		if !sq.InBounds() {
			continue
		}
		if occupant := b.PieceAt(sq); occupant != nil && occupant.Color != p.Color {
			moves = append(moves, NewMove(p, sq, occupant))
		}
	}

	one := p.Pos.Add(0, dir)
	if !one.InBounds() || b.PieceAt(one) != nil {
		return moves
	}
	moves = append(moves, NewMove(p, one, nil))

	if !p.HasMoved {
		two := p.Pos.Add(0, 2*dir)
		if two.InBounds() && b.PieceAt(two) == nil {
			moves = append(moves, NewMove(p, two, nil))
		}
	}
	return moves
}

func (p *Piece) appendKingMoves(moves []Move, b *Board, checkLegality bool) []Move {
	start := len(moves)
	moves = p.appendStepMoves(moves, b, kingOffsets)
	if !checkLegality {
		return moves
	}

	attacked := b.AttackedSquares(p)
	kept := moves[:start]
	for _, m := range moves[start:] {
		if !attacked.IsSet(m.To) {
			kept = append(kept, m)
		}
	}
	return kept
}
