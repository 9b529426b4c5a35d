package chessmg

// Perft counts the leaf nodes of the move tree of the given depth, with side
// to move first. Moves come from MovesOf with king safety checked, so the
// counts follow this board's rules rather than full chess legality.
func Perft(b *Board, side Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.MovesOf(side, true)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.PerformMove(m)
		nodes += Perft(b, side.Opposite(), depth-1)
		b.UndoMove(st)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in coordinate notation.
func PerftDivide(b *Board, side Color, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.MovesOf(side, true) {
		st := b.PerformMove(m)
		result[m.String()] += Perft(b, side.Opposite(), depth-1)
		b.UndoMove(st)
	}
	return result
}
