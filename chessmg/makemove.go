package chessmg

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	move         Move
	prevPos      Position
	prevHasMoved bool
	seq          int
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// PerformMove applies m without any legality check: the captured piece
// leaves the mapping, the mover is relocated and marked as moved.
func (b *Board) PerformMove(m Move) MoveState {
	mover := m.Piece
	st := MoveState{
		move:         m,
		prevPos:      mover.Pos,
		prevHasMoved: mover.HasMoved,
	}

	if m.Captured != nil {
		delete(b.squares, m.Captured.Pos.Square())
	}
	delete(b.squares, mover.Pos.Square())
	mover.Pos = m.To
	mover.HasMoved = true
	b.squares[m.To.Square()] = mover

	b.seq++
	st.seq = b.seq
	return st
}

// UndoMove reverts the PerformMove that produced st. States must be undone
// in strict LIFO order; anything else panics with *IllegalUndoError.
func (b *Board) UndoMove(st MoveState) {
	mover := st.move.Piece
	switch {
	case mover == nil || st.seq == 0:
		panic(&IllegalUndoError{Reason: "empty move state"})
	case st.seq != b.seq:
		panic(&IllegalUndoError{Reason: "move state is not the most recent one"})
	case b.squares[st.move.To.Square()] != mover || mover.Pos != st.move.To:
		panic(&IllegalUndoError{Reason: "mover is no longer on " + st.move.To.String()})
	}

	delete(b.squares, st.move.To.Square())
	mover.Pos = st.prevPos
	mover.HasMoved = st.prevHasMoved
	b.squares[st.prevPos.Square()] = mover

	if captured := st.move.Captured; captured != nil {
		b.squares[captured.Pos.Square()] = captured
	}
	b.seq--
}

// Apply plays a move and returns an undo closure.
func (b *Board) Apply(m Move) func() {
	st := b.PerformMove(m)
	return func() { b.UndoMove(st) }
}
