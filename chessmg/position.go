package chessmg

import "errors"

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// Position is a (file, rank) pair. File 0 is the a-file, rank 0 is White's back rank.
type Position struct {
	File int
	Rank int
}

// Pos is shorthand for Position{File: file, Rank: rank}.
func Pos(file, rank int) Position { return Position{File: file, Rank: rank} }

// InBounds reports whether both coordinates are within [0,7].
func (p Position) InBounds() bool {
	return p.File >= 0 && p.File <= 7 && p.Rank >= 0 && p.Rank <= 7
}

// Add returns the position offset by (df, dr).
func (p Position) Add(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// Square converts an in-bounds position to its square index.
func (p Position) Square() Square { return Square(p.Rank*8 + p.File) }

func (p Position) String() string {
	if !p.InBounds() {
		return "??"
	}
	return string([]byte{'a' + byte(p.File), '1' + byte(p.Rank)})
}

// Position returns the coordinates of the square.
func (s Square) Position() Position { return Position{File: int(s) % 8, Rank: int(s) / 8} }

func (s Square) String() string { return s.Position().String() }

// ParsePosition converts algebraic notation ("e4") into a Position.
func ParsePosition(alg string) (Position, error) {
	if len(alg) != 2 {
		return Position{}, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, errors.New("invalid algebraic square")
	}
	return Position{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

// MustPosition is ParsePosition for literals; it panics on bad input.
func MustPosition(alg string) Position {
	p, err := ParsePosition(alg)
	if err != nil {
		panic(err)
	}
	return p
}
