package chessmg

import "fmt"

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// PieceValue is the fixed material value per type, in centipawns.
// The king's value has to outweigh every positional term combined.
var PieceValue = [7]int{
	PieceTypePawn:   100,
	PieceTypeKnight: 320,
	PieceTypeBishop: 330,
	PieceTypeRook:   500,
	PieceTypeQueen:  900,
	PieceTypeKing:   20000,
}

var typeNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) < len(typeNames) {
		return typeNames[pt]
	}
	return "invalid"
}

// Piece is a single board-owned chessman. Captures refer to a specific
// *Piece, so pieces are always handled by pointer.
type Piece struct {
	Type     PieceType
	Color    Color
	Pos      Position
	HasMoved bool
	Value    int
}

// NewPiece creates an unmoved piece with the material value for its type.
func NewPiece(pt PieceType, c Color, pos Position) *Piece {
	return &Piece{Type: pt, Color: c, Pos: pos, Value: PieceValue[pt]}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Color, p.Type, p.Pos)
}

// layoutLetter is the type letter used by layout files; knights are 'h'.
func (pt PieceType) layoutLetter() byte {
	switch pt {
	case PieceTypePawn:
		return 'p'
	case PieceTypeKnight:
		return 'h'
	case PieceTypeBishop:
		return 'b'
	case PieceTypeRook:
		return 'r'
	case PieceTypeQueen:
		return 'q'
	case PieceTypeKing:
		return 'k'
	default:
		return 'x'
	}
}

func typeFromLayoutLetter(ch byte) PieceType {
	switch ch {
	case 'p':
		return PieceTypePawn
	case 'h':
		return PieceTypeKnight
	case 'b':
		return PieceTypeBishop
	case 'r':
		return PieceTypeRook
	case 'q':
		return PieceTypeQueen
	case 'k':
		return PieceTypeKing
	default:
		return PieceTypeNone
	}
}

// pawnHomeRank is the rank a pawn of the given color starts on.
func pawnHomeRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// pawnDir is the forward rank step for a pawn of the given color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}
