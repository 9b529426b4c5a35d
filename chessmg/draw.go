package chessmg

import "github.com/notnil/chess"

var drawPieces = [2][7]chess.Piece{
	White: {
		PieceTypePawn:   chess.WhitePawn,
		PieceTypeKnight: chess.WhiteKnight,
		PieceTypeBishop: chess.WhiteBishop,
		PieceTypeRook:   chess.WhiteRook,
		PieceTypeQueen:  chess.WhiteQueen,
		PieceTypeKing:   chess.WhiteKing,
	},
	Black: {
		PieceTypePawn:   chess.BlackPawn,
		PieceTypeKnight: chess.BlackKnight,
		PieceTypeBishop: chess.BlackBishop,
		PieceTypeRook:   chess.BlackRook,
		PieceTypeQueen:  chess.BlackQueen,
		PieceTypeKing:   chess.BlackKing,
	},
}

// Draw returns a text diagram of the board for terminals and debug output.
func (b *Board) Draw() string {
	m := make(map[chess.Square]chess.Piece, len(b.squares))
	for sq, p := range b.squares {
		m[chess.Square(sq)] = drawPieces[p.Color][p.Type]
	}
	return chess.NewBoard(m).Draw()
}
