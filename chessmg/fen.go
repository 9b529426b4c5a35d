package chessmg

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenDefaults fills in the fields after piece placement when a FEN is cut short.
var fenDefaults = []string{"w", "-", "-", "0", "1"}

// ParseFEN builds a board from a FEN string and returns the side to move.
// Only piece placement and side to move are used: castling and en passant
// fields are accepted but have no meaning for this board.
func ParseFEN(fen string) (b *Board, side Color, err error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, White, &ConfigurationError{Reason: "empty FEN"}
	}
	if err := checkPlacement(fields[0]); err != nil {
		return nil, White, err
	}
	if len(fields) > 1 && fields[1] != "w" && fields[1] != "b" {
		return nil, White, &ConfigurationError{Reason: fmt.Sprintf("invalid side to move %q", fields[1])}
	}
	for len(fields) < 6 {
		fields = append(fields, fenDefaults[len(fields)-1])
	}

	defer func() {
		if r := recover(); r != nil {
			b, err = nil, &ConfigurationError{Reason: fmt.Sprintf("FEN rejected: %v", r)}
		}
	}()
	dt := dragontoothmg.ParseFen(strings.Join(fields, " "))

	b = NewBoard()
	for _, s := range []struct {
		color Color
		bbs   *dragontoothmg.Bitboards
	}{{White, &dt.White}, {Black, &dt.Black}} {
		for _, pl := range bitboardPlanes(s.bbs) {
			for x := *pl.bb; x != 0; x &= x - 1 {
				sq := Square(bits.TrailingZeros64(x))
				if err := b.Put(setupPiece(pl.pt, s.color, sq.Position())); err != nil {
					return nil, White, err
				}
			}
		}
	}
	if !dt.Wtomove {
		side = Black
	}
	return b, side, nil
}

type bitboardPlane struct {
	pt PieceType
	bb *uint64
}

func bitboardPlanes(bbs *dragontoothmg.Bitboards) []bitboardPlane {
	return []bitboardPlane{
		{PieceTypePawn, &bbs.Pawns},
		{PieceTypeKnight, &bbs.Knights},
		{PieceTypeBishop, &bbs.Bishops},
		{PieceTypeRook, &bbs.Rooks},
		{PieceTypeQueen, &bbs.Queens},
		{PieceTypeKing, &bbs.Kings},
	}
}

// checkPlacement validates the piece placement field before it reaches the
// FEN parser, which does not report malformed input.
func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ConfigurationError{Reason: fmt.Sprintf("FEN has %d ranks, want 8", len(ranks))}
	}
	for i, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
			default:
				return &ConfigurationError{Reason: fmt.Sprintf("FEN rank %d has invalid character %q", 8-i, ch)}
			}
		}
		if files != 8 {
			return &ConfigurationError{Reason: fmt.Sprintf("FEN rank %d covers %d files, want 8", 8-i, files)}
		}
	}
	return nil
}

// Bitboards returns the per-type occupancy of color c in dragontoothmg's layout.
func (b *Board) Bitboards(c Color) dragontoothmg.Bitboards {
	var bbs dragontoothmg.Bitboards
	planes := bitboardPlanes(&bbs)
	for sq, p := range b.squares {
		if p.Color != c {
			continue
		}
		bit := uint64(1) << uint(sq)
		*planes[p.Type-1].bb |= bit
		bbs.All |= bit
	}
	return bbs
}

// ToFEN renders the board as FEN with side to move set. Castling and en
// passant are always empty.
func (b *Board) ToFEN(side Color) string {
	dt := dragontoothmg.Board{
		Wtomove:    side == White,
		Fullmoveno: 1,
		White:      b.Bitboards(White),
		Black:      b.Bitboards(Black),
	}
	return dt.ToFen()
}
