package chessmg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StartLayout is the standard initial position in layout form.
const StartLayout = `br bh bb bq bk bb bh br
bp bp bp bp bp bp bp bp
xx xx xx xx xx xx xx xx
xx xx xx xx xx xx xx xx
xx xx xx xx xx xx xx xx
xx xx xx xx xx xx xx xx
wp wp wp wp wp wp wp wp
wr wh wb wq wk wb wh wr
`

const emptyToken = "xx"

// LoadLayoutFile reads a layout file from disk.
func LoadLayoutFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return LoadLayout(f)
}

// ParseLayout is LoadLayout over a string.
func ParseLayout(s string) (*Board, error) {
	return LoadLayout(strings.NewReader(s))
}

// LoadLayout builds a board from 8 lines of 8 space-separated tokens, rank 8
// first. A token is a color letter (w/b) followed by a type letter
// (p, r, h, b, q, k); "xx" is an empty square. Trailing blank lines are
// ignored; anything else malformed yields a *ConfigurationError.
func LoadLayout(r io.Reader) (*Board, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	line := 0
	blankSeen := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			blankSeen = line
			continue
		}
		if blankSeen > 0 {
			return nil, &ConfigurationError{Line: blankSeen, Reason: "blank line inside layout"}
		}
		if len(rows) == 8 {
			return nil, &ConfigurationError{Line: line, Reason: "more than 8 rows"}
		}
		tokens := strings.Fields(text)
		if len(tokens) != 8 {
			return nil, &ConfigurationError{Line: line, Reason: fmt.Sprintf("expected 8 tokens, got %d", len(tokens))}
		}
		rows = append(rows, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if len(rows) != 8 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("expected 8 rows, got %d", len(rows))}
	}

	b := NewBoard()
	for r, tokens := range rows {
		rank := 7 - r
		for file, tok := range tokens {
			if tok == emptyToken {
				continue
			}
			p, err := pieceFromToken(tok, Pos(file, rank))
			if err != nil {
				return nil, &ConfigurationError{Line: r + 1, Reason: err.Error()}
			}
			if err := b.Put(p); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func pieceFromToken(tok string, pos Position) (*Piece, error) {
	if len(tok) != 2 {
		return nil, fmt.Errorf("token %q at %s is not two characters", tok, pos)
	}
	var c Color
	switch tok[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return nil, fmt.Errorf("token %q at %s has unknown color %q", tok, pos, tok[0])
	}
	pt := typeFromLayoutLetter(tok[1])
	if pt == PieceTypeNone {
		return nil, fmt.Errorf("token %q at %s has unknown piece type %q", tok, pos, tok[1])
	}
	return setupPiece(pt, c, pos), nil
}

// setupPiece creates a piece for a freshly loaded position. A pawn that is
// not on its home rank has evidently moved and loses its double push.
func setupPiece(pt PieceType, c Color, pos Position) *Piece {
	p := NewPiece(pt, c, pos)
	if pt == PieceTypePawn && pos.Rank != pawnHomeRank(c) {
		p.HasMoved = true
	}
	return p
}

// Layout renders the board in layout form, rank 8 first.
func (b *Board) Layout() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			p := b.PieceAt(Pos(file, rank))
			if p == nil {
				sb.WriteString(emptyToken)
				continue
			}
			if p.Color == White {
				sb.WriteByte('w')
			} else {
				sb.WriteByte('b')
			}
			sb.WriteByte(p.Type.layoutLetter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NewStartBoard returns the standard initial position.
func NewStartBoard() *Board {
	b, err := ParseLayout(StartLayout)
	if err != nil {
		panic(err)
	}
	return b
}
