package engine

import (
	"math/rand"

	"golang.org/x/exp/slices"

	mg "negamax-chess/chessmg"
)

// OrderMode selects how sibling moves are enumerated. It only affects how
// much gets pruned and which of several equal-scoring moves is picked.
type OrderMode int

const (
	// OrderNatural keeps generation order (ascending origin square).
	OrderNatural OrderMode = iota
	// OrderCaptures puts captures first, most valuable victim / least valuable attacker.
	OrderCaptures
	// OrderRandom shuffles with the searcher's seeded generator.
	OrderRandom
)

func (o OrderMode) String() string {
	switch o {
	case OrderCaptures:
		return "captures"
	case OrderRandom:
		return "random"
	default:
		return "natural"
	}
}

// ParseOrderMode accepts the names produced by OrderMode.String.
func ParseOrderMode(s string) (OrderMode, bool) {
	switch s {
	case "natural", "":
		return OrderNatural, true
	case "captures":
		return OrderCaptures, true
	case "random":
		return OrderRandom, true
	}
	return OrderNatural, false
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 15, 14, 13, 12, 11, 10}, // victim Pawn
	{0, 25, 24, 23, 22, 21, 20}, // victim Knight
	{0, 35, 34, 33, 32, 31, 30}, // victim Bishop
	{0, 45, 44, 43, 42, 41, 40}, // victim Rook
	{0, 55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 65, 64, 63, 62, 61, 60}, // victim King
}

func captureScore(m mg.Move) uint16 {
	if m.Captured == nil {
		return 0
	}
	return mvvLva[m.Captured.Type][m.Piece.Type]
}

// captureBase lifts every capture above every killer.
const captureBase = 100

// orderMoves sorts moves in place. In capture mode, captures come first
// by MVV-LVA, then the killers of ply when killers is non-nil, then the
// remaining quiet moves in generation order.
func orderMoves(moves []mg.Move, mode OrderMode, rng *rand.Rand, killers *KillerStruct, ply int) {
	switch mode {
	case OrderCaptures:
		score := func(m mg.Move) uint16 {
			if m.Captured != nil {
				return captureBase + captureScore(m)
			}
			if killers != nil {
				return killers.killerRank(m.Encode(), ply)
			}
			return 0
		}
		slices.SortStableFunc(moves, func(a, b mg.Move) bool {
			return score(a) > score(b)
		})
	case OrderRandom:
		rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
}

// moveToFront moves the first move equal to pv to index 0, keeping the
// relative order of the others.
func moveToFront(moves []mg.Move, pv mg.Move) {
	idx := slices.IndexFunc(moves, func(m mg.Move) bool {
		return m.Piece == pv.Piece && m.To == pv.To
	})
	if idx <= 0 {
		return
	}
	first := moves[idx]
	copy(moves[1:idx+1], moves[:idx])
	moves[0] = first
}
