package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// KillerStruct remembers, per ply, the last two quiet moves that caused a
// beta cutoff. Moves are kept in dragontoothmg's from/to encoding so they
// match across siblings regardless of which piece instance made them.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]dragontoothmg.Move
}

func (k *KillerStruct) InsertKiller(move dragontoothmg.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// killerRank is 2 for the newest killer at ply, 1 for the older one, else 0.
func (k *KillerStruct) killerRank(move dragontoothmg.Move, ply int) uint16 {
	switch move {
	case 0:
		return 0
	case k.KillerMoves[ply][0]:
		return 2
	case k.KillerMoves[ply][1]:
		return 1
	}
	return 0
}
