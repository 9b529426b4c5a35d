package engine

import (
	"time"

	mg "negamax-chess/chessmg"
)

// TimeHandler tracks the deadline of one search. A zero limit means no deadline.
type TimeHandler struct {
	start       time.Time
	timeForMove time.Time
	limited     bool
}

func (th *TimeHandler) StartTime(limit time.Duration) {
	th.start = time.Now()
	th.limited = limit > 0
	if th.limited {
		th.timeForMove = th.start.Add(limit)
	}
}

// TimeStatus reports true once the deadline has passed.
func (th *TimeHandler) TimeStatus() bool {
	return th.limited && th.timeForMove.Before(time.Now())
}

// Elapsed is the time since StartTime.
func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

// MoveTimeFromClock turns a game clock into a per-move budget: a share of the
// remaining time based on how many moves the position probably has left,
// plus most of the increment.
func MoveTimeFromClock(b *mg.Board, remaining, increment time.Duration) time.Duration {
	const overhead = 30 * time.Millisecond
	const minMove = 5 * time.Millisecond
	const maxFrac = 0.7
	const panicThresh = time.Second
	const panicFrac = 0.9

	movesLeft := estimateMovesRemaining(GetPiecePhase(b))

	var moveTime time.Duration
	switch {
	case increment > 0 && remaining < panicThresh:
		moveTime = time.Duration(float64(increment) * panicFrac)
	case increment > 0:
		moveTime = remaining/time.Duration(movesLeft) + increment
	default:
		moveTime = remaining / 40
	}

	if ceiling := time.Duration(float64(remaining) * maxFrac); moveTime > ceiling {
		moveTime = ceiling
	}
	if moveTime > remaining-overhead {
		moveTime = remaining - overhead
	}
	if moveTime < minMove {
		moveTime = minMove
	}
	return moveTime
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/TotalPhase + 20
}
