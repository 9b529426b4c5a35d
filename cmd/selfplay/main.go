package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	mg "negamax-chess/chessmg"
	"negamax-chess/engine"
)

func main() {
	layoutPath := flag.String("layout", "", "starting layout file (default: initial position)")
	depth := flag.Int("depth", engine.DefaultDepth, "search depth")
	maxMoves := flag.Int("maxmoves", 40, "max plies to play")
	orderName := flag.String("order", "captures", "move ordering: natural, captures or random")
	seed := flag.Int64("seed", 0, "seed for random ordering")
	workers := flag.Int("workers", 1, "goroutines for the root moves")
	quiet := flag.Bool("quiet", false, "do not draw the final board")
	flag.Parse()

	order, ok := engine.ParseOrderMode(*orderName)
	if !ok {
		log.Fatalf("unknown move ordering %q", *orderName)
	}

	board := mg.NewStartBoard()
	if *layoutPath != "" {
		b, err := mg.LoadLayoutFile(*layoutPath)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		board = b
	}

	gameID := uuid.NewString()
	log.Printf("Game %s: depth %d, order %s", gameID, *depth, order)

	side := mg.White
	var played []string
	for i := 0; i < *maxMoves; i++ {
		log.Printf("--- Move %d, Side: %v ---", i+1, side)

		res, err := engine.Search(board, side, engine.SearchConfig{
			MaxDepth: *depth,
			Order:    order,
			Seed:     *seed + int64(i),
			Workers:  *workers,
		})
		if errors.Is(err, engine.ErrNoLegalMoves) {
			log.Printf("Game over: %v has no moves.", side)
			break
		}
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}

		fmt.Printf("BestMove: %v, Score: %d, Nodes: %d, Time: %v, NPS: %d\n",
			res.BestMove, res.Score, res.Stats.Nodes, res.TimeUsed,
			int64(float64(res.Stats.Nodes)/max(res.TimeUsed, time.Microsecond).Seconds()))

		board.PerformMove(res.BestMove)
		played = append(played, res.BestMove.String())
		side = side.Opposite()

		if board.King(mg.White) == nil || board.King(mg.Black) == nil {
			log.Printf("Game over: king captured.")
			break
		}
	}

	log.Printf("Game %s finished after %d plies: %v", gameID, len(played), played)
	if !*quiet {
		fmt.Print(board.Draw())
		fmt.Println(board.ToFEN(side))
	}
	os.Exit(0)
}
