package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	mg "negamax-chess/chessmg"
	"negamax-chess/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	orderFlag := flag.String("order", "captures", "move ordering: natural, captures or random")
	workersFlag := flag.Int("workers", 1, "goroutines for the root moves")
	noPrune := flag.Bool("noprune", false, "search full width (no alpha-beta cutoffs)")
	cuts := flag.Bool("cuts", false, "print cut statistics after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}
	order, ok := engine.ParseOrderMode(*orderFlag)
	if !ok {
		log.Fatalf("unknown move ordering %q", *orderFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := mg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	cfg := engine.SearchConfig{
		MaxDepth:       *depthFlag,
		Order:          order,
		Workers:        *workersFlag,
		DisablePruning: *noPrune,
		Info:           os.Stdout,
		PrintCuts:      *cuts,
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d order=%s\n", fen, cfg.MaxDepth, *repeatFlag, order)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		board, side, err := mg.ParseFEN(fen)
		if err != nil {
			log.Fatalf("bad fen: %v", err)
		}
		res, err := engine.Search(board, side, cfg)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		fmt.Printf("iteration %d: bestmove %v  score=%d nodes=%d time=%v\n",
			i+1, res.BestMove, res.Score, res.Stats.Nodes, res.TimeUsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
