package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	mg "negamax-chess/chessmg"
)

func main() {
	input := flag.String("in", "", "Input layout file (omit to use -fen)")
	fen := flag.String("fen", "", "FEN to convert into a layout")
	output := flag.String("out", "", "Output file (default: stdout)")
	black := flag.Bool("black", false, "Black to move in the produced FEN")
	draw := flag.Bool("draw", false, "Also print a diagram of the position")

	flag.Parse()

	if (*input == "") == (*fen == "") {
		fmt.Println("Usage: convert -in <board.layout> [-black] | -fen <fen> [-out <file>]")
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var text string
	var board *mg.Board
	if *input != "" {
		b, err := mg.LoadLayoutFile(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reading layout failed: %v\n", err)
			os.Exit(1)
		}
		side := mg.White
		if *black {
			side = mg.Black
		}
		board, text = b, b.ToFEN(side)+"\n"
	} else {
		b, _, err := mg.ParseFEN(*fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reading FEN failed: %v\n", err)
			os.Exit(1)
		}
		board, text = b, b.Layout()
	}

	if *draw {
		fmt.Fprint(os.Stderr, board.Draw())
	}
	if *output == "" {
		fmt.Print(text)
		return
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Writing output failed: %v\n", err)
		os.Exit(1)
	}
}
