package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	mg "negamax-chess/chessmg"
	"negamax-chess/engine"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// session is the state carried between protocol commands.
type session struct {
	out   io.Writer
	board *mg.Board
	side  mg.Color
	cfg   engine.SearchConfig
}

func newSession(out io.Writer) *session {
	return &session{
		out:   out,
		board: mg.NewStartBoard(),
		side:  mg.White,
		cfg:   engine.SearchConfig{Order: engine.OrderCaptures},
	}
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	s := newSession(out)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name negamax-chess")
			fmt.Fprintln(out, "id author negamax-chess developers")
			fmt.Fprintln(out, "option name Order type combo default captures var natural var captures var random")
			fmt.Fprintln(out, "option name Workers type spin default 1 min 1 max 64")
			fmt.Fprintln(out, "option name Seed type spin default 0")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			s.board, s.side = mg.NewStartBoard(), mg.White
		case "quit":
			return
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goCommand(tokens[1:])
		case "setoption":
			s.setOption(tokens[1:])
		case "d":
			fmt.Fprint(out, s.board.Draw())
			fmt.Fprintln(out, "Fen:", s.board.ToFEN(s.side))
		case "eval":
			engine.PrintEvaluation(out, s.board, s.side)
		case "moves":
			var list []string
			for _, m := range s.board.MovesOf(s.side, true) {
				list = append(list, m.String())
			}
			fmt.Fprintln(out, "info string moves", strings.Join(list, " "))
		case "perft":
			s.perft(tokens[1:])
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// position handles: position startpos|layout <path>|fen <fen...> [moves m1 m2 ...]
func (s *session) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "info string Malformed position command")
		return
	}
	movesAt := len(args)
	for i, a := range args {
		if strings.ToLower(a) == "moves" {
			movesAt = i
			break
		}
	}

	var board *mg.Board
	side := mg.White
	var err error
	switch strings.ToLower(args[0]) {
	case "startpos":
		board = mg.NewStartBoard()
	case "layout":
		if movesAt < 2 {
			fmt.Fprintln(s.out, "info string Missing layout path")
			return
		}
		board, err = mg.LoadLayoutFile(args[1])
		if err == nil && movesAt > 2 && strings.ToLower(args[2]) == "b" {
			side = mg.Black
		}
	case "fen":
		if movesAt < 2 {
			fmt.Fprintln(s.out, "info string Invalid fen position")
			return
		}
		board, side, err = mg.ParseFEN(strings.Join(args[1:movesAt], " "))
	default:
		fmt.Fprintln(s.out, "info string Invalid position subcommand")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "info string", err)
		return
	}

	if movesAt < len(args) {
		for _, moveStr := range args[movesAt+1:] {
			m, err := board.ParseMove(side, moveStr)
			if err != nil {
				fmt.Fprintln(s.out, "info string Move", moveStr, "not found for position", board.ToFEN(side))
				return
			}
			board.PerformMove(m)
			side = side.Opposite()
		}
	}
	s.board, s.side = board, side
}

// goCommand handles: go [depth N] [movetime ms] [wtime ms btime ms winc ms binc ms]
func (s *session) goCommand(args []string) {
	cfg := s.cfg
	cfg.Info = s.out
	var wTime, bTime, wInc, bInc, moveTime, depth int
	for i := 0; i < len(args); i++ {
		key := strings.ToLower(args[i])
		var target *int
		switch key {
		case "depth":
			target = &depth
		case "movetime":
			target = &moveTime
		case "wtime":
			target = &wTime
		case "btime":
			target = &bTime
		case "winc":
			target = &wInc
		case "binc":
			target = &bInc
		case "infinite":
			continue
		default:
			fmt.Fprintln(s.out, "info string Unknown go subcommand", key)
			continue
		}
		if i+1 >= len(args) {
			fmt.Fprintln(s.out, "info string Malformed go command option", key)
			return
		}
		i++
		v, err := strconv.Atoi(args[i])
		if err != nil {
			fmt.Fprintln(s.out, "info string Malformed go command option; could not convert", key)
			return
		}
		*target = v
	}

	clock, inc := wTime, wInc
	if s.side == mg.Black {
		clock, inc = bTime, bInc
	}
	switch {
	case depth > 0:
		cfg.MaxDepth = depth
	case moveTime > 0:
		cfg.MaxDepth = engine.MaxDepth
		cfg.TimeLimit = time.Duration(moveTime) * time.Millisecond
	case clock > 0:
		cfg.MaxDepth = engine.MaxDepth
		cfg.TimeLimit = engine.MoveTimeFromClock(s.board,
			time.Duration(clock)*time.Millisecond, time.Duration(inc)*time.Millisecond)
	default:
		cfg.MaxDepth = engine.DefaultDepth
	}

	res, err := engine.Search(s.board, s.side, cfg)
	if err != nil {
		fmt.Fprintln(s.out, "info string", err)
		fmt.Fprintln(s.out, "bestmove 0000")
		return
	}
	fmt.Fprintln(s.out, "bestmove", res.BestMove)
}

// setOption handles: setoption name <Name> value <Value>
func (s *session) setOption(args []string) {
	if len(args) != 4 || strings.ToLower(args[0]) != "name" || strings.ToLower(args[2]) != "value" {
		fmt.Fprintln(s.out, "info string Malformed setoption command")
		return
	}
	name, value := strings.ToLower(args[1]), args[3]
	switch name {
	case "order":
		mode, ok := engine.ParseOrderMode(strings.ToLower(value))
		if !ok {
			fmt.Fprintln(s.out, "info string Unknown order", value)
			return
		}
		s.cfg.Order = mode
	case "workers", "seed":
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(s.out, "info string Malformed option value", value)
			return
		}
		if name == "workers" {
			s.cfg.Workers = n
		} else {
			s.cfg.Seed = int64(n)
		}
	default:
		fmt.Fprintln(s.out, "info string Unknown option", args[1])
	}
}

func (s *session) perft(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "info string Missing perft depth")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth <= 0 {
		fmt.Fprintln(s.out, "info string Invalid perft depth", args[0])
		return
	}
	div := mg.PerftDivide(s.board, s.side, depth)
	keys := make([]string, 0, len(div))
	var sum uint64
	for k, n := range div {
		keys = append(keys, k)
		sum += n
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.out, "%s: %d\n", k, div[k])
	}
	fmt.Fprintf(s.out, "Total: %d\n", sum)
}
