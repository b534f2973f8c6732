// Command uci speaks enough of the UCI protocol to drive perft from GUIs and
// comparison scripts: position setup with moves, "go perft N", "d" to show
// the board, and the UCI_Variant option to switch to giveaway.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chess-core/chess"
	"chess-core/perft"
	"chess-core/position"
	"chess-core/render"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// game is the current position of the session, whatever its variant.
type game interface {
	fen() string
	board() position.Board
	play(m chess.Move) (game, error)
	divide(depth int) []perft.Entry
}

type variantPosition[P any] interface {
	position.Position[P]
	FEN() string
	Board() position.Board
}

type session[P variantPosition[P]] struct{ pos P }

func (s session[P]) fen() string { return s.pos.FEN() }

func (s session[P]) board() position.Board { return s.pos.Board() }

func (s session[P]) divide(d int) []perft.Entry { return perft.SortedDivide(s.pos, d) }

func (s session[P]) play(m chess.Move) (game, error) {
	next, err := s.pos.Play(m)
	if err != nil {
		return s, err
	}
	return session[P]{pos: next}, nil
}

func newGame(variant, fen string) (game, error) {
	switch variant {
	case "chess", "standard":
		pos, err := position.ChessFromFEN(fen)
		if err != nil {
			return nil, err
		}
		return session[position.Chess]{pos: pos}, nil
	case "giveaway", "antichess":
		pos, err := position.GiveawayFromFEN(fen)
		if err != nil {
			return nil, err
		}
		return session[position.Giveaway]{pos: pos}, nil
	default:
		return nil, fmt.Errorf("unknown variant %s", variant)
	}
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	variant := "chess"
	g, _ := newGame(variant, position.StartFEN)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-core perft")
			fmt.Fprintln(out, "id author chess-core")
			fmt.Fprintln(out, "option name UCI_Variant type combo default chess var chess var giveaway")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			g, _ = newGame(variant, position.StartFEN)
		case "quit":
			return
		case "setoption":
			// setoption name UCI_Variant value giveaway
			if len(tokens) == 5 && strings.EqualFold(tokens[2], "UCI_Variant") && strings.EqualFold(tokens[3], "value") {
				v := strings.ToLower(tokens[4])
				next, err := newGame(v, startFEN(v))
				if err != nil {
					fmt.Fprintln(out, "info string", err)
					continue
				}
				variant, g = v, next
				continue
			}
			fmt.Fprintln(out, "info string Unsupported option")
		case "position":
			next, err := setPosition(variant, tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			g = next
		case "go":
			if len(tokens) != 3 || strings.ToLower(tokens[1]) != "perft" {
				fmt.Fprintln(out, "info string Only go perft <depth> is supported")
				continue
			}
			depth, err := strconv.Atoi(tokens[2])
			if err != nil || depth < 1 {
				fmt.Fprintln(out, "info string Malformed perft depth", tokens[2])
				continue
			}
			entries := g.divide(depth)
			for _, e := range entries {
				fmt.Fprintf(out, "%s: %d\n", e.Move, e.Nodes)
			}
			fmt.Fprintf(out, "\nNodes searched: %d\n\n", perft.Total(entries))
		case "d":
			b := g.board()
			fmt.Fprint(out, render.ASCII(&b, chess.Empty))
			fmt.Fprintf(out, "Fen: %s\nKey: %016X\n", g.fen(), b.Hash())
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

func startFEN(variant string) string {
	if variant == "giveaway" || variant == "antichess" {
		return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	}
	return position.StartFEN
}

// setPosition handles "position [startpos | fen <fen>] [moves <m1> ...]".
func setPosition(variant string, args []string) (game, error) {
	if len(args) == 0 {
		return nil, errors.New("malformed position command")
	}
	var fen string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = startFEN(variant)
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		if i == 0 {
			return nil, errors.New("invalid fen position")
		}
		fen = strings.Join(rest[:i], " ")
		rest = rest[i:]
	default:
		return nil, errors.New("invalid position subcommand")
	}

	g, err := newGame(variant, fen)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return g, nil
	}
	for _, tok := range rest[1:] { // for each move
		m, ok := chess.ParseUCI(strings.ToLower(tok))
		if !ok {
			return nil, fmt.Errorf("move %s is not UCI", tok)
		}
		if g, err = g.play(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}
