// Command attacks prints the attack set of a piece on a square, either on an
// explicit occupancy or on the board of a FEN.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"chess-core/attacks"
	"chess-core/chess"
	"chess-core/position"
	"chess-core/render"
)

func main() {
	pieceFlag := flag.String("piece", "Q", "Piece as a FEN letter (uppercase white, lowercase black)")
	squareFlag := flag.String("square", "d4", "Square of the piece")
	occFlag := flag.String("occupancy", "0", "Occupied squares as a 64-bit number (hex with 0x prefix)")
	fen := flag.String("fen", "", "Take the occupancy from this position instead")
	svgOut := flag.String("svg", "", "Also write an SVG diagram to this file")
	flag.Parse()

	if len(*pieceFlag) != 1 {
		log.Fatalf("-piece must be a single letter, got %q", *pieceFlag)
	}
	piece, ok := chess.PieceFromChar((*pieceFlag)[0])
	if !ok {
		log.Fatalf("unknown piece %q", *pieceFlag)
	}
	sq, ok := chess.ParseSquare(*squareFlag)
	if !ok {
		log.Fatalf("invalid square %q", *squareFlag)
	}

	var board *position.Board
	var occupied chess.Bitboard
	if *fen != "" {
		b, err := position.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("parse FEN: %v", err)
		}
		board = &b
		occupied = b.Occupied()
	} else {
		n, err := strconv.ParseUint(*occFlag, 0, 64)
		if err != nil {
			log.Fatalf("parse occupancy: %v", err)
		}
		occupied = chess.Bitboard(n)
	}

	a := attacks.Attacks(sq, piece, occupied)
	fmt.Printf("%c on %s attacks %d squares (%#016x)\n", piece.Char(), sq, a.Count(), uint64(a))
	if board != nil {
		fmt.Print(render.ASCII(board, a))
	} else {
		fmt.Print(a)
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			log.Fatalf("create %s: %v", *svgOut, err)
		}
		defer f.Close()
		if err := render.SVG(f, board, a); err != nil {
			log.Fatalf("write %s: %v", *svgOut, err)
		}
	}
}
