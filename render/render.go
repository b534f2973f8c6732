// Package render draws boards and attack sets as text diagrams and SVG.
package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"chess-core/chess"
	"chess-core/position"
)

// SquareSize is the edge of one SVG square in pixels.
const SquareSize = 45

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cd5c5c;fill-opacity:0.6"
	labelStyle    = "font-family:sans-serif;font-size:10px;fill:#333"
	pieceStyle    = "font-family:serif;font-size:36px;text-anchor:middle;dominant-baseline:central"
)

var glyphs = map[chess.Piece]string{
	chess.King.Of(chess.White):   "♔",
	chess.Queen.Of(chess.White):  "♕",
	chess.Rook.Of(chess.White):   "♖",
	chess.Bishop.Of(chess.White): "♗",
	chess.Knight.Of(chess.White): "♘",
	chess.Pawn.Of(chess.White):   "♙",
	chess.King.Of(chess.Black):   "♚",
	chess.Queen.Of(chess.Black):  "♛",
	chess.Rook.Of(chess.Black):   "♜",
	chess.Bishop.Of(chess.Black): "♝",
	chess.Knight.Of(chess.Black): "♞",
	chess.Pawn.Of(chess.Black):   "♟",
}

// ASCII draws the board with FEN letters, '.' for empty squares and '*' for
// empty squares in mark. Rank 8 is on top; file and rank labels frame it.
func ASCII(b *position.Board, mark chess.Bitboard) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			ch := byte('.')
			if p, ok := b.PieceAt(sq); ok {
				ch = p.Char()
			} else if mark.Contains(sq) {
				ch = '*'
			}
			sb.WriteByte(ch)
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// errWriter remembers the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// SVG writes an SVG diagram of b with the squares of highlight tinted. A nil
// board draws only the highlighted squares, which suits attack sets.
func SVG(w io.Writer, b *position.Board, highlight chess.Bitboard) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(8*SquareSize, 8*SquareSize)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			x, y := file*SquareSize, (7-rank)*SquareSize

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, SquareSize, SquareSize, fill)
			if highlight.Contains(sq) {
				canvas.Rect(x, y, SquareSize, SquareSize, highlightFill)
			}
			if b != nil {
				if p, ok := b.PieceAt(sq); ok {
					canvas.Text(x+SquareSize/2, y+SquareSize/2, glyphs[p], pieceStyle)
				}
			}
		}
	}
	for file := 0; file < 8; file++ {
		canvas.Text(file*SquareSize+2, 8*SquareSize-2, string(rune('a'+file)), labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		canvas.Text(8*SquareSize-8, (7-rank)*SquareSize+10, string(rune('1'+rank)), labelStyle)
	}

	canvas.End()
	return ew.err
}
