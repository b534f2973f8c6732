package attacks

import "chess-core/chess"

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]chess.Bitboard
var kingAttacks [64]chess.Bitboard

// pawnAttacks[color][sq] gives the squares a pawn of color captures on from sq.
var pawnAttacks [2][64]chess.Bitboard

var (
	knightDeltas = [][2]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	}
	kingDeltas = [][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
	whitePawnDeltas = [][2]int{{-1, 1}, {1, 1}}
	blackPawnDeltas = [][2]int{{-1, -1}, {1, -1}}
)

// stepAttacks collects the targets of fixed (file, rank) deltas that stay on
// the board.
func stepAttacks(sq chess.Square, deltas [][2]int) chess.Bitboard {
	var bb chess.Bitboard
	for _, d := range deltas {
		if to, ok := sq.Offset(d[0], d[1]); ok {
			bb = bb.With(to)
		}
	}
	return bb
}

// initLeaperTables precomputes attack bitboards for knights, kings and pawn captures.
func initLeaperTables() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		knightAttacks[sq] = stepAttacks(sq, knightDeltas)
		kingAttacks[sq] = stepAttacks(sq, kingDeltas)
		pawnAttacks[chess.White][sq] = stepAttacks(sq, whitePawnDeltas)
		pawnAttacks[chess.Black][sq] = stepAttacks(sq, blackPawnDeltas)
	}
}
