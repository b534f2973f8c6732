package position

import (
	"math/rand"

	"chess-core/chess"
)

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][7][64]uint64 // [color][role][square], role 0 unused
var zobristCastle [16]uint64      // one key per castling rights state
var zobristEnPassant [8]uint64    // one key per en passant file
var zobristSide uint64            // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range zobristPiece {
		for _, r := range chess.Roles {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][r][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the hash of the board from scratch. Play keeps
// the stored hash up to date incrementally; this is the reference for it.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for c := chess.White; c <= chess.Black; c++ {
		for _, r := range chess.Roles {
			bb := b.byColor[c] & b.byRole[r]
			for bb != 0 {
				key ^= zobristPiece[c][r][bb.PopFirst()]
			}
		}
	}
	key ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	if b.turn == chess.Black {
		key ^= zobristSide
	}
	return key
}
