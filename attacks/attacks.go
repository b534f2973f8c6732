// Package attacks provides attack and ray tables for every piece.
//
// Leaper pieces (pawn captures, knight, king) use one precomputed bitboard
// per square. Sliding pieces use fixed-shift magic bitboards: the relevant
// occupancy of a square is multiplied by a per-square factor and the high
// bits index a single shared attack table. All tables are built once during
// package initialisation and are read-only afterwards, so lookups are safe
// for concurrent use.
//
//	occupied := chess.Rank6
//	a := attacks.BishopAttacks(chess.C2, occupied)
//	a.Contains(chess.G6) // true
//	a.Contains(chess.H7) // false
package attacks

import "chess-core/chess"

// PawnAttacks returns the squares a pawn of color c on sq captures on.
func PawnAttacks(c chess.Color, sq chess.Square) chess.Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq chess.Square) chess.Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks (no castling).
func KingAttacks(sq chess.Square) chess.Bitboard {
	return kingAttacks[sq]
}

// RookAttacks returns the squares a rook on sq attacks given the occupied
// squares. The first blocker in each direction is included.
func RookAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	m := &rookMagics[sq]
	idx := int((m.Factor*uint64(occupied&m.Mask))>>rookShift) + m.Offset
	return attackAt(idx)
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// occupied squares.
func BishopAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	m := &bishopMagics[sq]
	idx := int((m.Factor*uint64(occupied&m.Mask))>>bishopShift) + m.Offset
	return attackAt(idx)
}

// QueenAttacks returns the squares a queen on sq attacks. Rook and bishop
// lines are disjoint, so xor is the union.
func QueenAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return RookAttacks(sq, occupied) ^ BishopAttacks(sq, occupied)
}

// RookMask returns the potential blockers for a rook on sq.
func RookMask(sq chess.Square) chess.Bitboard { return rookMagics[sq].Mask }

// BishopMask returns the potential blockers for a bishop on sq.
func BishopMask(sq chess.Square) chess.Bitboard { return bishopMagics[sq].Mask }

// Attacks returns the squares piece attacks from sq given the occupied squares.
func Attacks(sq chess.Square, piece chess.Piece, occupied chess.Bitboard) chess.Bitboard {
	switch piece.Role {
	case chess.Pawn:
		return PawnAttacks(piece.Color, sq)
	case chess.Knight:
		return KnightAttacks(sq)
	case chess.Bishop:
		return BishopAttacks(sq, occupied)
	case chess.Rook:
		return RookAttacks(sq, occupied)
	case chess.Queen:
		return QueenAttacks(sq, occupied)
	case chess.King:
		return KingAttacks(sq)
	default:
		return chess.Empty
	}
}
