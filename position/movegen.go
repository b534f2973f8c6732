package position

import (
	"chess-core/attacks"
	"chess-core/chess"
)

var (
	standardPromotions = []chess.Role{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
	giveawayPromotions = []chess.Role{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.King}
)

// addTargets appends a move from sq to every square of targets.
func addTargets(dst []chess.Move, from chess.Square, targets chess.Bitboard) []chess.Move {
	for targets != 0 {
		dst = append(dst, chess.NormalMove(from, targets.PopFirst()))
	}
	return dst
}

// addPawnMove appends a pawn move, expanded into every promotion when it
// lands on the last rank.
func addPawnMove(dst []chess.Move, from, to chess.Square, promos []chess.Role) []chess.Move {
	if r := to.Rank(); r == 0 || r == 7 {
		for _, role := range promos {
			dst = append(dst, chess.PromotionMove(from, to, role))
		}
		return dst
	}
	return append(dst, chess.NormalMove(from, to))
}

// genPieceMoves appends pseudo-legal moves of pawns, knights, bishops, rooks
// and queens of the side to move that land on target. En passant and king
// moves are left to the variant.
func (b *Board) genPieceMoves(dst []chess.Move, target chess.Bitboard, promos []chess.Role) []chess.Move {
	us := b.turn
	ours, theirs := b.byColor[us], b.byColor[us.Other()]
	occ := ours | theirs

	knights := ours & b.byRole[chess.Knight]
	for knights != 0 {
		from := knights.PopFirst()
		dst = addTargets(dst, from, attacks.KnightAttacks(from)&target)
	}

	queens := b.byRole[chess.Queen]
	diagonal := ours & (b.byRole[chess.Bishop] | queens)
	for diagonal != 0 {
		from := diagonal.PopFirst()
		dst = addTargets(dst, from, attacks.BishopAttacks(from, occ)&target)
	}
	straight := ours & (b.byRole[chess.Rook] | queens)
	for straight != 0 {
		from := straight.PopFirst()
		dst = addTargets(dst, from, attacks.RookAttacks(from, occ)&target)
	}

	forward := chess.Fold(us, 1, -1)
	startRank := chess.Fold(us, 1, 6)
	pawns := ours & b.byRole[chess.Pawn]
	for pawns != 0 {
		from := pawns.PopFirst()

		captures := attacks.PawnAttacks(us, from) & theirs & target
		for captures != 0 {
			dst = addPawnMove(dst, from, captures.PopFirst(), promos)
		}

		one, ok := from.Offset(0, forward)
		if !ok || occ.Contains(one) {
			continue
		}
		if target.Contains(one) {
			dst = addPawnMove(dst, from, one, promos)
		}
		if from.Rank() == startRank {
			two, _ := one.Offset(0, forward)
			if !occ.Contains(two) && target.Contains(two) {
				dst = append(dst, chess.NormalMove(from, two))
			}
		}
	}
	return dst
}

// epCapturers returns the pawns of the side to move that can capture en
// passant.
func (b *Board) epCapturers() chess.Bitboard {
	if b.epSquare == NoSquare {
		return chess.Empty
	}
	us := b.turn
	return attacks.PawnAttacks(us.Other(), b.epSquare) & b.Pieces(chess.Pawn.Of(us))
}

// epCaptured returns the square of the pawn removed by an en passant capture.
func (b *Board) epCaptured() chess.Square {
	sq, _ := b.epSquare.Offset(0, chess.Fold(b.turn, -1, 1))
	return sq
}

type castle struct {
	right        CastlingRights
	king, kingTo chess.Square
	rook         chess.Square
}

var castles = [2][2]castle{
	chess.White: {
		{CastlingWhiteK, chess.E1, chess.G1, chess.H1},
		{CastlingWhiteQ, chess.E1, chess.C1, chess.A1},
	},
	chess.Black: {
		{CastlingBlackK, chess.E8, chess.G8, chess.H8},
		{CastlingBlackQ, chess.E8, chess.C8, chess.A8},
	},
}

// genCastling appends castling moves, encoded as the king moving two files.
// The caller guarantees the side to move is not in check.
func (b *Board) genCastling(dst []chess.Move, king chess.Square) []chess.Move {
	us, them := b.turn, b.turn.Other()
	occ := b.Occupied()
	rooks := b.Pieces(chess.Rook.Of(us))

	for _, c := range castles[us] {
		if b.castling&c.right == 0 || king != c.king || !rooks.Contains(c.rook) {
			continue
		}
		if attacks.Between(c.king, c.rook)&occ != 0 {
			continue
		}
		path := attacks.Between(c.king, c.kingTo).With(c.kingTo)
		safe := true
		for path != 0 {
			if b.AttackersTo(path.PopFirst(), them, occ).Any() {
				safe = false
				break
			}
		}
		if safe {
			dst = append(dst, chess.NormalMove(c.king, c.kingTo))
		}
	}
	return dst
}
