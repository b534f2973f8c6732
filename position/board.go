package position

import (
	"fmt"

	"chess-core/attacks"
	"chess-core/chess"
)

// NoSquare marks the absence of an en passant square.
const NoSquare chess.Square = 64

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// castlingMask[sq] lists the rights lost when a piece leaves or lands on sq.
var castlingMask [64]CastlingRights

func init() {
	castlingMask[chess.A1] = CastlingWhiteQ
	castlingMask[chess.H1] = CastlingWhiteK
	castlingMask[chess.E1] = CastlingWhiteK | CastlingWhiteQ
	castlingMask[chess.A8] = CastlingBlackQ
	castlingMask[chess.H8] = CastlingBlackK
	castlingMask[chess.E8] = CastlingBlackK | CastlingBlackQ
}

// Board is the piece placement and game state shared by all variants. It is
// a plain value: copying a Board copies the whole position.
type Board struct {
	byColor [2]chess.Bitboard
	byRole  [7]chess.Bitboard // indexed by chess.Role, [NoRole] stays empty

	turn     chess.Color
	castling CastlingRights

	// En passant target square after a double push, otherwise NoSquare.
	epSquare chess.Square

	halfmoveClock  int
	fullmoveNumber int

	hash uint64
}

func (b *Board) put(p chess.Piece, sq chess.Square) {
	bb := sq.Bitboard()
	b.byColor[p.Color] |= bb
	b.byRole[p.Role] |= bb
	b.hash ^= zobristPiece[p.Color][p.Role][sq]
}

func (b *Board) remove(p chess.Piece, sq chess.Square) {
	bb := sq.Bitboard()
	b.byColor[p.Color] &^= bb
	b.byRole[p.Role] &^= bb
	b.hash ^= zobristPiece[p.Color][p.Role][sq]
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	var c chess.Color
	switch {
	case b.byColor[chess.White].Contains(sq):
		c = chess.White
	case b.byColor[chess.Black].Contains(sq):
		c = chess.Black
	default:
		return chess.Piece{}, false
	}
	return b.roleAt(sq).Of(c), true
}

func (b *Board) roleAt(sq chess.Square) chess.Role {
	for _, r := range chess.Roles {
		if b.byRole[r].Contains(sq) {
			return r
		}
	}
	return chess.NoRole
}

// Occupied returns every occupied square.
func (b *Board) Occupied() chess.Bitboard { return b.byColor[chess.White] | b.byColor[chess.Black] }

// ByColor returns the squares occupied by side c.
func (b *Board) ByColor(c chess.Color) chess.Bitboard { return b.byColor[c] }

// ByRole returns the squares occupied by role r of either side.
func (b *Board) ByRole(r chess.Role) chess.Bitboard { return b.byRole[r] }

// Pieces returns the squares holding piece p.
func (b *Board) Pieces(p chess.Piece) chess.Bitboard { return b.byColor[p.Color] & b.byRole[p.Role] }

// Turn reports which side is to play.
func (b *Board) Turn() chess.Color { return b.turn }

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassantSquare returns the current en passant target square or NoSquare.
func (b *Board) EnPassantSquare() chess.Square { return b.epSquare }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the Zobrist key of the position.
func (b *Board) Hash() uint64 { return b.hash }

// King returns the square of c's king. With several kings (giveaway) the
// lowest one is returned.
func (b *Board) King(c chess.Color) (chess.Square, bool) {
	k := b.Pieces(chess.King.Of(c))
	if k.IsEmpty() {
		return 0, false
	}
	return k.First(), true
}

// AttackersTo returns the pieces of side by that attack sq given occupied.
func (b *Board) AttackersTo(sq chess.Square, by chess.Color, occupied chess.Bitboard) chess.Bitboard {
	queens := b.byRole[chess.Queen]
	return b.byColor[by] & (attacks.RookAttacks(sq, occupied)&(b.byRole[chess.Rook]|queens) |
		attacks.BishopAttacks(sq, occupied)&(b.byRole[chess.Bishop]|queens) |
		attacks.KnightAttacks(sq)&b.byRole[chess.Knight] |
		attacks.KingAttacks(sq)&b.byRole[chess.King] |
		attacks.PawnAttacks(by.Other(), sq)&b.byRole[chess.Pawn])
}

// Checkers returns the enemy pieces giving check to the side to move.
func (b *Board) Checkers() chess.Bitboard {
	king, ok := b.King(b.turn)
	if !ok {
		return chess.Empty
	}
	return b.AttackersTo(king, b.turn.Other(), b.Occupied())
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.Checkers().Any() }

// sliderBlockers returns the pieces of the side to move that are the only
// piece between their king and an enemy slider.
func (b *Board) sliderBlockers(king chess.Square) chess.Bitboard {
	us, them := b.turn, b.turn.Other()
	queens := b.byRole[chess.Queen]
	snipers := b.byColor[them] & (attacks.RookAttacks(king, chess.Empty)&(b.byRole[chess.Rook]|queens) |
		attacks.BishopAttacks(king, chess.Empty)&(b.byRole[chess.Bishop]|queens))

	occ := b.Occupied()
	var blockers chess.Bitboard
	for snipers != 0 {
		between := attacks.Between(king, snipers.PopFirst()) & occ
		if between.Any() && !between.MoreThanOne() {
			blockers |= between
		}
	}
	return blockers & b.byColor[us]
}

// validateCommon checks what every variant requires of a board.
func (b *Board) validateCommon() error {
	if b.byRole[chess.Pawn]&(chess.Rank1|chess.Rank8) != 0 {
		return fmt.Errorf("%w: pawn on a back rank", ErrInvalidPosition)
	}
	if b.epSquare != NoSquare {
		wantRank := chess.Fold(b.turn, 5, 2)
		if b.epSquare.Rank() != wantRank {
			return fmt.Errorf("%w: en passant square %s on wrong rank", ErrInvalidPosition, b.epSquare)
		}
		pushed, _ := b.epSquare.Offset(0, chess.Fold(b.turn, -1, 1))
		if b.Occupied().Contains(b.epSquare) || !b.Pieces(chess.Pawn.Of(b.turn.Other())).Contains(pushed) {
			return fmt.Errorf("%w: en passant square %s without a pushed pawn", ErrInvalidPosition, b.epSquare)
		}
	}
	return nil
}

// Validate checks the board against the rules of standard chess: one king
// per side and the side not to move not in check.
func (b *Board) Validate() error {
	if err := b.validateCommon(); err != nil {
		return err
	}
	for c := chess.White; c <= chess.Black; c++ {
		if n := b.Pieces(chess.King.Of(c)).Count(); n != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInvalidPosition, c, n)
		}
	}
	them := b.turn.Other()
	king, _ := b.King(them)
	if b.AttackersTo(king, b.turn, b.Occupied()).Any() {
		return fmt.Errorf("%w: %s is in check but not to move", ErrInvalidPosition, them)
	}
	return nil
}
