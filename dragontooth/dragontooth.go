// Package dragontooth adapts the dragontoothmg move generator to the
// position.Position contract, so perft can run it side by side with the
// native generator.
package dragontooth

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-core/chess"
	"chess-core/position"
)

// Position wraps a dragontoothmg board. The board holds no pointers, so
// copying a Position copies the game state.
type Position struct {
	board dragontoothmg.Board
}

var _ position.Position[Position] = Position{}

// FromFEN validates fen as a standard chess position and loads it.
// dragontoothmg does not report parse errors itself.
func FromFEN(fen string) (Position, error) {
	if _, err := position.ChessFromFEN(fen); err != nil {
		return Position{}, err
	}
	return Position{board: dragontoothmg.ParseFen(fen)}, nil
}

// fromMove converts a dragontoothmg move. Its piece codes for knight
// through queen share their values with chess.Role.
func fromMove(dm dragontoothmg.Move) chess.Move {
	from, to := chess.Square(dm.From()), chess.Square(dm.To())
	if promo := dm.Promote(); promo != dragontoothmg.Nothing {
		return chess.PromotionMove(from, to, chess.Role(promo))
	}
	return chess.NormalMove(from, to)
}

func toMove(m chess.Move) dragontoothmg.Move {
	var dm dragontoothmg.Move
	dm.Setfrom(dragontoothmg.Square(m.From)).Setto(dragontoothmg.Square(m.To))
	if m.Promotion != chess.NoRole {
		dm.Setpromote(dragontoothmg.Piece(m.Promotion))
	}
	return dm
}

// LegalMovesInto appends the legal moves to dst.
func (pos Position) LegalMovesInto(dst []chess.Move) []chess.Move {
	for _, dm := range pos.board.GenerateLegalMoves() {
		dst = append(dst, fromMove(dm))
	}
	return dst
}

// PlayUnchecked applies a legal move and returns the new position.
func (pos Position) PlayUnchecked(m chess.Move) Position {
	pos.board.Apply(toMove(m))
	return pos
}

// Play applies m if it is legal.
func (pos Position) Play(m chess.Move) (Position, error) {
	if m.Kind != chess.NormalKind || !slices.Contains(pos.LegalMovesInto(nil), m) {
		return pos, &position.IllegalMoveError{Move: m}
	}
	return pos.PlayUnchecked(m), nil
}

// RookAttacks is dragontoothmg's own rook lookup, kept for cross-checks.
func RookAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return chess.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occupied)))
}

// BishopAttacks is dragontoothmg's own bishop lookup, kept for cross-checks.
func BishopAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return chess.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occupied)))
}
