// Package notnilchess adapts github.com/notnil/chess positions to the
// position.Position contract. It is slow compared to the native generator
// and exists as an independent reference for perft counts.
package notnilchess

import (
	"fmt"

	nchess "github.com/notnil/chess"

	"chess-core/chess"
	"chess-core/position"
)

// Position wraps an immutable notnil/chess position. Its move cache is
// filled lazily, so a Position must not be shared between goroutines.
type Position struct {
	pos *nchess.Position
}

var _ position.Position[Position] = Position{}

// FromFEN loads a standard chess position.
func FromFEN(fen string) (Position, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", position.ErrInvalidFEN, err)
	}
	return Position{pos: nchess.NewGame(opt).Position()}, nil
}

// FEN returns the FEN string of the position.
func (p Position) FEN() string { return p.pos.String() }

func roleOf(pt nchess.PieceType) chess.Role {
	switch pt {
	case nchess.Queen:
		return chess.Queen
	case nchess.Rook:
		return chess.Rook
	case nchess.Bishop:
		return chess.Bishop
	case nchess.Knight:
		return chess.Knight
	case nchess.King:
		return chess.King
	case nchess.Pawn:
		return chess.Pawn
	default:
		return chess.NoRole
	}
}

func fromMove(m *nchess.Move) chess.Move {
	from, to := chess.Square(m.S1()), chess.Square(m.S2())
	if role := roleOf(m.Promo()); role != chess.NoRole {
		return chess.PromotionMove(from, to, role)
	}
	return chess.NormalMove(from, to)
}

// find returns the notnil move matching m; the library needs its own move
// values because they carry castling and en passant tags.
func (p Position) find(m chess.Move) (*nchess.Move, bool) {
	if m.Kind != chess.NormalKind {
		return nil, false
	}
	for _, nm := range p.pos.ValidMoves() {
		if fromMove(nm) == m {
			return nm, true
		}
	}
	return nil, false
}

// LegalMovesInto appends the legal moves to dst.
func (p Position) LegalMovesInto(dst []chess.Move) []chess.Move {
	for _, nm := range p.pos.ValidMoves() {
		dst = append(dst, fromMove(nm))
	}
	return dst
}

// PlayUnchecked applies a legal move. It panics if the library does not
// know the move.
func (p Position) PlayUnchecked(m chess.Move) Position {
	nm, ok := p.find(m)
	if !ok {
		panic(fmt.Sprintf("notnilchess: no legal move %s in %s", m, p.FEN()))
	}
	return Position{pos: p.pos.Update(nm)}
}

// Play applies m if it is legal.
func (p Position) Play(m chess.Move) (Position, error) {
	nm, ok := p.find(m)
	if !ok {
		return p, &position.IllegalMoveError{Move: m, FEN: p.FEN()}
	}
	return Position{pos: p.pos.Update(nm)}, nil
}
