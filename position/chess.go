package position

import (
	"golang.org/x/exp/slices"

	"chess-core/attacks"
	"chess-core/chess"
)

// Chess is a position under the standard rules.
type Chess struct {
	board Board
}

// NewChess wraps a board after checking it against the standard rules.
func NewChess(b Board) (Chess, error) {
	if err := b.Validate(); err != nil {
		return Chess{}, err
	}
	return Chess{board: b}, nil
}

// ChessFromFEN parses and validates a standard chess position.
func ChessFromFEN(fen string) (Chess, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return Chess{}, err
	}
	return NewChess(b)
}

// StartingChess returns the standard initial position.
func StartingChess() Chess {
	pos, err := ChessFromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Board returns a copy of the underlying board.
func (pos Chess) Board() Board { return pos.board }

// FEN returns the FEN string of the position.
func (pos Chess) FEN() string { return pos.board.FEN() }

// LegalMovesInto appends every legal move to dst. Castling is a king move of
// two files.
func (pos Chess) LegalMovesInto(dst []chess.Move) []chess.Move {
	b := &pos.board
	us, them := b.turn, b.turn.Other()
	ours := b.byColor[us]
	occ := b.Occupied()
	king, _ := b.King(us)
	checkers := b.AttackersTo(king, them, occ)

	// The king may not step onto an attacked square; it is lifted off the
	// board so sliders see through its current square.
	steps := attacks.KingAttacks(king) &^ ours
	for steps != 0 {
		to := steps.PopFirst()
		if b.AttackersTo(to, them, occ.Without(king)).IsEmpty() {
			dst = append(dst, chess.NormalMove(king, to))
		}
	}
	if checkers.MoreThanOne() {
		return dst
	}

	target := ^ours
	if checkers.Any() {
		checker := checkers.First()
		target = attacks.Between(king, checker).With(checker)
	}

	start := len(dst)
	dst = b.genPieceMoves(dst, target, standardPromotions)
	if blockers := b.sliderBlockers(king); blockers.Any() {
		kept := dst[:start]
		for _, m := range dst[start:] {
			if !blockers.Contains(m.From) || attacks.Aligned(m.From, m.To, king) {
				kept = append(kept, m)
			}
		}
		dst = kept
	}

	if checkers.IsEmpty() {
		dst = b.genCastling(dst, king)
	}
	return pos.genEnPassant(dst, king)
}

// genEnPassant plays each en passant capture on the occupancy and keeps it
// only if no enemy piece then attacks the king. This covers the case of both
// pawns leaving the king's rank at once.
func (pos Chess) genEnPassant(dst []chess.Move, king chess.Square) []chess.Move {
	b := &pos.board
	capturers := b.epCapturers()
	if capturers.IsEmpty() {
		return dst
	}
	captured := b.epCaptured()
	for capturers != 0 {
		from := capturers.PopFirst()
		occ := b.Occupied().Without(from).Without(captured).With(b.epSquare)
		if (b.AttackersTo(king, b.turn.Other(), occ) &^ captured.Bitboard()).IsEmpty() {
			dst = append(dst, chess.NormalMove(from, b.epSquare))
		}
	}
	return dst
}

// PlayUnchecked applies a legal move and returns the new position.
func (pos Chess) PlayUnchecked(m chess.Move) Chess {
	pos.board.play(m)
	return pos
}

// Play applies m if it is legal, otherwise it returns an *IllegalMoveError
// and the unchanged position.
func (pos Chess) Play(m chess.Move) (Chess, error) {
	if !slices.Contains(pos.LegalMovesInto(make([]chess.Move, 0, 64)), m) {
		return pos, &IllegalMoveError{Move: m, FEN: pos.FEN()}
	}
	return pos.PlayUnchecked(m), nil
}

// IsCheck reports whether the side to move is in check.
func (pos Chess) IsCheck() bool { return pos.board.InCheck() }

// IsCheckmate reports whether the side to move is checkmated.
func (pos Chess) IsCheckmate() bool {
	return pos.board.InCheck() && len(pos.LegalMovesInto(nil)) == 0
}

// IsStalemate reports whether the side to move has no legal moves but is not in check.
func (pos Chess) IsStalemate() bool {
	return !pos.board.InCheck() && len(pos.LegalMovesInto(nil)) == 0
}
