package position

import (
	"golang.org/x/exp/slices"

	"chess-core/attacks"
	"chess-core/chess"
)

// Giveaway is a position under losing-chess rules: capturing is compulsory,
// the king is an ordinary piece that may be captured, pawns may promote to a
// king and there is no castling. A side without moves has no continuation.
type Giveaway struct {
	board Board
}

// NewGiveaway wraps a board after checking it against the giveaway rules.
// Castling rights are dropped.
func NewGiveaway(b Board) (Giveaway, error) {
	if err := b.validateCommon(); err != nil {
		return Giveaway{}, err
	}
	b.hash ^= zobristCastle[b.castling] ^ zobristCastle[0]
	b.castling = 0
	return Giveaway{board: b}, nil
}

// GiveawayFromFEN parses and validates a giveaway position.
func GiveawayFromFEN(fen string) (Giveaway, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return Giveaway{}, err
	}
	return NewGiveaway(b)
}

// Board returns a copy of the underlying board.
func (pos Giveaway) Board() Board { return pos.board }

// FEN returns the FEN string of the position.
func (pos Giveaway) FEN() string { return pos.board.FEN() }

// LegalMovesInto appends the legal moves to dst: only captures when any
// capture exists, otherwise every move.
func (pos Giveaway) LegalMovesInto(dst []chess.Move) []chess.Move {
	b := &pos.board
	us := b.turn
	theirs := b.byColor[us.Other()]

	start := len(dst)
	captures := theirs
	dst = b.genPieceMoves(dst, captures, giveawayPromotions)
	dst = pos.genKingMoves(dst, captures)
	dst = pos.genEnPassant(dst)
	if len(dst) > start {
		return dst
	}

	quiet := ^b.Occupied()
	dst = b.genPieceMoves(dst, quiet, giveawayPromotions)
	return pos.genKingMoves(dst, quiet)
}

func (pos Giveaway) genKingMoves(dst []chess.Move, target chess.Bitboard) []chess.Move {
	kings := pos.board.Pieces(chess.King.Of(pos.board.turn))
	for kings != 0 {
		from := kings.PopFirst()
		dst = addTargets(dst, from, attacks.KingAttacks(from)&target)
	}
	return dst
}

func (pos Giveaway) genEnPassant(dst []chess.Move) []chess.Move {
	b := &pos.board
	capturers := b.epCapturers()
	for capturers != 0 {
		dst = append(dst, chess.NormalMove(capturers.PopFirst(), b.epSquare))
	}
	return dst
}

// PlayUnchecked applies a legal move and returns the new position.
func (pos Giveaway) PlayUnchecked(m chess.Move) Giveaway {
	pos.board.play(m)
	return pos
}

// Play applies m if it is legal, otherwise it returns an *IllegalMoveError
// and the unchanged position.
func (pos Giveaway) Play(m chess.Move) (Giveaway, error) {
	if !slices.Contains(pos.LegalMovesInto(make([]chess.Move, 0, 64)), m) {
		return pos, &IllegalMoveError{Move: m, FEN: pos.FEN()}
	}
	return pos.PlayUnchecked(m), nil
}

// IsVariantWin reports whether the side to move has won by running out of
// pieces or moves.
func (pos Giveaway) IsVariantWin() bool {
	return len(pos.LegalMovesInto(nil)) == 0
}
