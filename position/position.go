// Package position implements the rule variants that perft walks: standard
// chess and giveaway. Positions are small values; applying a move returns a
// new position and leaves the receiver untouched, so sibling branches of a
// search never share state.
package position

import (
	"errors"
	"fmt"

	"chess-core/chess"
)

// StartFEN is the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	// ErrInvalidFEN is wrapped by every FEN parse failure.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidPosition is wrapped when a board breaks the rules of its variant.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrIllegalMove matches any *IllegalMoveError via errors.Is.
	ErrIllegalMove = errors.New("illegal move")
)

// Position is what perft needs from a rule variant: legal move enumeration
// and move application. P is the concrete position type itself, so Play
// returns values of the same variant.
type Position[P any] interface {
	// LegalMovesInto appends the legal moves to dst and returns the result.
	LegalMovesInto(dst []chess.Move) []chess.Move
	// PlayUnchecked applies a move already known to be legal.
	PlayUnchecked(m chess.Move) P
	// Play validates m against the legal moves before applying it.
	Play(m chess.Move) (P, error)
}

// IllegalMoveError reports a move rejected by Play. FEN may be empty when
// the position cannot be printed.
type IllegalMoveError struct {
	Move chess.Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	if e.FEN == "" {
		return fmt.Sprintf("illegal move %s", e.Move)
	}
	return fmt.Sprintf("illegal move %s in %s", e.Move, e.FEN)
}

// Is lets errors.Is(err, ErrIllegalMove) match.
func (e *IllegalMoveError) Is(target error) bool { return target == ErrIllegalMove }

var (
	_ Position[Chess]    = Chess{}
	_ Position[Giveaway] = Giveaway{}
)
