package chess

import (
	"errors"
	"fmt"
)

// ErrInvalidUCI is returned when a token is not a UCI move.
var ErrInvalidUCI = errors.New("invalid uci move")

// MoveKind tags the variant stored in a Move.
type MoveKind uint8

const (
	// NullKind is a pass. The zero Move is a null move.
	NullKind MoveKind = iota
	// NormalKind moves a piece From -> To, optionally promoting.
	NormalKind
	// PutKind drops a piece of Role on To (drop variants).
	PutKind
)

// Move is a value type covering normal moves, drops and the null move.
type Move struct {
	Kind      MoveKind
	From      Square
	To        Square
	Promotion Role // NoRole unless a promotion
	Role      Role // dropped role, PutKind only
}

// NormalMove constructs a non-promoting move.
func NormalMove(from, to Square) Move {
	return Move{Kind: NormalKind, From: from, To: to}
}

// PromotionMove constructs a move that promotes to role.
func PromotionMove(from, to Square, role Role) Move {
	return Move{Kind: NormalKind, From: from, To: to, Promotion: role}
}

// PutMove constructs a drop of role on to.
func PutMove(role Role, to Square) Move {
	return Move{Kind: PutKind, To: to, Role: role}
}

// NullMove returns the pass move.
func NullMove() Move { return Move{} }

// IsPromotion reports whether the move promotes.
func (m Move) IsPromotion() bool { return m.Kind == NormalKind && m.Promotion != NoRole }

// String returns the UCI token (e.g. "e2e4", "e7e8q", "N@f3", "0000").
func (m Move) String() string { return m.UCI() }

// UCI returns the canonical UCI token of the move.
func (m Move) UCI() string {
	switch m.Kind {
	case NormalKind:
		s := m.From.String() + m.To.String()
		if m.Promotion != NoRole {
			s += string(m.Promotion.Char())
		}
		return s
	case PutKind:
		return string(m.Role.UpperChar()) + "@" + m.To.String()
	default:
		return "0000"
	}
}

// Display returns a long algebraic rendering (e.g. "e2-e4", "e7-e8=Q").
func (m Move) Display() string {
	switch m.Kind {
	case NormalKind:
		s := m.From.String() + "-" + m.To.String()
		if m.Promotion != NoRole {
			s += "=" + string(m.Promotion.UpperChar())
		}
		return s
	case PutKind:
		return string(m.Role.UpperChar()) + "@" + m.To.String()
	default:
		return "--"
	}
}

// ParseUCI converts a UCI token into a Move. Malformed tokens yield false and
// a zero Move.
func ParseUCI(uci string) (Move, bool) {
	if len(uci) < 4 || len(uci) > 5 {
		return Move{}, false
	}

	from, okFrom := ParseSquare(uci[0:2])
	to, okTo := ParseSquare(uci[2:4])
	if okFrom && okTo {
		if len(uci) == 5 {
			role, ok := RoleFromChar(uci[4])
			if !ok {
				return Move{}, false
			}
			return PromotionMove(from, to, role), true
		}
		return NormalMove(from, to), true
	}

	if len(uci) == 4 && uci[1] == '@' && okTo {
		piece, ok := PieceFromChar(uci[0])
		if !ok {
			return Move{}, false
		}
		return PutMove(piece.Role, to), true
	}

	if uci == "0000" {
		return NullMove(), true
	}
	return Move{}, false
}

// MarshalText implements encoding.TextMarshaler.
func (m Move) MarshalText() ([]byte, error) { return []byte(m.UCI()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Move) UnmarshalText(text []byte) error {
	parsed, ok := ParseUCI(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidUCI, text)
	}
	*m = parsed
	return nil
}
