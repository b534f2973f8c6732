package chess

import "unicode"

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// Fold picks white or black depending on c.
func Fold[T any](c Color, white, black T) T {
	if c == White {
		return white
	}
	return black
}

func (c Color) String() string { return Fold(c, "white", "black") }

// Role is a colorless piece type used for table lookups.
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Roles lists every real role in ascending order.
var Roles = [...]Role{Pawn, Knight, Bishop, Rook, Queen, King}

// Char returns the lowercase letter of the role, or 0 for NoRole.
func (r Role) Char() byte {
	switch r {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return 0
	}
}

// UpperChar returns the uppercase letter of the role.
func (r Role) UpperChar() byte { return byte(unicode.ToUpper(rune(r.Char()))) }

// RoleFromChar converts a lowercase letter into a Role.
func RoleFromChar(ch byte) (Role, bool) {
	switch ch {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	default:
		return NoRole, false
	}
}

// Of combines the role with a side into a Piece.
func (r Role) Of(c Color) Piece { return Piece{Color: c, Role: r} }

// Piece is a role owned by a side.
type Piece struct {
	Color Color
	Role  Role
}

// Char returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	if p.Color == White {
		return p.Role.UpperChar()
	}
	return p.Role.Char()
}

// PieceFromChar converts a FEN letter into a Piece.
func PieceFromChar(ch byte) (Piece, bool) {
	lower := byte(unicode.ToLower(rune(ch)))
	role, ok := RoleFromChar(lower)
	if !ok {
		return Piece{}, false
	}
	if lower == ch {
		return role.Of(Black), true
	}
	return role.Of(White), true
}
