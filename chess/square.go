package chess

// Square represents a board position (0-63), a1 = 0, b1 = 1, ..., h8 = 63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NumSquares is the number of squares on the board.
const NumSquares = 64

// NewSquare builds a square from a file and rank in [0,8).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file index (0 = a).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index (0 = first rank).
func (sq Square) Rank() int { return int(sq) / 8 }

// Bitboard returns a bitboard with only sq set.
func (sq Square) Bitboard() Bitboard { return Bitboard(1) << sq }

// Offset returns the square delta files and ranks away, or false if that
// leaves the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 0 || f >= 8 || r < 0 || r >= 8 {
		return 0, false
	}
	return NewSquare(f, r), true
}

// String returns the algebraic name, e.g. "e4".
func (sq Square) String() string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic name into a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}
