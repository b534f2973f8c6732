package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i set means square i is included.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty

	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

// FileBitboard returns all squares on the given file.
func FileBitboard(file int) Bitboard { return FileA << uint(file) }

// RankBitboard returns all squares on the given rank.
func RankBitboard(rank int) Bitboard { return Rank1 << (8 * uint(rank)) }

// Contains reports whether sq is in the set.
func (b Bitboard) Contains(sq Square) bool { return b&sq.Bitboard() != 0 }

// With returns the set with sq added.
func (b Bitboard) With(sq Square) Bitboard { return b | sq.Bitboard() }

// Without returns the set with sq removed.
func (b Bitboard) Without(sq Square) Bitboard { return b &^ sq.Bitboard() }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Any reports whether at least one square is set.
func (b Bitboard) Any() bool { return b != 0 }

// MoreThanOne reports whether at least two squares are set.
func (b Bitboard) MoreThanOne() bool { return b&(b-1) != 0 }

// First returns the lowest square in the set. The set must not be empty.
func (b Bitboard) First() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// Last returns the highest square in the set. The set must not be empty.
func (b Bitboard) Last() Square { return Square(63 - bits.LeadingZeros64(uint64(b))) }

// PopFirst removes and returns the lowest square of the set.
func (b *Bitboard) PopFirst() Square {
	sq := b.First()
	*b &= *b - 1
	return sq
}

// Squares lists the squares of the set in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopFirst())
	}
	return out
}

// String draws the set as an 8x8 diagram, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if b.Contains(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
