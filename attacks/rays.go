package attacks

import "chess-core/chess"

// rays[a*64+b] is the full line through a and b, between[a*64+b] the
// squares strictly between them. Both are empty unless a and b are distinct
// and share a rank, file or diagonal.
var (
	rays    [64 * 64]chess.Bitboard
	between [64 * 64]chess.Bitboard
)

func initRays() {
	var diag, antiDiag [15]chess.Bitboard
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		diag[sq.Rank()-sq.File()+7] |= sq.Bitboard()
		antiDiag[sq.Rank()+sq.File()] |= sq.Bitboard()
	}

	for a := chess.Square(0); a < chess.NumSquares; a++ {
		ar, af := a.Rank(), a.File()
		for b := chess.Square(0); b < chess.NumSquares; b++ {
			if a == b {
				continue
			}
			br, bf := b.Rank(), b.File()

			var line chess.Bitboard
			switch {
			case ar == br:
				line = chess.RankBitboard(ar)
			case af == bf:
				line = chess.FileBitboard(af)
			case ar-af == br-bf:
				line = diag[ar-af+7]
			case ar+af == br+bf:
				line = antiDiag[ar+af]
			default:
				continue
			}
			rays[int(a)*64+int(b)] = line

			df, dr := sign(bf-af), sign(br-ar)
			var open chess.Bitboard
			for s, _ := a.Offset(df, dr); s != b; s, _ = s.Offset(df, dr) {
				open = open.With(s)
			}
			between[int(a)*64+int(b)] = open
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Ray returns the rank, file or diagonal through a and b, or the empty set
// if they are not aligned or equal.
func Ray(a, b chess.Square) chess.Bitboard {
	return rays[int(a)*64+int(b)]
}

// Between returns the squares strictly between a and b, or the empty set if
// they are not aligned, equal or adjacent.
func Between(a, b chess.Square) chess.Bitboard {
	return between[int(a)*64+int(b)]
}

// Aligned reports whether c lies on the line through a and b.
func Aligned(a, b, c chess.Square) bool {
	return Ray(a, b).Contains(c)
}
