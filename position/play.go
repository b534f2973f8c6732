package position

import (
	"fmt"

	"chess-core/chess"
)

// play applies a normal or null move without any legality check. A king
// moving two files castles with the rook on that side. Drops are not part
// of any variant here and panic.
func (b *Board) play(m chess.Move) {
	us, them := b.turn, b.turn.Other()

	b.hash ^= zobristCastle[b.castling]
	ep := b.epSquare
	if ep != NoSquare {
		b.hash ^= zobristEnPassant[ep.File()]
		b.epSquare = NoSquare
	}
	b.halfmoveClock++

	switch m.Kind {
	case chess.NullKind:
	case chess.NormalKind:
		piece, ok := b.PieceAt(m.From)
		if !ok {
			panic(fmt.Sprintf("position: no piece on %s for %s", m.From, m))
		}
		if captured, ok := b.PieceAt(m.To); ok {
			b.remove(captured, m.To)
			b.halfmoveClock = 0
		}
		b.remove(piece, m.From)

		switch piece.Role {
		case chess.Pawn:
			b.halfmoveClock = 0
			if m.To == ep {
				b.remove(chess.Pawn.Of(them), chess.NewSquare(m.To.File(), m.From.Rank()))
			}
			if d := int(m.To) - int(m.From); d == 16 || d == -16 {
				b.epSquare = chess.Square((int(m.From) + int(m.To)) / 2)
			}
			if m.Promotion != chess.NoRole {
				piece.Role = m.Promotion
			}
		case chess.King:
			if d := m.To.File() - m.From.File(); d == 2 || d == -2 {
				rookFrom, rookTo := chess.H1, chess.F1
				if d < 0 {
					rookFrom, rookTo = chess.A1, chess.D1
				}
				if us == chess.Black {
					rookFrom, rookTo = rookFrom+56, rookTo+56
				}
				rook := chess.Rook.Of(us)
				b.remove(rook, rookFrom)
				b.put(rook, rookTo)
			}
		}
		b.put(piece, m.To)
		b.castling &^= castlingMask[m.From] | castlingMask[m.To]
	default:
		panic(fmt.Sprintf("position: unsupported move %s", m))
	}

	b.hash ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		b.hash ^= zobristEnPassant[b.epSquare.File()]
	}
	if us == chess.Black {
		b.fullmoveNumber++
	}
	b.turn = them
	b.hash ^= zobristSide
}
