package position

import (
	"fmt"
	"strconv"
	"strings"

	"chess-core/chess"
)

// ParseFEN parses the placement, side, castling and en passant fields of a
// FEN string. The halfmove clock and fullmove number are optional and
// default to 0 and 1. The board is not checked against any variant's rules;
// NewChess and NewGiveaway do that.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}
	if len(fields) > 6 {
		return Board{}, fmt.Errorf("%w: too many fields", ErrInvalidFEN)
	}

	var b Board
	b.epSquare = NoSquare
	b.fullmoveNumber = 1

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := chess.PieceFromChar(ch)
			if !ok {
				return Board{}, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return Board{}, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			b.put(piece, chess.NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, rank+1)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.turn = chess.White
	case "b":
		b.turn = chess.Black
	default:
		return Board{}, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var right CastlingRights
			switch ch {
			case 'K':
				right = CastlingWhiteK
			case 'Q':
				right = CastlingWhiteQ
			case 'k':
				right = CastlingBlackK
			case 'q':
				right = CastlingBlackQ
			default:
				return Board{}, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
			if b.castling&right != 0 {
				return Board{}, fmt.Errorf("%w: repeated castling right %q", ErrInvalidFEN, ch)
			}
			b.castling |= right
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, ok := chess.ParseSquare(fields[3])
		if !ok {
			return Board{}, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, fields[3])
		}
		b.epSquare = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, fmt.Errorf("%w: halfmove clock %q is not a number", ErrInvalidFEN, fields[4])
		}
		b.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Board{}, fmt.Errorf("%w: fullmove number %q is not a number", ErrInvalidFEN, fields[5])
		}
		b.fullmoveNumber = n
	}

	b.hash = b.ComputeZobrist()
	return b, nil
}

// FEN produces the six-field FEN string of the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, ok := b.PieceAt(chess.NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(chess.Fold(b.turn, byte('w'), byte('b')))
	sb.WriteByte(' ')

	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if b.castling&(1<<i) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteByte(' ')

	if b.epSquare != NoSquare {
		sb.WriteString(b.epSquare.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
