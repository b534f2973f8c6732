package perft_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"chess-core/chess"
	"chess-core/perft"
	"chess-core/position"
)

// Known node counts, indexed by depth-1.
var chessPerftTable = []struct {
	name   string
	fen    string
	counts []uint64
}{
	{"initial", position.StartFEN, []uint64{20, 400, 8902, 197281, 4865609}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
	{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
	{"position 6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079, 89890}},
}

const giveawayFEN = "rnbqk2r/pppppp1p/6p1/8/6B1/3P2P1/PPP1PP1P/RN1QK1NR b - -"

func mustChess(t testing.TB, fen string) position.Chess {
	t.Helper()
	pos, err := position.ChessFromFEN(fen)
	if err != nil {
		t.Fatalf("ChessFromFEN(%q): %v", fen, err)
	}
	return pos
}

func TestPerftChess(t *testing.T) {
	for _, tc := range chessPerftTable {
		pos := mustChess(t, tc.fen)
		for i, want := range tc.counts {
			depth := i + 1
			if testing.Short() && want > 1_000_000 {
				t.Logf("%s depth %d skipped in short mode", tc.name, depth)
				continue
			}
			if got := perft.Perft(pos, depth); got != want {
				t.Fatalf("%s depth %d: got %d want %d", tc.name, depth, got, want)
			}
		}
		if pos.FEN() != tc.fen {
			t.Fatalf("%s: perft changed the root position to %s", tc.name, pos.FEN())
		}
	}
}

func TestPerftGiveaway(t *testing.T) {
	pos, err := position.GiveawayFromFEN(giveawayFEN)
	if err != nil {
		t.Fatalf("GiveawayFromFEN: %v", err)
	}
	for i, want := range []uint64{20, 21, 68, 1564} {
		if got := perft.Perft(pos, i+1); got != want {
			t.Fatalf("giveaway depth %d: got %d want %d", i+1, got, want)
		}
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := perft.Perft(position.StartingChess(), 0); got != 1 {
		t.Fatalf("perft(start, 0): got %d want 1", got)
	}
	mate := mustChess(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if got := perft.Perft(mate, 0); got != 1 {
		t.Fatalf("perft(mate, 0): got %d want 1", got)
	}
	if got := perft.Perft(mate, 3); got != 0 {
		t.Fatalf("perft(mate, 3): got %d want 0", got)
	}
}

// tree is a synthetic position with a fixed branching factor.
type tree struct{ branching int }

func (t tree) LegalMovesInto(dst []chess.Move) []chess.Move {
	for i := 0; i < t.branching; i++ {
		dst = append(dst, chess.NormalMove(chess.Square(i), chess.Square(i+8)))
	}
	return dst
}

func (t tree) PlayUnchecked(chess.Move) tree { return t }

func (t tree) Play(m chess.Move) (tree, error) { return t, nil }

func TestPerftCountsPaths(t *testing.T) {
	for depth, want := range []uint64{1, 3, 9, 27, 81} {
		if got := perft.Perft(tree{branching: 3}, depth); got != want {
			t.Fatalf("depth %d: got %d want %d", depth, got, want)
		}
	}
	if got := perft.Perft(tree{branching: 0}, 4); got != 0 {
		t.Fatalf("dead end: got %d want 0", got)
	}
}

// liar generates a move and then refuses to play it.
type liar struct{}

func (liar) LegalMovesInto(dst []chess.Move) []chess.Move {
	return append(dst, chess.NormalMove(chess.E2, chess.E4))
}

func (l liar) PlayUnchecked(chess.Move) liar { return l }

func (l liar) Play(m chess.Move) (liar, error) {
	return l, &position.IllegalMoveError{Move: m, FEN: "liar"}
}

func TestDebugPerftPanicsOnRejectedMove(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("DebugPerft did not panic")
		}
		if !strings.Contains(fmt.Sprint(r), "e2e4") {
			t.Fatalf("panic does not name the move: %v", r)
		}
	}()
	perft.DebugPerft(&bytes.Buffer{}, liar{}, 2)
}

func TestDebugPerftOutput(t *testing.T) {
	var buf bytes.Buffer
	if got := perft.DebugPerft(&buf, position.StartingChess(), 2); got != 400 {
		t.Fatalf("DebugPerft(start, 2): got %d want 400", got)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines want 20:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"e2e4 e2-e4 1: 20", "g1f3 g1-f3 1: 20"} {
		if !strings.Contains(buf.String(), want+"\n") {
			t.Fatalf("missing line %q in:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	promo := mustChess(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	perft.DebugPerft(&buf, promo, 1)
	if !strings.Contains(buf.String(), "a7b8q a7-b8=Q 0: 1\n") {
		t.Fatalf("missing promotion capture line in:\n%s", buf.String())
	}

	buf.Reset()
	if got := perft.DebugPerft(&buf, promo, 0); got != 1 || buf.Len() != 0 {
		t.Fatalf("DebugPerft depth 0: got %d with output %q", got, buf.String())
	}
}

func TestDivide(t *testing.T) {
	pos := mustChess(t, chessPerftTable[1].fen)
	div := perft.Divide(pos, 2)
	if len(div) != 48 {
		t.Fatalf("got %d root moves want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum: got %d want 2039", sum)
	}
	if len(perft.Divide(pos, 0)) != 0 {
		t.Fatalf("divide at depth 0 must be empty")
	}
}

func TestSortedDivide(t *testing.T) {
	entries := perft.SortedDivide(position.StartingChess(), 3)
	if len(entries) != 20 {
		t.Fatalf("got %d entries want 20", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Move.UCI() >= entries[i].Move.UCI() {
			t.Fatalf("entries not sorted: %s before %s", entries[i-1].Move, entries[i].Move)
		}
	}
	if got := perft.Total(entries); got != 8902 {
		t.Fatalf("total: got %d want 8902", got)
	}
	if entries[0].Move.UCI() != "a2a3" || entries[0].Nodes != 380 {
		t.Fatalf("first entry: got %s %d want a2a3 380", entries[0].Move, entries[0].Nodes)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	pos := mustChess(t, chessPerftTable[1].fen)
	for _, workers := range []int{0, 1, 4} {
		if got := perft.Parallel(pos, 3, workers); got != 97862 {
			t.Fatalf("Parallel(kiwipete, 3, %d): got %d want 97862", workers, got)
		}
	}
	if got := perft.Parallel(pos, 1, 4); got != 48 {
		t.Fatalf("Parallel depth 1: got %d want 48", got)
	}
	if got := perft.Parallel(pos, 0, 4); got != 1 {
		t.Fatalf("Parallel depth 0: got %d want 1", got)
	}
}
