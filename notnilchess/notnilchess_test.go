package notnilchess_test

import (
	"errors"
	"testing"

	"chess-core/chess"
	"chess-core/notnilchess"
	"chess-core/perft"
	"chess-core/position"
)

func TestPerftMatchesNative(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		native, err := position.ChessFromFEN(fen)
		if err != nil {
			t.Fatalf("ChessFromFEN: %v", err)
		}
		ref, err := notnilchess.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		want := perft.SortedDivide(native, 2)
		got := perft.SortedDivide(ref, 2)
		if len(got) != len(want) {
			t.Fatalf("%s: %d root moves, native has %d", fen, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: root %s has %d nodes, native %s has %d",
					fen, got[i].Move, got[i].Nodes, want[i].Move, want[i].Nodes)
			}
		}
	}
}

func TestDebugPerftUsesCheckedPlay(t *testing.T) {
	ref, err := notnilchess.FromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var sink countingWriter
	if got := perft.DebugPerft(&sink, ref, 2); got != 400 {
		t.Fatalf("DebugPerft(start, 2): got %d want 400", got)
	}
	if sink.lines != 20 {
		t.Fatalf("got %d lines want 20", sink.lines)
	}
}

func TestPlayIllegal(t *testing.T) {
	ref, err := notnilchess.FromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	_, err = ref.Play(chess.NormalMove(chess.E1, chess.E2))
	if !errors.Is(err, position.ErrIllegalMove) {
		t.Fatalf("Play(e1e2): got %v want ErrIllegalMove", err)
	}
}

func TestFromFENInvalid(t *testing.T) {
	if _, err := notnilchess.FromFEN("not a fen"); !errors.Is(err, position.ErrInvalidFEN) {
		t.Fatalf("got %v want ErrInvalidFEN", err)
	}
}

type countingWriter struct{ lines int }

func (w *countingWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			w.lines++
		}
	}
	return len(p), nil
}
