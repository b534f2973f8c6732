// Package perft counts the leaf nodes of the legal move tree. It is the
// standard correctness oracle and throughput benchmark for move generators
// and works with any rule variant that implements position.Position.
package perft

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/chess"
	"chess-core/position"
)

// Perft counts the move sequences of exactly depth plies from pos. Depth 0
// counts the empty sequence, so it is always 1. Moves are applied without
// re-validation.
func Perft[P position.Position[P]](pos P, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]chess.Move, depth+1)}
	return perftRec(pos, depth, &pc)
}

// perftCtx keeps one move buffer per depth so a whole run allocates only
// while the buffers grow.
type perftCtx struct {
	bufs [][]chess.Move
}

func (pc *perftCtx) bufFor(depth int) []chess.Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]chess.Move, 0, 256)
	}
	return buf[:0]
}

func perftRec[P position.Position[P]](pos P, depth int, pc *perftCtx) uint64 {
	moves := pos.LegalMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perftRec(pos.PlayUnchecked(m), depth-1, pc)
	}
	return nodes
}

// DebugPerft is Perft with one line per root move written to w:
//
//	<uci> <display> <depth-1>: <count>
//
// Root moves are applied with the checked Play. A move the generator
// produced but Play rejects means generator and validator disagree, and
// DebugPerft panics rather than return a wrong count.
func DebugPerft[P position.Position[P]](w io.Writer, pos P, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range pos.LegalMovesInto(nil) {
		child, err := pos.Play(m)
		if err != nil {
			panic(fmt.Sprintf("perft: generated move rejected: %v", err))
		}
		n := Perft(child, depth-1)
		fmt.Fprintf(w, "%s %s %d: %d\n", m.UCI(), m.Display(), depth-1, n)
		nodes += n
	}
	return nodes
}

// Divide returns the perft count below each root move. It is empty for
// depth 0.
func Divide[P position.Position[P]](pos P, depth int) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range pos.LegalMovesInto(nil) {
		result[m] = Perft(pos.PlayUnchecked(m), depth-1)
	}
	return result
}

// Entry is one root move of a divide.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// SortedDivide returns Divide ordered by the UCI token of the root move, the
// layout other engines print for comparison.
func SortedDivide[P position.Position[P]](pos P, depth int) []Entry {
	div := Divide(pos, depth)
	byUCI := make(map[string]chess.Move, len(div))
	for m := range div {
		byUCI[m.UCI()] = m
	}
	keys := maps.Keys(byUCI)
	slices.Sort(keys)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		m := byUCI[k]
		out = append(out, Entry{Move: m, Nodes: div[m]})
	}
	return out
}

// Total sums the counts of a divide.
func Total(entries []Entry) uint64 {
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	return sum
}
