package perft

import (
	"runtime"
	"sync"

	"chess-core/chess"
	"chess-core/position"
)

// Parallel computes Perft by handing the root moves to workers goroutines.
// Every branch starts from its own copy of the position, so the only shared
// state is the result slice, written at distinct indexes. workers <= 0 uses
// GOMAXPROCS. The position type must be safe to read concurrently.
func Parallel[P position.Position[P]](pos P, depth, workers int) uint64 {
	if depth <= 1 {
		return Perft(pos, depth)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := pos.LegalMovesInto(nil)
	counts := make([]uint64, len(moves))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pc := perftCtx{bufs: make([][]chess.Move, depth)}
			for i := range next {
				counts[i] = perftRec(pos.PlayUnchecked(moves[i]), depth-1, &pc)
			}
		}()
	}
	for i := range moves {
		next <- i
	}
	close(next)
	wg.Wait()

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes
}
