package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"chess-core/dragontooth"
	"chess-core/notnilchess"
	"chess-core/perft"
	"chess-core/position"
)

type options struct {
	depth   int
	divide  bool
	repeat  int
	workers int
	label   string
}

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to initial position)")
	variant := flag.String("variant", "chess", "Rules: chess or giveaway")
	engine := flag.String("engine", "native", "Move generator for chess: native, dragontooth or notnil")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	workers := flag.Int("workers", 1, "Goroutines splitting the root moves (0 = GOMAXPROCS)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	prof := flag.String("profile", "", "Profile the run: cpu or mem")
	profDir := flag.String("profiledir", ".", "Directory for profile output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profDir)).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *prof)
	}

	o := options{depth: *depth, divide: *divide, repeat: *repeat, workers: *workers, label: *label}
	switch {
	case *variant == "giveaway":
		pos, err := position.GiveawayFromFEN(*fen)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
		run(pos, o)
	case *variant != "chess":
		log.Fatalf("unknown variant %q", *variant)
	case *engine == "native":
		pos, err := position.ChessFromFEN(*fen)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
		run(pos, o)
	case *engine == "dragontooth":
		pos, err := dragontooth.FromFEN(*fen)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
		run(pos, o)
	case *engine == "notnil":
		pos, err := notnilchess.FromFEN(*fen)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
		// notnil positions fill their move cache lazily and cannot be shared.
		o.workers = 1
		run(pos, o)
	default:
		log.Fatalf("unknown engine %q", *engine)
	}
}

func run[P position.Position[P]](pos P, o options) {
	// Optional divide output
	if o.divide {
		total := perft.DebugPerft(os.Stdout, pos, o.depth)
		fmt.Printf("Total: %d\n", total)
		return
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < o.repeat; i++ {
		if o.workers == 1 {
			totalNodes += perft.Perft(pos, o.depth)
		} else {
			totalNodes += perft.Parallel(pos, o.depth, o.workers)
		}
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", o.label, o.depth, totalNodes, elapsed, nps)
}
