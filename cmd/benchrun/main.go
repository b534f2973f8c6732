package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func perftLine(label string, args ...string) {
	_ = run("go", append([]string{"run", "./cmd/perft", "-label", label}, args...)...)
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Macro throughput, one line per run
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, depth := range []string{"3", "4", "5"} {
		perftLine("Initial", "-depth", depth)
	}
	perftLine("Initial/par", "-depth", "6", "-workers", "0")
	perftLine("Kiwipete", "-fen", kiwipete, "-depth", "4")
	perftLine("Kiwipete/dt", "-fen", kiwipete, "-depth", "4", "-engine", "dragontooth")
	perftLine("Giveaway", "-variant", "giveaway", "-depth", "5",
		"-fen", "rnbqk2r/pppppp1p/6p1/8/6B1/3P2P1/PPP1PP1P/RN1QK1NR b - -")
	os.Exit(0)
}
