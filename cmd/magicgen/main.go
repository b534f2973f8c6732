// Command magicgen searches fresh magic factors for every square and prints
// them as the seed file of package attacks.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math/rand"
	"os"
	"time"

	"chess-core/attacks"
)

func main() {
	seed := flag.Int64("seed", attacks.DefaultSearchSeed, "Random seed for the factor search")
	tries := flag.Int("tries", attacks.DefaultMaxTries, "Candidate factors per square before giving up")
	out := flag.String("out", "", "Output file (defaults to stdout)")
	flag.Parse()

	start := time.Now()
	t, err := attacks.BuildTables(attacks.Config{
		Rand:     rand.New(rand.NewSource(*seed)),
		MaxTries: *tries,
	})
	if err != nil {
		log.Fatalf("search magics: %v", err)
	}
	log.Printf("found %d factors in %s, table size %d", t.Searched(), time.Since(start), t.Len())

	src, err := generate(t)
	if err != nil {
		log.Fatalf("format output: %v", err)
	}
	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func generate(t *attacks.Tables) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("package attacks\n\n")
	buf.WriteString("// Seed factors for the fixed-shift magic tables, indexed by square.\n")
	buf.WriteString("// Every factor is re-verified when the tables are built; regenerate with\n")
	buf.WriteString("// cmd/magicgen.\n\n")
	writeFactors(&buf, "rookSeeds", t.Factors(attacks.RookFamily))
	buf.WriteString("\n")
	writeFactors(&buf, "bishopSeeds", t.Factors(attacks.BishopFamily))
	return format.Source(buf.Bytes())
}

func writeFactors(buf *bytes.Buffer, name string, factors [64]uint64) {
	fmt.Fprintf(buf, "var %s = [64]uint64{\n", name)
	for i, f := range factors {
		if i%4 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%#018x,", f)
		if i%4 == 3 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")
}
