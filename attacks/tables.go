package attacks

import (
	"fmt"
	"math/rand"

	"chess-core/chess"
)

// DefaultSearchSeed seeds the factor search used when a seed factor is
// missing or fails verification.
const DefaultSearchSeed = 0x5EED

// DefaultMaxTries bounds the factor search per square.
const DefaultMaxTries = 100_000_000

// Config controls how BuildTables obtains magic factors.
type Config struct {
	// RookSeeds and BishopSeeds are tried first; nil or zero entries and
	// entries that fail verification are searched.
	RookSeeds   *[64]uint64
	BishopSeeds *[64]uint64

	// Rand drives the search. Defaults to a fixed seed so builds are
	// reproducible.
	Rand *rand.Rand

	// MaxTries bounds the search per square. Defaults to DefaultMaxTries.
	MaxTries int
}

// DefaultConfig uses the embedded seed factors.
func DefaultConfig() Config {
	return Config{RookSeeds: &rookSeeds, BishopSeeds: &bishopSeeds}
}

// Tables holds the magic records of both families and the attack table
// they share. A Tables value is immutable once built.
type Tables struct {
	rook   [64]Magic
	bishop [64]Magic
	table  []chess.Bitboard

	searched int
}

// BuildTables computes the magic records and fills the shared table, rook
// squares first. Each square's offset starts right after the highest index
// used by the previous square, so ranges never overlap.
func BuildTables(cfg Config) (*Tables, error) {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(DefaultSearchSeed))
	}
	if cfg.MaxTries <= 0 {
		cfg.MaxTries = DefaultMaxTries
	}

	t := &Tables{table: make([]chess.Bitboard, 0, 64*(1<<rookBits)+64*(1<<bishopBits))}
	if err := t.fill(RookFamily, &t.rook, cfg.RookSeeds, cfg); err != nil {
		return nil, err
	}
	if err := t.fill(BishopFamily, &t.bishop, cfg.BishopSeeds, cfg); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) fill(f Family, magics *[64]Magic, seeds *[64]uint64, cfg Config) error {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		o := newOccupancySet(f, sq)

		var factor uint64
		if seeds != nil {
			factor = seeds[sq]
		}
		maxIdx, ok := 0, false
		if factor != 0 {
			maxIdx, ok = o.try(factor)
		}
		if !ok {
			var err error
			if factor, err = o.search(cfg.Rand, cfg.MaxTries); err != nil {
				return fmt.Errorf("build %s tables: %w", f, err)
			}
			maxIdx, _ = o.try(factor)
			t.searched++
		}

		offset := len(t.table)
		t.table = append(t.table, make([]chess.Bitboard, maxIdx+1)...)
		n := f.Bits()
		for i, subset := range o.subsets {
			t.table[offset+hash(factor, subset, n)] = o.attacks[i]
		}
		magics[sq] = Magic{Mask: o.mask, Factor: factor, Offset: offset}
	}
	return nil
}

// RookAttacks looks up rook attacks in t.
func (t *Tables) RookAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return t.table[t.rook[sq].Index(RookFamily, occupied)]
}

// BishopAttacks looks up bishop attacks in t.
func (t *Tables) BishopAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return t.table[t.bishop[sq].Index(BishopFamily, occupied)]
}

// QueenAttacks looks up queen attacks in t.
func (t *Tables) QueenAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return t.RookAttacks(sq, occupied) ^ t.BishopAttacks(sq, occupied)
}

// Magic returns the record of the family on sq.
func (t *Tables) Magic(f Family, sq chess.Square) Magic {
	if f == RookFamily {
		return t.rook[sq]
	}
	return t.bishop[sq]
}

// Factors returns the factors of the family, indexed by square.
func (t *Tables) Factors(f Family) [64]uint64 {
	var out [64]uint64
	for sq := range out {
		out[sq] = t.Magic(f, chess.Square(sq)).Factor
	}
	return out
}

// Len returns the size of the shared attack table.
func (t *Tables) Len() int { return len(t.table) }

// Searched returns how many squares needed a fresh factor search.
func (t *Tables) Searched() int { return t.searched }

var (
	std          *Tables
	rookMagics   [64]Magic
	bishopMagics [64]Magic
	attackTable  []chess.Bitboard
)

func init() {
	initLeaperTables()
	initRays()

	t, err := BuildTables(DefaultConfig())
	if err != nil {
		panic(err)
	}
	std = t
	rookMagics = t.rook
	bishopMagics = t.bishop
	attackTable = t.table
}

// Default returns the tables behind the package-level lookups.
func Default() *Tables { return std }

// RookMagic returns the rook record of sq in the default tables.
func RookMagic(sq chess.Square) Magic { return rookMagics[sq] }

// BishopMagic returns the bishop record of sq in the default tables.
func BishopMagic(sq chess.Square) Magic { return bishopMagics[sq] }

// TableLen returns the size of the default shared attack table.
func TableLen() int { return len(attackTable) }
