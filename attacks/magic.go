package attacks

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"

	"chess-core/chess"
)

// ErrNoMagic is returned when the factor search gives up.
var ErrNoMagic = errors.New("no magic factor found")

// Family is a sliding piece family with its own magic records.
type Family uint8

const (
	RookFamily Family = iota
	BishopFamily
)

// Index bits per family: a rook has at most 12 relevant blockers, a bishop 9.
const (
	rookBits   = 12
	bishopBits = 9

	rookShift   = 64 - rookBits
	bishopShift = 64 - bishopBits
)

var (
	rookDirs   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

func (f Family) String() string {
	if f == RookFamily {
		return "rook"
	}
	return "bishop"
}

// Bits returns the number of index bits the family hashes into.
func (f Family) Bits() uint {
	if f == RookFamily {
		return rookBits
	}
	return bishopBits
}

func (f Family) dirs() *[4][2]int {
	if f == RookFamily {
		return &rookDirs
	}
	return &bishopDirs
}

// Magic is the perfect-hash record of one square.
// The attack set for occupied is table[Offset + (Factor*(occupied&Mask)) >> (64-bits)].
type Magic struct {
	Mask   chess.Bitboard
	Factor uint64
	Offset int
}

// Index returns the position of occupied's attack set in the shared table.
func (m *Magic) Index(f Family, occupied chess.Bitboard) int {
	return hash(m.Factor, occupied&m.Mask, f.Bits()) + m.Offset
}

func hash(factor uint64, subset chess.Bitboard, n uint) int {
	return int((factor * uint64(subset)) >> (64 - n))
}

// SlidingAttacks ray-casts from sq in each direction of the family, stopping
// on (and including) the first occupied square. It is the reference the
// magic tables are built from.
func SlidingAttacks(f Family, sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	var bb chess.Bitboard
	for _, d := range f.dirs() {
		for s, ok := sq.Offset(d[0], d[1]); ok; s, ok = s.Offset(d[0], d[1]) {
			bb = bb.With(s)
			if occupied.Contains(s) {
				break // Stop when a piece was hit.
			}
		}
	}
	return bb
}

// RelevantMask returns the squares whose occupancy can change the attacks
// of the family from sq: every ray up to, but excluding, the board edge.
func RelevantMask(f Family, sq chess.Square) chess.Bitboard {
	var bb chess.Bitboard
	for _, d := range f.dirs() {
		for s, ok := sq.Offset(d[0], d[1]); ok; s, ok = s.Offset(d[0], d[1]) {
			if _, inside := s.Offset(d[0], d[1]); !inside {
				break
			}
			bb = bb.With(s)
		}
	}
	return bb
}

// Subsets enumerates all subsets of mask with the carry-rippler trick,
// starting with the empty set.
func Subsets(mask chess.Bitboard) []chess.Bitboard {
	out := make([]chess.Bitboard, 0, 1<<uint(mask.Count()))
	for subset := chess.Bitboard(0); ; {
		out = append(out, subset)
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return out
}

// occupancySet holds every relevant occupancy of a square and the attack set
// each one produces.
type occupancySet struct {
	family  Family
	sq      chess.Square
	mask    chess.Bitboard
	subsets []chess.Bitboard
	attacks []chess.Bitboard

	// scratch for collision checks
	store []chess.Bitboard
	used  []bool
}

func newOccupancySet(f Family, sq chess.Square) *occupancySet {
	mask := RelevantMask(f, sq)
	subsets := Subsets(mask)
	attacks := make([]chess.Bitboard, len(subsets))
	for i, s := range subsets {
		attacks[i] = SlidingAttacks(f, sq, s)
	}
	return &occupancySet{
		family:  f,
		sq:      sq,
		mask:    mask,
		subsets: subsets,
		attacks: attacks,
		store:   make([]chess.Bitboard, 1<<f.Bits()),
		used:    make([]bool, 1<<f.Bits()),
	}
}

// try reports whether factor maps every subset to an index that no subset
// with a different attack set uses. It returns the highest index used.
func (o *occupancySet) try(factor uint64) (maxIdx int, ok bool) {
	for i := range o.used {
		o.used[i] = false
	}
	n := o.family.Bits()
	for i, subset := range o.subsets {
		idx := hash(factor, subset, n)
		if o.used[idx] {
			if o.store[idx] != o.attacks[i] {
				return 0, false
			}
			continue
		}
		o.used[idx] = true
		o.store[idx] = o.attacks[i]
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	return maxIdx, true
}

// search draws sparse random odd candidates until one hashes without
// destructive collisions.
func (o *occupancySet) search(rng *rand.Rand, maxTries int) (uint64, error) {
	for i := 0; i < maxTries; i++ {
		factor := rng.Uint64()&rng.Uint64()&rng.Uint64() | 1
		// Candidates that spread few mask bits into the top byte rarely work.
		if bits.OnesCount64((uint64(o.mask)*factor)&0xFF00000000000000) < 6 {
			continue
		}
		if _, ok := o.try(factor); ok {
			return factor, nil
		}
	}
	return 0, fmt.Errorf("%w: %s on %s after %d tries", ErrNoMagic, o.family, o.sq, maxTries)
}

// FindMagic searches a fresh factor for the family on sq.
func FindMagic(f Family, sq chess.Square, rng *rand.Rand, maxTries int) (uint64, error) {
	return newOccupancySet(f, sq).search(rng, maxTries)
}

// VerifyMagic reports whether factor is a valid perfect hash for the family on sq.
func VerifyMagic(f Family, sq chess.Square, factor uint64) bool {
	_, ok := newOccupancySet(f, sq).try(factor)
	return ok
}
