package attacks

import (
	"math/rand"
	"testing"

	"chess-core/chess"
)

func TestRookAttacksKnownOccupancy(t *testing.T) {
	got := RookAttacks(chess.D6, chess.Bitboard(0x3f7f28802826f5b9))
	if want := chess.Bitboard(0x8370808000000); got != want {
		t.Fatalf("rook d6: got %#x want %#x", uint64(got), uint64(want))
	}
}

func TestBishopAttacksBlockedByRank(t *testing.T) {
	a := BishopAttacks(chess.C2, chess.Rank6)
	if !a.Contains(chess.G6) {
		t.Fatalf("expected g6 attacked (first blocker)")
	}
	if a.Contains(chess.H7) {
		t.Fatalf("did not expect h7 attacked behind g6")
	}
	if !a.Contains(chess.B1) || !a.Contains(chess.D1) || !a.Contains(chess.A4) {
		t.Fatalf("missing short diagonals:\n%s", a)
	}
}

func TestMaskSizes(t *testing.T) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if n := RookMask(sq).Count(); n > 12 {
			t.Fatalf("rook mask %s has %d squares", sq, n)
		}
		if n := BishopMask(sq).Count(); n > 9 {
			t.Fatalf("bishop mask %s has %d squares", sq, n)
		}
		if RookMask(sq).Contains(sq) || BishopMask(sq).Contains(sq) {
			t.Fatalf("mask of %s contains the square itself", sq)
		}
	}
	if n := RookMask(chess.E8).Count(); n != 11 {
		t.Fatalf("rook mask e8: got %d want 11", n)
	}
	if n := RookMask(chess.A1).Count(); n != 12 {
		t.Fatalf("rook mask a1: got %d want 12", n)
	}
	if n := BishopMask(chess.D5).Count(); n != 9 {
		t.Fatalf("bishop mask d5: got %d want 9", n)
	}
	want := chess.Bitboard(0).With(chess.B8).With(chess.C8).With(chess.D8).With(chess.F8).With(chess.G8).
		With(chess.E2).With(chess.E3).With(chess.E4).With(chess.E5).With(chess.E6).With(chess.E7)
	if got := RookMask(chess.E8); got != want {
		t.Fatalf("rook mask e8:\n%s\nwant\n%s", got, want)
	}
}

// Every relevant occupancy must land inside its own square's range and read
// back the ray-cast attack set; two subsets sharing an index therefore share
// the attack set.
func TestMagicIndexInRange(t *testing.T) {
	type rng struct{ lo, hi int }
	var ranges []rng
	for _, f := range []Family{RookFamily, BishopFamily} {
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			m := Default().Magic(f, sq)
			if m.Mask != RelevantMask(f, sq) {
				t.Fatalf("%s %s: stored mask differs from relevant mask", f, sq)
			}
			lo, hi := m.Offset, m.Offset
			for _, subset := range Subsets(m.Mask) {
				idx := m.Index(f, subset)
				if idx < 0 || idx >= TableLen() {
					t.Fatalf("%s %s: index %d out of table (len %d)", f, sq, idx, TableLen())
				}
				if idx > hi {
					hi = idx
				}
				if got, want := attackTable[idx], SlidingAttacks(f, sq, subset); got != want {
					t.Fatalf("%s %s subset %#x: table %#x want %#x", f, sq, uint64(subset), uint64(got), uint64(want))
				}
			}
			ranges = append(ranges, rng{lo, hi})
		}
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].lo <= ranges[i-1].hi {
			t.Fatalf("record %d range [%d,%d] overlaps previous [%d,%d]",
				i, ranges[i].lo, ranges[i].hi, ranges[i-1].lo, ranges[i-1].hi)
		}
	}
	if last := ranges[len(ranges)-1]; last.hi != TableLen()-1 {
		t.Fatalf("table has %d trailing unused entries", TableLen()-1-last.hi)
	}
}

func TestSlidersMatchRayCastRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		occ := chess.Bitboard(r.Uint64() & r.Uint64())
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			if got, want := RookAttacks(sq, occ), SlidingAttacks(RookFamily, sq, occ); got != want {
				t.Fatalf("rook %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := BishopAttacks(sq, occ), SlidingAttacks(BishopFamily, sq, occ); got != want {
				t.Fatalf("bishop %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := QueenAttacks(sq, occ), RookAttacks(sq, occ)|BishopAttacks(sq, occ); got != want {
				t.Fatalf("queen %s: xor and union differ", sq)
			}
		}
	}
}

func TestSlidersIgnoreIrrelevantSquares(t *testing.T) {
	// Edge squares and the piece's own square never change the attack set.
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		occ := chess.Full &^ RookMask(sq)
		if got, want := RookAttacks(sq, occ), RookAttacks(sq, 0); got != want {
			t.Fatalf("rook %s depends on squares outside its mask", sq)
		}
		occ = chess.Full &^ BishopMask(sq)
		if got, want := BishopAttacks(sq, occ), BishopAttacks(sq, 0); got != want {
			t.Fatalf("bishop %s depends on squares outside its mask", sq)
		}
	}
}

func TestLeaperAttacks(t *testing.T) {
	tests := []struct {
		name string
		got  chess.Bitboard
		want []chess.Square
	}{
		{"knight a1", KnightAttacks(chess.A1), []chess.Square{chess.C2, chess.B3}},
		{"knight d4", KnightAttacks(chess.D4), []chess.Square{chess.C2, chess.E2, chess.B3, chess.F3, chess.B5, chess.F5, chess.C6, chess.E6}},
		{"king h8", KingAttacks(chess.H8), []chess.Square{chess.G7, chess.H7, chess.G8}},
		{"king e1", KingAttacks(chess.E1), []chess.Square{chess.D1, chess.F1, chess.D2, chess.E2, chess.F2}},
		{"white pawn e4", PawnAttacks(chess.White, chess.E4), []chess.Square{chess.D5, chess.F5}},
		{"white pawn a2", PawnAttacks(chess.White, chess.A2), []chess.Square{chess.B3}},
		{"black pawn h7", PawnAttacks(chess.Black, chess.H7), []chess.Square{chess.G6}},
		{"black pawn d1", PawnAttacks(chess.Black, chess.D1), nil},
		{"white pawn c8", PawnAttacks(chess.White, chess.C8), nil},
	}
	for _, tc := range tests {
		var want chess.Bitboard
		for _, sq := range tc.want {
			want = want.With(sq)
		}
		if tc.got != want {
			t.Fatalf("%s:\n%s\nwant\n%s", tc.name, tc.got, want)
		}
	}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if n := KnightAttacks(sq).Count(); n < 2 || n > 8 {
			t.Fatalf("knight %s attacks %d squares", sq, n)
		}
		if n := KingAttacks(sq).Count(); n < 3 || n > 8 {
			t.Fatalf("king %s attacks %d squares", sq, n)
		}
	}
}

func TestAttacksDispatch(t *testing.T) {
	occ := chess.Bitboard(0x3f7f28802826f5b9)
	sq := chess.D4
	cases := []struct {
		piece chess.Piece
		want  chess.Bitboard
	}{
		{chess.Pawn.Of(chess.Black), PawnAttacks(chess.Black, sq)},
		{chess.Knight.Of(chess.White), KnightAttacks(sq)},
		{chess.Bishop.Of(chess.White), BishopAttacks(sq, occ)},
		{chess.Rook.Of(chess.Black), RookAttacks(sq, occ)},
		{chess.Queen.Of(chess.White), QueenAttacks(sq, occ)},
		{chess.King.Of(chess.Black), KingAttacks(sq)},
	}
	for _, c := range cases {
		if got := Attacks(sq, c.piece, occ); got != c.want {
			t.Fatalf("Attacks(%s, %c): got %#x want %#x", sq, c.piece.Char(), uint64(got), uint64(c.want))
		}
	}
}

func TestBuildTablesWithoutSeeds(t *testing.T) {
	tb, err := BuildTables(Config{RookSeeds: &rookSeeds, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}
	if tb.Searched() < 64 {
		t.Fatalf("expected every bishop factor to be searched, got %d searches", tb.Searched())
	}
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		occ := chess.Bitboard(r.Uint64())
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			if got, want := tb.BishopAttacks(sq, occ), BishopAttacks(sq, occ); got != want {
				t.Fatalf("bishop %s: searched tables disagree with default", sq)
			}
			if got, want := tb.QueenAttacks(sq, occ), QueenAttacks(sq, occ); got != want {
				t.Fatalf("queen %s: searched tables disagree with default", sq)
			}
		}
	}
	for sq, f := range tb.Factors(BishopFamily) {
		if !VerifyMagic(BishopFamily, chess.Square(sq), f) {
			t.Fatalf("bishop factor for %s does not verify", chess.Square(sq))
		}
	}
}

func TestFindMagicRook(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping rook factor search in short mode")
	}
	r := rand.New(rand.NewSource(11))
	for _, sq := range []chess.Square{chess.A1, chess.D4, chess.H8} {
		f, err := FindMagic(RookFamily, sq, r, DefaultMaxTries)
		if err != nil {
			t.Fatalf("FindMagic %s: %v", sq, err)
		}
		if f&1 == 0 {
			t.Fatalf("factor %#x for %s is even", f, sq)
		}
		if !VerifyMagic(RookFamily, sq, f) {
			t.Fatalf("factor %#x for %s does not verify", f, sq)
		}
	}
}

func TestVerifyMagicRejectsZero(t *testing.T) {
	if VerifyMagic(RookFamily, chess.D4, 0) {
		t.Fatalf("zero factor maps every occupancy to index 0 and must be rejected")
	}
}

func TestSeedFactors(t *testing.T) {
	if n := Default().Searched(); n != 0 {
		t.Logf("%d seed factors failed verification and were searched", n)
	}
	if TableLen() > 64*(1<<rookBits)+64*(1<<bishopBits) {
		t.Fatalf("table larger than the fixed-shift bound: %d", TableLen())
	}
}

func TestSubsetsCarryRippler(t *testing.T) {
	mask := chess.Bitboard(0).With(chess.B2).With(chess.D4).With(chess.G7)
	subsets := Subsets(mask)
	if len(subsets) != 8 {
		t.Fatalf("got %d subsets want 8", len(subsets))
	}
	seen := map[chess.Bitboard]bool{}
	for _, s := range subsets {
		if s&^mask != 0 {
			t.Fatalf("subset %#x escapes mask", uint64(s))
		}
		if seen[s] {
			t.Fatalf("subset %#x enumerated twice", uint64(s))
		}
		seen[s] = true
	}
	if subsets[0] != 0 {
		t.Fatalf("enumeration must start with the empty set")
	}
}

func TestRaysAndBetween(t *testing.T) {
	for a := chess.Square(0); a < chess.NumSquares; a++ {
		if Ray(a, a) != chess.Empty || Between(a, a) != chess.Empty {
			t.Fatalf("ray or between of %s with itself is not empty", a)
		}
		for b := chess.Square(0); b < chess.NumSquares; b++ {
			ray, btw := Ray(a, b), Between(a, b)
			if ray != Ray(b, a) || btw != Between(b, a) {
				t.Fatalf("%s %s: tables are not symmetric", a, b)
			}
			if btw&^ray != 0 || btw.Contains(a) || btw.Contains(b) {
				t.Fatalf("%s %s: between escapes the ray or holds an endpoint", a, b)
			}
			if a != b && ray.Any() != (RookAttacks(a, 0)|BishopAttacks(a, 0)).Contains(b) {
				t.Fatalf("%s %s: ray present but squares do not share a line", a, b)
			}
			if ray.Any() && (!ray.Contains(a) || !ray.Contains(b)) {
				t.Fatalf("%s %s: ray misses an endpoint", a, b)
			}
			for c := chess.Square(0); c < chess.NumSquares; c++ {
				if Aligned(a, b, c) != ray.Contains(c) {
					t.Fatalf("Aligned(%s, %s, %s) disagrees with Ray", a, b, c)
				}
			}
		}
	}

	if got, want := Between(chess.A1, chess.D4), chess.B2.Bitboard().With(chess.C3); got != want {
		t.Fatalf("between a1 d4:\n%s", got)
	}
	if Between(chess.E4, chess.E5) != chess.Empty {
		t.Fatalf("adjacent squares have squares between them")
	}
	if Ray(chess.A1, chess.B3) != chess.Empty {
		t.Fatalf("a1 and b3 are not aligned")
	}
	if Ray(chess.B1, chess.B7) != chess.FileB {
		t.Fatalf("ray b1 b7 is not the b file")
	}
	if !Aligned(chess.H1, chess.C6, chess.A8) || Aligned(chess.H1, chess.C6, chess.A7) {
		t.Fatalf("long diagonal alignment wrong")
	}
}
