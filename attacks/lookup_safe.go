//go:build !attacks_unchecked

package attacks

import "chess-core/chess"

// attackAt reads the shared table with bounds checking. The index is in
// range by construction of the magic records; see TestMagicIndexInRange.
func attackAt(idx int) chess.Bitboard {
	return attackTable[idx]
}
