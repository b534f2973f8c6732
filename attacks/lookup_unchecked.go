//go:build attacks_unchecked

package attacks

import (
	"unsafe"

	"chess-core/chess"
)

// attackAt reads the shared table without bounds checking. Only built with
// the attacks_unchecked tag; the index is in range by construction of the
// magic records, which the package tests verify exhaustively.
func attackAt(idx int) chess.Bitboard {
	return *(*chess.Bitboard)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(attackTable)), uintptr(idx)*unsafe.Sizeof(chess.Bitboard(0))))
}
