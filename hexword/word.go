package hexword

import (
	"fmt"
)

// WORD_SIZE is the number of image bytes in a word.
const WORD_SIZE = 4

// Word is a 32-bit value assembled from image bytes, least significant
// byte first.
type Word uint32

// MakeWord assembles a word from the first WORD_SIZE bytes of b.
// Missing bytes read as zero.
func MakeWord(b []byte) (word Word) {
	for n := range min(len(b), WORD_SIZE) {
		word |= Word(b[n]) << (8 * n)
	}

	return
}

// String renders the word as 8 lowercase, zero-padded hex digits.
func (word Word) String() string {
	return fmt.Sprintf("%08x", uint32(word))
}
