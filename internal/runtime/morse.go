package runtime

import (
	"fmt"

	"github.com/aretw0/samuel/pkg/domain"
)

// morseKeyCount is the size of the key space (letters A-Z). Not every key is
// present: only letters whose code is three or four symbols long are kept.
const morseKeyCount = 26

var morseLetters = map[int]string{
	1:  "-...",
	2:  "-.-.",
	3:  "-..",
	5:  "..-.",
	6:  "--.",
	7:  "....",
	9:  ".---",
	10: "-.-",
	11: ".-..",
	14: "---",
	15: ".--.",
	16: "--.-",
	17: ".-.",
	18: "...",
	19: "..-",
	21: "...-",
	22: ".--",
	23: "-..-",
	24: "-.--",
	25: "--..",
}

// isMorseLetter reports whether pattern is one of the table's letters.
func isMorseLetter(pattern string) bool {
	for _, p := range morseLetters {
		if p == pattern {
			return true
		}
	}
	return false
}

// findMorseLetter scans keys forward from start (mod 26), wrapping, and
// returns the first pattern whose length equals length.
func findMorseLetter(start, length int) (int, string, error) {
	key := start % morseKeyCount
	if key < 0 {
		key += morseKeyCount
	}
	for i := 0; i < morseKeyCount; i++ {
		if p, ok := morseLetters[key]; ok && len(p) == length {
			return key, p, nil
		}
		key = (key + 1) % morseKeyCount
	}
	return 0, "", fmt.Errorf("%w: %d", domain.ErrMorseNotFound, length)
}
