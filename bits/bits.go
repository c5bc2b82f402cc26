package bits

import (
	"golang.org/x/exp/constraints"
)

const (
	// alphabet is the number of letters tracked by LetterMask.
	alphabet = 26

	// fullMask has one bit set per letter a..z.
	fullMask uint32 = 1<<alphabet - 1
)

// LonelyInteger returns the only value of arr that occurs an odd number of
// times. If that precondition does not hold the result is the exclusive-or
// of all odd-multiplicity values (0 when there are none).
func LonelyInteger[T constraints.Integer](arr []T) T {
	var acc T
	for _, v := range arr {
		acc ^= v
	}
	return acc
}

// FlipBits returns n with all 32 bits inverted.
func FlipBits(n uint32) uint32 {
	return ^n
}

// LetterMask returns a 26-bit set of the ASCII letters present in s, bit 0
// standing for 'a'. Upper-case letters count as their lower-case form and
// every other byte is ignored. Scanning stops as soon as all 26 letters
// have been seen.
func LetterMask(s string) uint32 {
	var mask uint32
	for i := 0; i < len(s) && mask != fullMask; i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			continue
		}
		mask |= 1 << (c - 'a')
	}
	return mask
}

// IsPangram reports whether s contains every letter of the English alphabet,
// ignoring case.
func IsPangram(s string) bool {
	return LetterMask(s) == fullMask
}
