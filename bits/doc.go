// Package bits holds folds over integer and letter sequences that work on
// the binary representation directly.
//
// What
//
//   - LonelyInteger: the value occurring an odd number of times (XOR fold),
//     generic over every integer type.
//   - FlipBits: 32-bit complement of an unsigned value.
//   - LetterMask / IsPangram: 26-bit set of the ASCII letters seen.
//
// LonelyInteger relies on exclusive-or being associative, commutative,
// self-inverse (x ^ x == 0) and having 0 as identity: folding a sequence in
// which every value but one occurs an even number of times cancels all the
// paired values, in any order, and leaves the odd one out.
//
// Complexity
//
//   - Time:   O(n); LetterMask stops as soon as all 26 letters are seen
//   - Memory: O(1)
//
// Usage
//
//	bits.LonelyInteger([]int{1, 2, 3, 4, 3, 2, 1})               // 4
//	bits.FlipBits(1)                                             // 4294967294
//	bits.IsPangram("The quick brown fox jumps over the lazy dog") // true
package bits
