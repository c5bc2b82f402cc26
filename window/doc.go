// Package window provides fixed-length sliding windows over integer
// sequences and the circular shift used to rotate them.
//
// What
//
//   - CountSums: number of length-m windows whose sum equals d.
//   - Sums: every length-m window sum, in window order.
//   - RotateLeft: left rotation by d positions (negative d rotates right).
//
// A window of length m starts at every position i with i+m ≤ len(s). The
// first window sum is computed directly; every later one is derived in O(1)
// from its predecessor by adding the entering element and subtracting the
// leaving one. A window length outside [1, len(s)] has no windows: CountSums
// returns 0 and Sums returns nil.
//
// Complexity
//
//   - Time:   O(n) for all n−m+1 windows, O(n) for RotateLeft
//   - Memory: O(1) for CountSums, O(n) for the slices returned by Sums and RotateLeft
//
// Usage
//
//	window.CountSums([]int{2, 2, 1, 3, 2}, 2, 4) // 2
//	window.RotateLeft(2, []int{1, 2, 3, 4, 5})   // [3 4 5 1 2]
package window
