// Package greedy solves selection problems where sorting the input first
// makes a single local test globally optimal.
//
// What
//
//   - MaximumPerimeterTriangle scans consecutive triples from the largest end
//     of the sorted sticks; the first non-degenerate one wins.
//   - TwoArrays pairs the smallest of one array with the largest of the
//     other; if that pairing misses the threshold anywhere, every pairing does.
//
// Neither function modifies its arguments. Sums are taken in int64 so that
// values near the int32 limits cannot overflow on 32-bit platforms.
//
// Complexity
//
//   - Time:   O(n log n), dominated by the sort
//   - Memory: O(n) for the sorted copies
//
// Usage
//
//	greedy.MaximumPerimeterTriangle([]int{1, 2, 3, 4, 5, 10}) // [3 4 5]
//	greedy.MaximumPerimeterTriangle([]int{1, 2, 3})           // [-1]
//	greedy.TwoArrays(10, []int{2, 1, 3}, []int{7, 8, 9})     // true
package greedy
