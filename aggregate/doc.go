// Package aggregate computes scalar summaries of a sequence in a single
// left-to-right pass.
//
// What
//
// Every operation visits each element exactly once and never backtracks:
// after i elements the running state (counters, sums, extrema, altitude)
// reflects exactly those i elements.
//
//	PlusMinus          — share of positive, negative and zero values.
//	MiniMaxSum         — min and max sum of all elements but one.
//	CountingValleys    — number of valleys walked on a U/D path.
//	MarsExploration    — letters altered in a stream of "SOS" signals.
//	DiagonalDifference — |primary − secondary| diagonal sums of a square matrix.
//	GradingStudents    — grades rounded by the next-multiple-of-5 rule.
//
// Sums are accumulated in int64; DiagonalDifference rejects ragged or
// non-square input with ErrNotSquare, CountingValleys rejects any step other
// than 'U' or 'D' with ErrBadStep.
//
// Complexity
//
//   - Time:   O(n) (O(n) rows for DiagonalDifference)
//   - Memory: O(1), except GradingStudents which returns a new slice
//
// Usage
//
//	lo, hi, err := aggregate.MiniMaxSum([]int{1, 2, 3, 4, 5}) // 10, 14, nil
//	fmt.Print(aggregate.PlusMinus([]int{-4, 3, -9, 0, 4, 1}))
package aggregate
