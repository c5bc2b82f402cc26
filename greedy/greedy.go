package greedy

import (
	"slices"
)

// NoTriangle is the single element of the result returned when no
// non-degenerate triangle can be formed.
const NoTriangle = -1

// MaximumPerimeterTriangle picks three sticks forming a non-degenerate
// triangle with the largest perimeter, breaking ties by the longest and then
// the shortest side, and returns their lengths in non-decreasing order.
//
// With the sticks sorted, the first triple (a, b, c) from the right with
// a + b > c is optimal: any triple further left has a smaller or equal
// perimeter and smaller or equal sides.
//
// Returns []int{NoTriangle} when fewer than three sticks are given or no
// triple satisfies the triangle inequality.
func MaximumPerimeterTriangle(sticks []int) []int {
	if len(sticks) < 3 {
		return []int{NoTriangle}
	}
	s := slices.Clone(sticks)
	slices.Sort(s)

	for i := len(s) - 1; i >= 2; i-- {
		a, b, c := s[i-2], s[i-1], s[i]
		if int64(a)+int64(b) > int64(c) {
			return []int{a, b, c}
		}
	}

	return []int{NoTriangle}
}

// TwoArrays reports whether a and b can be permuted so that a[i]+b[i] >= k
// for every i.
//
// Sorting a ascending and b descending gives the pairing whose weakest sum
// is as large as possible (an exchange argument shows swapping any two
// partners never raises the minimum), so it is enough to test that one
// pairing. Arrays of different lengths cannot be paired and yield false.
func TwoArrays(k int, a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	asc := slices.Clone(a)
	slices.Sort(asc)
	desc := slices.Clone(b)
	slices.Sort(desc)
	slices.Reverse(desc)

	for i := range asc {
		if int64(asc[i])+int64(desc[i]) < int64(k) {
			return false
		}
	}

	return true
}
