// Package arith answers small counting questions with closed-form
// arithmetic instead of simulation.
package arith

// Kangaroo reports whether two kangaroos starting at x1 and x2 and jumping
// v1 and v2 units per jump ever land on the same spot after the same number
// of jumps (zero jumps included).
//
// They meet after n ≥ 0 jumps iff x1 + n·v1 == x2 + n·v2, i.e. the gap
// x2−x1 is a non-negative multiple of the closing speed v1−v2.
func Kangaroo(x1, v1, x2, v2 int) bool {
	if v1 == v2 {
		return x1 == x2
	}
	gap := int64(x2) - int64(x1)
	speed := int64(v1) - int64(v2)
	if gap != 0 && (gap < 0) != (speed < 0) {
		return false
	}
	return gap%speed == 0
}

// PageCount returns the fewest page turns needed to reach page p of an
// n-page book, opening it either from the front or from the back.
// Page 1 is on the right of the first spread, so page p sits on spread p/2.
func PageCount(n, p int) int {
	return min(p/2, n/2-p/2)
}
