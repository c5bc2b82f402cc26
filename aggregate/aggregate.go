package aggregate

import (
	"fmt"
	"math"
)

const (
	// signal is the message every Mars probe repeats.
	signal = "SOS"

	// passMark is the lowest grade that gets rounded.
	passMark = 38

	// maxGrade is the highest valid grade; anything above is dropped.
	maxGrade = 100
)

// PlusMinus returns the share of positive, negative and zero values in arr.
// An empty input yields zero ratios.
func PlusMinus(arr []int) Ratios {
	if len(arr) == 0 {
		return Ratios{}
	}

	var pos, neg, zero int
	for _, v := range arr {
		switch {
		case v > 0:
			pos++
		case v < 0:
			neg++
		default:
			zero++
		}
	}

	n := float64(len(arr))
	return Ratios{
		Positive: float64(pos) / n,
		Negative: float64(neg) / n,
		Zero:     float64(zero) / n,
	}
}

// MiniMaxSum returns the minimum and maximum sums obtainable by adding all
// elements of arr but one. Sums are accumulated in int64.
//
// The minimum sum drops the largest element and the maximum sum drops the
// smallest, so one pass tracking total, min and max is enough.
// A single-element input yields (0, 0). Returns ErrEmptyInput for no elements.
func MiniMaxSum(arr []int) (lo, hi int64, err error) {
	if len(arr) == 0 {
		return 0, 0, ErrEmptyInput
	}

	var total int64
	minV, maxV := int64(math.MaxInt64), int64(math.MinInt64)
	for _, v := range arr {
		x := int64(v)
		total += x
		minV = min(minV, x)
		maxV = max(maxV, x)
	}

	return total - maxV, total - minV, nil
}

// CountingValleys returns how many valleys a hike walks through.
// path is a sequence of 'U' (up) and 'D' (down) steps starting at sea level;
// a valley ends with an up step that returns to sea level.
//
// Returns ErrBadStep, with the offending position, for any other byte.
func CountingValleys(path string) (int, error) {
	altitude, valleys := 0, 0
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case 'U':
			altitude++
			if altitude == 0 {
				valleys++
			}
		case 'D':
			altitude--
		default:
			return 0, fmt.Errorf("%w: %q at %d", ErrBadStep, path[i], i)
		}
	}

	return valleys, nil
}

// MarsExploration returns how many letters of s differ from the repeated
// "SOS" signal, i.e. the byte expected at position i is "SOS"[i%3].
func MarsExploration(s string) int {
	changed := 0
	for i := 0; i < len(s); i++ {
		if s[i] != signal[i%len(signal)] {
			changed++
		}
	}

	return changed
}

// DiagonalDifference returns the absolute difference between the sums of
// the primary and secondary diagonals of a square matrix.
// An empty matrix yields 0; a ragged or rectangular one ErrNotSquare.
func DiagonalDifference(m [][]int) (int, error) {
	n := len(m)
	primary, secondary := 0, 0
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		primary += row[i]
		secondary += row[n-1-i]
	}

	d := primary - secondary
	if d < 0 {
		d = -d
	}

	return d, nil
}

// GradingStudents applies the rounding rule to every grade:
//
//   - below 38: kept as is (failing grades are never rounded);
//   - above 100: dropped from the result;
//   - otherwise rounded up to the next multiple of 5 when it is less than
//     3 away, kept as is when not.
func GradingStudents(grades []int) []int {
	out := make([]int, 0, len(grades))
	for _, g := range grades {
		if g > maxGrade {
			continue
		}
		if g >= passMark {
			if r := g % 5; r >= 3 {
				g += 5 - r
			}
		}
		out = append(out, g)
	}

	return out
}
