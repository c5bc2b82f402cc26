package window

// CountSums returns how many contiguous windows of length m in s sum to d.
func CountSums(s []int, m, d int) int {
	count := 0
	slide(s, m, func(sum int) {
		if sum == d {
			count++
		}
	})

	return count
}

// Sums returns the sum of every length-m window of s, in window order.
func Sums(s []int, m int) []int {
	if m <= 0 || m > len(s) {
		return nil
	}
	out := make([]int, 0, len(s)-m+1)
	slide(s, m, func(sum int) {
		out = append(out, sum)
	})

	return out
}

// slide calls visit with each window sum, left to right.
func slide(s []int, m int, visit func(sum int)) {
	if m <= 0 || m > len(s) {
		return
	}

	sum := 0
	for _, v := range s[:m] {
		sum += v
	}
	visit(sum)

	for j := m; j < len(s); j++ {
		sum += s[j] - s[j-m]
		visit(sum)
	}
}

// RotateLeft returns a copy of arr rotated left by d positions.
// d is reduced modulo len(arr) with the sign of the divisor, so a negative
// d rotates right. arr is left untouched; an empty arr yields an empty slice.
func RotateLeft(d int, arr []int) []int {
	n := len(arr)
	if n == 0 {
		return []int{}
	}
	k := ((d % n) + n) % n

	out := make([]int, 0, n)
	out = append(out, arr[k:]...)
	out = append(out, arr[:k]...)

	return out
}
