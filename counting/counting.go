package counting

import "fmt"

const (
	// sortDomain is the value range [0,100) accepted by CountingSort.
	sortDomain = 100

	// pickDomain covers 0..100 so that v+1 is always a valid bucket.
	pickDomain = 101

	// birdTypes is the number of bird types; IDs run from 1 to birdTypes.
	birdTypes = 5
)

// CountingSort returns the 100-bucket frequency array of arr.
// Values must lie in [0,100); the first one that does not yields ErrOutOfRange.
func CountingSort(arr []int) ([]int, error) {
	return Histogram(arr, sortDomain)
}

// DivisibleSumPairs counts index pairs i<j with (ar[i]+ar[j]) divisible by k.
//
// A remainder table records how many earlier values fall into each residue
// class; every value pairs with all earlier values of the complementary
// residue. Negative values are reduced into [0,k), so the result matches the
// pairwise definition for any integers. The table is a k-slot array while k
// does not exceed len(ar) and a map keyed by residue otherwise.
//
// Returns ErrBadDomain if k < 1.
// Complexity: O(n + min(n, k)) time and memory.
func DivisibleSumPairs(k int, ar []int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: k=%d", ErrBadDomain, k)
	}

	count := 0
	if k > len(ar) {
		seen := make(map[int]int, len(ar))
		for _, v := range ar {
			r := residue(v, k)
			count += seen[complement(r, k)]
			seen[r]++
		}
		return count, nil
	}

	seen := make([]int, k)
	for _, v := range ar {
		r := residue(v, k)
		count += seen[complement(r, k)]
		seen[r]++
	}

	return count, nil
}

// residue reduces v into [0,k) without overflowing for k near MaxInt.
func residue(v, k int) int {
	r := v % k
	if r < 0 {
		r += k
	}
	return r
}

// complement is the residue that r must meet for the pair sum to be 0 mod k.
func complement(r, k int) int {
	if r == 0 {
		return 0
	}
	return k - r
}

// MatchingStrings reports, for each query, how many times it occurs in strings.
// The result has one entry per query, in query order.
func MatchingStrings(strings, queries []string) []int {
	freq := make(map[string]int, len(strings))
	for _, s := range strings {
		freq[s]++
	}

	out := make([]int, len(queries))
	for i, q := range queries {
		out[i] = freq[q]
	}

	return out
}

// PickingNumbers returns the size of the largest sub-multiset of a in which
// any two elements differ by at most 1.
//
// Values outside [0,100] are ignored (Lenient policy). An empty input yields 0.
func PickingNumbers(a []int) int {
	freq, err := Histogram(a, pickDomain, WithPolicy(Lenient))
	if err != nil {
		return 0
	}

	best := 0
	for v := 0; v+1 < pickDomain; v++ {
		if c := freq[v] + freq[v+1]; c > best {
			best = c
		}
	}

	return best
}

// MigratoryBirds returns the most frequently sighted bird type; ties go to
// the smallest type ID. Type IDs must be in 1..5 (Strict policy).
//
// Returns ErrEmptyInput for no sightings and ErrOutOfRange for a bad ID.
func MigratoryBirds(arr []int) (int, error) {
	if len(arr) == 0 {
		return 0, ErrEmptyInput
	}
	freq, err := Histogram(arr, birdTypes, WithOffset(1))
	if err != nil {
		return 0, err
	}

	best := 0
	for i := 1; i < birdTypes; i++ {
		// strict > keeps the smallest ID on ties
		if freq[i] > freq[best] {
			best = i
		}
	}

	return best + 1, nil
}

// SockMerchant returns how many pairs of equal values can be formed from ar.
func SockMerchant(ar []int) int {
	unpaired := make(map[int]struct{}, len(ar))
	pairs := 0
	for _, color := range ar {
		if _, ok := unpaired[color]; ok {
			delete(unpaired, color)
			pairs++
			continue
		}
		unpaired[color] = struct{}{}
	}

	return pairs
}
