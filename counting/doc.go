// Package counting answers frequency questions over bounded-domain inputs
// by tallying values into a fixed-size bucket array (or a hash map when the
// domain is open) and then reading answers straight from the buckets.
//
// What
//
//   - Histogram: tally integers in [lo, lo+k) into k buckets.
//   - CountingSort: frequency array for values in [0,100), plus Expand to
//     materialise the sorted sequence.
//   - DivisibleSumPairs: count pairs i<j whose sum is divisible by k.
//   - MatchingStrings: occurrences of each query string.
//   - PickingNumbers: longest multiset whose max−min ≤ 1.
//   - MigratoryBirds: most frequent bird type, ties to the smallest ID.
//   - SockMerchant: number of matching pairs.
//
// Range policy
//
// Every bounded-domain operation declares how it treats values outside its
// domain:
//
//   - Strict  — the first out-of-range value aborts the call with
//     ErrOutOfRange (wrapped with the value and its index).
//   - Lenient — out-of-range values are dropped; WithOnDropped observes them.
//
// Histogram defaults to Strict. CountingSort and MigratoryBirds are Strict,
// PickingNumbers is Lenient.
//
// Complexity
//
//   - Time:   O(n + k)
//   - Memory: O(k)
//
// Usage
//
//	freq, err := counting.Histogram(values, 6,
//	    counting.WithPolicy(counting.Lenient),
//	    counting.WithOnDropped(func(v, i int) { dropped++ }),
//	)
//	if err != nil {
//	    // ErrBadDomain, ErrOutOfRange or ErrOptionViolation
//	}
package counting
