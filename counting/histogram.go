package counting

import "fmt"

// Histogram tallies values into k buckets covering [lo, lo+k), where lo is
// the offset set by WithOffset (0 by default). Bucket i holds the number of
// occurrences of lo+i.
//
// Under the Strict policy the sum of all buckets equals len(values).
// Under the Lenient policy it equals len(values) minus the dropped values.
//
// Returns ErrBadDomain if k <= 0, ErrOptionViolation for bad options and,
// under Strict, ErrOutOfRange for the first value outside the domain.
func Histogram(values []int, k int, opts ...Option) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadDomain, k)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	freq := make([]int, k)
	for i, v := range values {
		idx := v - o.Offset
		if idx < 0 || idx >= k {
			if o.Policy == Strict {
				return nil, fmt.Errorf("%w: values[%d]=%d not in [%d,%d)",
					ErrOutOfRange, i, v, o.Offset, o.Offset+k)
			}
			o.OnDropped(v, i)
			continue
		}
		freq[idx]++
	}

	return freq, nil
}

// Expand turns a frequency array back into the sorted sequence it counts,
// with bucket i standing for the value lo+i.
func Expand(freq []int, lo int) []int {
	total := 0
	for _, c := range freq {
		total += c
	}
	out := make([]int, 0, total)
	for i, c := range freq {
		for ; c > 0; c-- {
			out = append(out, lo+i)
		}
	}

	return out
}
