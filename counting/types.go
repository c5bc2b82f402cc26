package counting

import (
	"errors"
	"fmt"
)

// Sentinel errors for counting operations.
var (
	// ErrOutOfRange is returned under the Strict policy when a value lies
	// outside the declared domain.
	ErrOutOfRange = errors.New("counting: value out of range")

	// ErrBadDomain is returned when the domain size (or divisor) is not positive.
	ErrBadDomain = errors.New("counting: domain size must be positive")

	// ErrEmptyInput is returned by operations that have no answer for an empty input.
	ErrEmptyInput = errors.New("counting: input is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("counting: invalid option supplied")
)

// Policy selects how out-of-range values are treated.
type Policy int

const (
	// Strict rejects the whole input on the first out-of-range value.
	Strict Policy = iota

	// Lenient silently drops out-of-range values.
	Lenient
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option configures Histogram via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when Histogram is invoked.
type Option func(*Options)

// Options holds the parameters of a Histogram call.
type Options struct {
	// Policy decides between rejecting and dropping out-of-range values.
	Policy Policy

	// Offset is the smallest value of the domain; buckets cover [Offset, Offset+k).
	Offset int

	// OnDropped is called for each value dropped under the Lenient policy.
	OnDropped func(value, index int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Strict policy, a zero offset and
// a no-op OnDropped hook.
func DefaultOptions() Options {
	return Options{
		Policy:    Strict,
		Offset:    0,
		OnDropped: func(int, int) {},
	}
}

// WithPolicy selects the range policy. Unknown policies are recorded as
// ErrOptionViolation.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		switch p {
		case Strict, Lenient:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown policy %v", ErrOptionViolation, p)
		}
	}
}

// WithOffset shifts the domain to [lo, lo+k).
func WithOffset(lo int) Option {
	return func(o *Options) {
		o.Offset = lo
	}
}

// WithOnDropped registers a hook for values dropped under the Lenient policy.
func WithOnDropped(fn func(value, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDropped = fn
		}
	}
}
