// Package clock converts wall-clock strings between 12-hour and 24-hour
// notation.
package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	// layout12 is hh:mm:ss followed by AM or PM, e.g. "07:05:45PM".
	layout12 = "03:04:05PM"

	// layout24 is HH:MM:SS, e.g. "19:05:45".
	layout24 = "15:04:05"
)

// ErrBadTime is returned when the input is not a valid hh:mm:ssAM|PM string.
var ErrBadTime = errors.New("clock: invalid 12-hour time")

// To24Hour converts a 12-hour time such as "07:05:45PM" into 24-hour
// notation ("19:05:45"). 12 AM becomes 00 and 12 PM stays 12.
//
// The input must be exactly hh:mm:ssAM or hh:mm:ssPM with hh in 01..12;
// fractional seconds and hour 00 are rejected with ErrBadTime.
func To24Hour(s string) (string, error) {
	if len(s) != len(layout12) {
		return "", fmt.Errorf("%w: %q: want %d characters", ErrBadTime, s, len(layout12))
	}
	if s[:2] == "00" {
		return "", fmt.Errorf("%w: %q: hour 00 does not exist on a 12-hour clock", ErrBadTime, s)
	}
	t, err := time.Parse(layout12, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrBadTime, s, err)
	}
	return t.Format(layout24), nil
}
