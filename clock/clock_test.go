package clock_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/katas/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12:01:00PM", "12:01:00"},
		{"12:21:45AM", "00:21:45"},
		{"07:05:45PM", "19:05:45"},
		{"12:00:00AM", "00:00:00"},
		{"11:59:59PM", "23:59:59"},
		{"01:00:00AM", "01:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := clock.To24Hour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTo24Hour_AllHours checks every hour of both halves of the day.
func TestTo24Hour_AllHours(t *testing.T) {
	for h := 1; h <= 12; h++ {
		am, err := clock.To24Hour(fmt.Sprintf("%02d:30:15AM", h))
		require.NoError(t, err)
		pm, err := clock.To24Hour(fmt.Sprintf("%02d:30:15PM", h))
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("%02d:30:15", h%12), am)
		assert.Equal(t, fmt.Sprintf("%02d:30:15", h%12+12), pm)
	}
}

func TestTo24Hour_Errors(t *testing.T) {
	for _, in := range []string{
		"", "7:05:45PM", "13:00:00PM", "07:05:45", "07:61:00AM", "07:05:45XM", "19:05:45",
		"07:05:45.999PM", "07:05:45,5AM", "00:30:00PM", "00:00:00AM", " 07:05:45PM",
	} {
		_, err := clock.To24Hour(in)
		assert.ErrorIs(t, err, clock.ErrBadTime, "input %q", in)
	}
}

func ExampleTo24Hour() {
	s, _ := clock.To24Hour("07:05:45PM")
	fmt.Println(s)
	// Output: 19:05:45
}
