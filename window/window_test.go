package window_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/katas/window"
	"github.com/stretchr/testify/assert"
)

// countSumsBrute recomputes every window sum from scratch.
func countSumsBrute(s []int, m, d int) int {
	if m <= 0 || m > len(s) {
		return 0
	}
	count := 0
	for i := 0; i+m <= len(s); i++ {
		sum := 0
		for _, v := range s[i : i+m] {
			sum += v
		}
		if sum == d {
			count++
		}
	}
	return count
}

// rotateLeftBrute shifts the head to the tail one step at a time.
func rotateLeftBrute(d int, arr []int) []int {
	out := append([]int{}, arr...)
	if len(out) == 0 {
		return out
	}
	k := ((d % len(out)) + len(out)) % len(out)
	for step := 0; step < k; step++ {
		out = append(out[1:], out[0])
	}
	return out
}

func TestCountSums(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		m, d int
		want int
	}{
		{"sample", []int{2, 2, 1, 3, 2}, 2, 4, 2},
		{"hackerrank", []int{1, 2, 1, 3, 2}, 2, 3, 2},
		{"no match", []int{1, 1, 1, 1, 1, 1}, 2, 3, 0},
		{"single whole", []int{4}, 1, 4, 1},
		{"window equals length", []int{1, 2, 3}, 3, 6, 1},
		{"window too long", []int{1, 2, 3}, 4, 6, 0},
		{"zero window", []int{1, 2, 3}, 0, 0, 0},
		{"negative window", []int{1, 2, 3}, -1, 0, 0},
		{"empty", nil, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.CountSums(tt.s, tt.m, tt.d))
		})
	}
}

// TestCountSums_AgreesWithBruteForce checks the incremental count against
// recomputing each window from scratch.
func TestCountSums_AgreesWithBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for trial := 0; trial < 500; trial++ {
		s := make([]int, r.Intn(30))
		for i := range s {
			s[i] = r.Intn(6)
		}
		m := r.Intn(len(s)+3) - 1
		d := r.Intn(20)
		assert.Equal(t, countSumsBrute(s, m, d), window.CountSums(s, m, d), "s=%v m=%d d=%d", s, m, d)
	}
}

func TestSums(t *testing.T) {
	assert.Equal(t, []int{4, 3, 4, 5}, window.Sums([]int{2, 2, 1, 3, 2}, 2))
	assert.Equal(t, []int{10}, window.Sums([]int{1, 2, 3, 4}, 4))
	assert.Nil(t, window.Sums([]int{1, 2}, 3))
	assert.Nil(t, window.Sums([]int{1, 2}, 0))
}

func TestRotateLeft(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{5, 1, 2, 3, 4}, window.RotateLeft(4, arr))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, window.RotateLeft(10, arr))
	assert.Equal(t, []int{3, 4, 5, 1, 2}, window.RotateLeft(2, arr))
	assert.Equal(t, []int{5, 1, 2, 3, 4}, window.RotateLeft(-1, arr))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr, "input must not be modified")
	assert.Equal(t, []int{}, window.RotateLeft(3, nil))
}

func TestRotateLeft_AgreesWithBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for trial := 0; trial < 200; trial++ {
		arr := make([]int, r.Intn(12))
		for i := range arr {
			arr[i] = r.Intn(100)
		}
		d := r.Intn(40) - 20
		assert.Equal(t, rotateLeftBrute(d, arr), window.RotateLeft(d, arr), "d=%d arr=%v", d, arr)
	}
}
