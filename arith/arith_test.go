package arith_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/katas/arith"
	"github.com/stretchr/testify/assert"
)

// kangarooSim simulates jumps until the trailing kangaroo can no longer catch up.
func kangarooSim(x1, v1, x2, v2 int) bool {
	for n := 0; n <= 20_000; n++ {
		if x1 == x2 {
			return true
		}
		x1 += v1
		x2 += v2
	}
	return false
}

// pageCountSim turns one spread at a time from the front and from the back.
// A spread shows pages (2k, 2k+1); page 0 does not exist.
func pageCountSim(n, p int) int {
	front := 0
	for left := 0; p != left && p != left+1; left += 2 {
		front++
	}
	back := 0
	for left := n - n%2; p != left && p != left+1; left -= 2 {
		back++
	}
	return min(front, back)
}

func TestKangaroo(t *testing.T) {
	tests := []struct {
		x1, v1, x2, v2 int
		want           bool
	}{
		{0, 3, 4, 2, true},
		{0, 2, 5, 3, false},
		{1, 1, 1, 2, true},
		{2, 1, 1, 2, true},
		{3, 2, 3, 2, true},
		{3, 2, 4, 2, false},
		{0, 2, 5, 1, true},
		{5, 1, 0, 2, true},
		{5, 2, 0, 1, false},
		{21, 6, 47, 3, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x1, tt.v1, tt.x2, tt.v2), func(t *testing.T) {
			assert.Equal(t, tt.want, arith.Kangaroo(tt.x1, tt.v1, tt.x2, tt.v2))
		})
	}
}

func TestKangaroo_AgreesWithSimulation(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		x1, v1 := r.Intn(50), 1+r.Intn(10)
		x2, v2 := r.Intn(50), 1+r.Intn(10)
		assert.Equal(t, kangarooSim(x1, v1, x2, v2), arith.Kangaroo(x1, v1, x2, v2),
			"x1=%d v1=%d x2=%d v2=%d", x1, v1, x2, v2)
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, arith.PageCount(6, 2))
	assert.Equal(t, 0, arith.PageCount(5, 4))
	assert.Equal(t, 1, arith.PageCount(5, 3))
	assert.Equal(t, 0, arith.PageCount(1, 1))
	assert.Equal(t, 1, arith.PageCount(6, 5))
}

func TestPageCount_AgreesWithSimulation(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for p := 1; p <= n; p++ {
			assert.Equal(t, pageCountSim(n, p), arith.PageCount(n, p), "n=%d p=%d", n, p)
		}
	}
}
