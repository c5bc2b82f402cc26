package bits_test

import (
	"fmt"

	"github.com/katalvlaran/katas/bits"
)

// ExampleLonelyInteger folds away every paired value.
func ExampleLonelyInteger() {
	fmt.Println(bits.LonelyInteger([]int{1, 2, 3, 4, 3, 2, 1}))
	// Output: 4
}

func ExampleFlipBits() {
	fmt.Println(bits.FlipBits(1))
	// Output: 4294967294
}

func ExampleIsPangram() {
	fmt.Println(bits.IsPangram("The quick brown fox jumps over the lazy dog"))
	// Output: true
}
