package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/katas/greedy"
)

func ExampleMaximumPerimeterTriangle() {
	fmt.Println(greedy.MaximumPerimeterTriangle([]int{1, 2, 3, 4, 5, 10}))
	fmt.Println(greedy.MaximumPerimeterTriangle([]int{1, 2, 3}))
	// Output:
	// [3 4 5]
	// [-1]
}

func ExampleTwoArrays() {
	fmt.Println(greedy.TwoArrays(10, []int{2, 1, 3}, []int{7, 8, 9}))
	// Output: true
}
