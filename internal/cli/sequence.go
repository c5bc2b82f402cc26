package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/katas/bits"
	"github.com/katalvlaran/katas/greedy"
	"github.com/katalvlaran/katas/window"
	"github.com/spf13/cobra"
)

func sequenceCommands() []*cobra.Command {
	var (
		day, month int
		shift      int
		threshold  int
		a, b       []int
	)

	birthday := intsCommand("subarray-division", "Windows of length m summing to d", func(cmd *cobra.Command, values []int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), window.CountSums(values, month, day))
		return err
	})
	birthday.Flags().IntVar(&day, "d", 0, "target sum")
	birthday.Flags().IntVar(&month, "m", 1, "window length")

	rotate := intsCommand("left-rotation", "Rotate values left by d", func(cmd *cobra.Command, values []int) error {
		return joinInts(cmd.OutOrStdout(), window.RotateLeft(shift, values))
	})
	rotate.Flags().IntVar(&shift, "d", 0, "positions to rotate")

	triangle := intsCommand("maximum-perimeter-triangle", "Non-degenerate triangle with the largest perimeter", func(cmd *cobra.Command, values []int) error {
		return joinInts(cmd.OutOrStdout(), greedy.MaximumPerimeterTriangle(values))
	})

	twoArrays := &cobra.Command{
		Use:   "permuting-two-arrays",
		Short: "Whether A and B can be paired so every sum reaches k",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), yesNo(greedy.TwoArrays(threshold, a, b)))
			return err
		},
	}
	twoArrays.Flags().IntVar(&threshold, "k", 0, "minimum pair sum")
	twoArrays.Flags().IntSliceVar(&a, "a", nil, "first array")
	twoArrays.Flags().IntSliceVar(&b, "b", nil, "second array")

	lonely := intsCommand("lonely-integer", "The value without a pair", func(cmd *cobra.Command, values []int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), bits.LonelyInteger(values))
		return err
	})

	flip := &cobra.Command{
		Use:   "flipping-bits <uint32>",
		Short: "Invert all 32 bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bits.FlipBits(uint32(n)))
			return err
		},
	}

	return []*cobra.Command{birthday, rotate, triangle, twoArrays, lonely, flip}
}
