package cli

import (
	"fmt"

	"github.com/katalvlaran/katas/aggregate"
	"github.com/spf13/cobra"
)

func aggregateCommands() []*cobra.Command {
	var size int

	plusMinus := intsCommand("plus-minus", "Ratios of positive, negative and zero values", func(cmd *cobra.Command, values []int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), aggregate.PlusMinus(values))
		return err
	})

	miniMax := intsCommand("mini-max-sum", "Min and max sums of all values but one", func(cmd *cobra.Command, values []int) error {
		lo, hi, err := aggregate.MiniMaxSum(values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), lo, hi)
		return err
	})

	diagonal := intsCommand("diagonal-difference", "Absolute diagonal difference of a row-major square matrix", func(cmd *cobra.Command, values []int) error {
		if size <= 0 || len(values) != size*size {
			return fmt.Errorf("%w: got %d values for n=%d", aggregate.ErrNotSquare, len(values), size)
		}
		m := make([][]int, size)
		for i := range m {
			m[i] = values[i*size : (i+1)*size]
		}
		d, err := aggregate.DiagonalDifference(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
		return err
	})
	diagonal.Flags().IntVar(&size, "n", 0, "matrix dimension")

	grading := intsCommand("grading-students", "Round grades to the next multiple of 5", func(cmd *cobra.Command, values []int) error {
		return joinInts(cmd.OutOrStdout(), aggregate.GradingStudents(values))
	})

	valleys := &cobra.Command{
		Use:   "counting-valleys <path>",
		Short: "Valleys walked on a U/D path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := aggregate.CountingValleys(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}

	mars := &cobra.Command{
		Use:   "mars-exploration <signal>",
		Short: "Letters altered in a stream of SOS messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), aggregate.MarsExploration(args[0]))
			return err
		},
	}

	return []*cobra.Command{plusMinus, miniMax, diagonal, grading, valleys, mars}
}
