package cli

import (
	"fmt"

	"github.com/katalvlaran/katas/counting"
	"github.com/spf13/cobra"
)

func countingCommands() []*cobra.Command {
	var (
		domain  int
		offset  int
		lenient bool
		k       int
		queries []string
	)

	histogram := intsCommand("histogram", "Bucket counts of values in [offset,offset+k)", func(cmd *cobra.Command, values []int) error {
		policy := counting.Strict
		if lenient {
			policy = counting.Lenient
		}
		freq, err := counting.Histogram(values, domain, counting.WithPolicy(policy), counting.WithOffset(offset))
		if err != nil {
			return err
		}
		return joinInts(cmd.OutOrStdout(), freq)
	})
	histogram.Flags().IntVar(&domain, "k", 100, "domain size")
	histogram.Flags().IntVar(&offset, "offset", 0, "smallest value of the domain")
	histogram.Flags().BoolVar(&lenient, "lenient", false, "drop out-of-range values instead of failing")

	countingSort := intsCommand("counting-sort", "100-bucket frequency array", func(cmd *cobra.Command, values []int) error {
		freq, err := counting.CountingSort(values)
		if err != nil {
			return err
		}
		return joinInts(cmd.OutOrStdout(), freq)
	})

	pairs := intsCommand("divisible-sum-pairs", "Count pairs whose sum is divisible by k", func(cmd *cobra.Command, values []int) error {
		n, err := counting.DivisibleSumPairs(k, values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	})
	pairs.Flags().IntVar(&k, "k", 1, "divisor")

	matching := &cobra.Command{
		Use:   "sparse-arrays <string>...",
		Short: "Occurrences of each query string",
		RunE: func(cmd *cobra.Command, args []string) error {
			return joinInts(cmd.OutOrStdout(), counting.MatchingStrings(args, queries))
		},
	}
	matching.Flags().StringSliceVarP(&queries, "query", "q", nil, "query strings")

	picking := intsCommand("picking-numbers", "Longest multiset with max-min <= 1", func(cmd *cobra.Command, values []int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), counting.PickingNumbers(values))
		return err
	})

	birds := intsCommand("migratory-birds", "Most frequent bird type (1..5)", func(cmd *cobra.Command, values []int) error {
		id, err := counting.MigratoryBirds(values)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
		return err
	})

	socks := intsCommand("sock-merchant", "Number of matching pairs", func(cmd *cobra.Command, values []int) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), counting.SockMerchant(values))
		return err
	})

	return []*cobra.Command{histogram, countingSort, pairs, matching, picking, birds, socks}
}
