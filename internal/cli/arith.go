package cli

import (
	"fmt"

	"github.com/katalvlaran/katas/arith"
	"github.com/spf13/cobra"
)

func arithCommands() []*cobra.Command {
	kangaroo := &cobra.Command{
		Use:   "number-line-jumps <x1> <v1> <x2> <v2>",
		Short: "Whether two kangaroos land together",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), yesNo(arith.Kangaroo(v[0], v[1], v[2], v[3])))
			return err
		},
	}

	book := &cobra.Command{
		Use:   "drawing-book <n> <p>",
		Short: "Fewest page turns to reach page p",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), arith.PageCount(v[0], v[1]))
			return err
		},
	}

	return []*cobra.Command{kangaroo, book}
}
