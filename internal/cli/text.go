package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/katas/bits"
	"github.com/katalvlaran/katas/camelcase"
	"github.com/katalvlaran/katas/clock"
	"github.com/spf13/cobra"
)

func textCommands() []*cobra.Command {
	camel := &cobra.Command{
		Use:   "camel-case <op;kind;payload>...",
		Short: "Split or combine camelCase identifiers, one instruction per argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range args {
				out, err := camelcase.Process(line)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	timeConversion := &cobra.Command{
		Use:   "time-conversion <hh:mm:ssAM|PM>",
		Short: "Convert 12-hour time to 24-hour time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := clock.To24Hour(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	pangram := &cobra.Command{
		Use:   "pangrams <word>...",
		Short: "Whether the sentence uses every letter",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer := "not pangram"
			if bits.IsPangram(strings.Join(args, " ")) {
				answer = "pangram"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	return []*cobra.Command{camel, timeConversion, pangram}
}
