// Package cli wires every kata to a cobra sub-command. Results are written
// to the command's output stream in the display formats of the original
// exercises (six-decimal ratios, YES/NO, space-separated lists).
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the katas command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "katas",
		Short:         "Run small sequence algorithms from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(countingCommands()...)
	root.AddCommand(aggregateCommands()...)
	root.AddCommand(sequenceCommands()...)
	root.AddCommand(textCommands()...)
	root.AddCommand(arithCommands()...)

	return root
}

// parseInts converts every argument to an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// joinInts renders values space-separated on one line.
func joinInts(w io.Writer, values []int) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// yesNo renders a boolean answer the way the exercises expect it.
func yesNo(ok bool) string {
	if ok {
		return "YES"
	}
	return "NO"
}

// intsCommand builds a command whose positional arguments are integers.
func intsCommand(use, short string, run func(cmd *cobra.Command, values []int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <int>...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return run(cmd, values)
		},
	}
}
