// Command katas runs the algorithms of this module from the command line.
//
//	katas divisible-sum-pairs --k 3 1 3 2 6 1 2
//	katas camel-case "S;M;plasticCup()" "C;C;coffee machine"
//	katas plus-minus -- -4 3 -9 0 4 1
//
// Negative values must follow "--" so they are not read as flags.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/katas/internal/cli"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		os.Exit(1)
	}
}
