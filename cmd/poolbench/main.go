// Command poolbench is a small CLI for exercising and benchmarking the
// work-stealing Pool from the command line, in place of the ad hoc example
// binaries a library this shape usually ships with.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "poolbench",
		Short: "Exercise and benchmark the work-stealing pool",
	}

	root.PersistentFlags().Int("workers", 0, "worker count (0 selects runtime.NumCPU())")
	root.PersistentFlags().String("config", "", "path to a poolbench config file (yaml/json/toml)")

	root.AddCommand(newStringsCmd())
	root.AddCommand(newRecurseCmd())
	root.AddCommand(newCompareCmd())

	return root
}
