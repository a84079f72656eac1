package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/go-foundations/workstealpool"
)

func newRecurseCmd() *cobra.Command {
	var n int64

	cmd := &cobra.Command{
		Use:   "recurse",
		Short: "Sum 1..n via tasks that recursively submit their own continuation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("n must be positive")
			}

			p := workstealpool.New(workstealpool.WithWorkers(loadWorkers(cmd)))

			var sum int64
			var step func(k int64)
			step = func(k int64) {
				atomic.AddInt64(&sum, k)
				if k > 1 {
					workstealpool.SubmitDetach(p, func() { step(k - 1) })
				}
			}

			workstealpool.SubmitDetach(p, func() { step(n) })
			p.WaitForTasks()
			p.Close()

			fmt.Printf("sum(1..%d) = %d\n", n, atomic.LoadInt64(&sum))
			return nil
		},
	}

	cmd.Flags().Int64Var(&n, "n", 1000, "sum 1..n, one recursively-submitted task per term")
	return cmd
}
