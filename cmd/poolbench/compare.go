package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-foundations/workstealpool"
	"github.com/go-foundations/workstealpool/internal/bench"
)

func newCompareCmd() *cobra.Command {
	var jobs int
	var skew bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the work-stealing pool against round-robin and chunked baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := loadWorkers(cmd)
			tasks := workload(jobs, skew)

			fmt.Printf("workload: %d tasks, %d workers, skewed=%v\n", len(tasks), workers, skew)
			fmt.Println("strategy    | duration")
			fmt.Println("------------|----------")

			d := bench.RoundRobin(workers, clone(tasks))
			fmt.Printf("round robin | %v\n", d)

			d = bench.Chunked(workers, clone(tasks))
			fmt.Printf("chunked     | %v\n", d)

			p := workstealpool.New(workstealpool.WithWorkers(workers))
			start := time.Now()
			workstealpool.SubmitBatch(p, clone(tasks)...)
			p.WaitForTasks()
			d = time.Since(start)
			m := p.Metrics()
			p.Close()
			fmt.Printf("pool        | %v (stolen=%d)\n", d, m.Stolen)

			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 40, "number of tasks in the workload")
	cmd.Flags().BoolVar(&skew, "skew", false, "mix in a few long tasks among many short ones")
	return cmd
}

func workload(n int, skew bool) []func() {
	tasks := make([]func(), n)
	for i := range tasks {
		i := i
		switch {
		case skew && i%10 == 0:
			tasks[i] = func() { time.Sleep(5 * time.Millisecond) }
		default:
			tasks[i] = func() { time.Sleep(100 * time.Microsecond) }
		}
	}
	return tasks
}

func clone(tasks []func()) []func() {
	out := make([]func(), len(tasks))
	copy(out, tasks)
	return out
}
