package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-foundations/workstealpool"
)

func newStringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strings [words...]",
		Short: "Uppercase a batch of words through the pool and print each result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"hello world", "golang programming", "concurrent processing", "worker pool pattern"}
			}

			p := workstealpool.New(workstealpool.WithWorkers(loadWorkers(cmd)))
			defer p.Close()

			futures := make([]*workstealpool.Future[string], len(args))
			for i, word := range args {
				word := word
				futures[i] = workstealpool.Submit(p, func() (string, error) {
					time.Sleep(10 * time.Millisecond)
					return strings.ToUpper(word), nil
				})
			}

			fmt.Printf("processing %d words with %d workers...\n\n", len(args), p.Size())
			for i, f := range futures {
				v, err := f.Wait()
				if err != nil {
					fmt.Printf("%d. [ERROR] %v\n", i+1, err)
					continue
				}
				fmt.Printf("%d. %s -> %s\n", i+1, args[i], v)
			}

			m := p.Metrics()
			fmt.Printf("\nsubmitted=%d completed=%d failed=%d stolen=%d\n", m.Submitted, m.Completed, m.Failed, m.Stolen)
			return nil
		},
	}
}
