package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadWorkers resolves the effective worker count from (in priority order)
// the --workers flag, a bound config file value, then runtime.NumCPU().
func loadWorkers(cmd *cobra.Command) int {
	v := viper.New()
	v.SetDefault("workers", 0)

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		_ = v.ReadInConfig()
	}

	_ = v.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	workers := v.GetInt("workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return workers
}
