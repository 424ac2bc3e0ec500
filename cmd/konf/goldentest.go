package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"konf/internal/diagtest"
)

var (
	goldenUpdate  bool
	goldenJobs    int
	goldenNoCache bool
)

func init() {
	goldentestCmd.Flags().BoolVar(&goldenUpdate, "update", false, "rewrite golden files with current output")
	goldentestCmd.Flags().IntVar(&goldenJobs, "jobs", 0, "parallel case workers (0 = all CPUs)")
	goldentestCmd.Flags().BoolVar(&goldenNoCache, "no-cache", false, "skip the rendered-result cache")
}

var goldentestCmd = &cobra.Command{
	Use:   "goldentest <dir>",
	Short: "Run golden diagnostic cases under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &diagtest.Runner{
			Update: goldenUpdate,
			Jobs:   goldenJobs,
		}
		if !goldenNoCache {
			if cache, err := diagtest.OpenResultCache("konf"); err == nil {
				runner.Cache = cache
			}
		}

		results, err := runner.RunDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, res := range results {
			switch {
			case res.Err != nil:
				failed++
				fmt.Fprintf(out, "ERROR %s: %v\n", res.Dir, res.Err)
			case !res.Passed:
				failed++
				fmt.Fprintf(out, "FAIL  %s\n--- want ---\n%s--- got ---\n%s", res.Dir, res.Want, res.Got)
			default:
				fmt.Fprintf(out, "ok    %s\n", res.Dir)
			}
		}

		fmt.Fprintf(out, "%d case(s), %d failed\n", len(results), failed)
		if failed > 0 {
			return fmt.Errorf("%d golden case(s) failed", failed)
		}
		return nil
	},
}
