package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnoverse/canon/internal/sum"
)

var (
	trials int
	seed   int64
	depth  int
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run randomized soundness checks of the normalizer",
	Run: func(cmd *cobra.Command, args []string) {
		r := rand.New(rand.NewSource(seed))
		report := sum.SelfCheck(r, trials, depth)

		fmt.Println(report.Summary())
		for _, failure := range report.Failures {
			fmt.Println(failure)
		}

		if !report.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	selfcheckCmd.Flags().IntVar(&trials, "trials", 1000, "Number of random trials")
	selfcheckCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	selfcheckCmd.Flags().IntVar(&depth, "depth", 8, "Maximum depth of generated expressions")
}
