package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnoverse/canon/internal/sum"
	"github.com/gnoverse/canon/parse"
)

var foldConstants bool

var normCmd = &cobra.Command{
	Use:   "norm <expression>",
	Short: "Print the canonical form of an addition expression",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := parse.Expr(args[0])
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		config := sum.DefaultConfig()
		config.FoldConstants = foldConstants
		checker := sum.NewWithConfig(config)

		fmt.Println(checker.Canonicalize(expr).String())
	},
}

func init() {
	normCmd.Flags().BoolVar(&foldConstants, "fold", false, "Merge adjacent numeric literals in the result")
}
