package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnoverse/canon/internal/sum"
	"github.com/gnoverse/canon/parse"
)

var bindings []string

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an addition expression",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := parse.Expr(args[0])
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		env, err := parseBindings(bindings)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		checker := sum.New()
		fmt.Println(checker.Eval(expr, env).String())
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&bindings, "bind", nil, "Symbol binding in the form name=value (repeatable)")
}

func parseBindings(raw []string) (*sum.Env, error) {
	env := sum.NewEnv()
	for _, binding := range raw {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, fmt.Errorf("invalid binding %q, expected name=value", binding)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			return nil, fmt.Errorf("invalid binding %q, empty name", binding)
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid binding %q: %w", binding, err)
		}
		env.Set(name, sum.IntValue{Val: n})
	}
	return env, nil
}
