package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/interp"
	"github.com/jamesoh3928/lunacore/lunaenv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showAST   bool
		showStats bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "lunacore [demo]",
		Short: "Run one of lunacore's built-in demo programs",
		Long: "lunacore drives the tree-walking evaluator over a small set of\n" +
			"hand-built demo programs, since this module does not include a\n" +
			"concrete-syntax parser. Pick a demo by name, or omit it to list the\n" +
			"available ones.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listDemos(cmd)
			}
			block, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q; run without arguments to list the available demos", args[0])
			}

			logger := hclog.NewNullLogger()
			if verbose {
				logger = hclog.New(&hclog.LoggerOptions{
					Name:  "lunacore",
					Level: hclog.Debug,
				})
			}

			program := block()
			if showAST {
				ast.Print(cmd.OutOrStdout(), program)
				fmt.Fprintln(cmd.OutOrStdout())
			}

			var elapsed time.Duration
			it := interp.New(interp.Options{
				Stdout: cmd.OutOrStdout(),
				Logger: logger,
				Stats: func(d time.Duration) {
					elapsed = d
				},
			})

			env := lunaenv.New()
			if _, err := it.Run(env, program); err != nil {
				return err
			}
			if showStats {
				fmt.Fprintf(cmd.OutOrStdout(), "ran in %s\n", elapsed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAST, "ast", false, "print the demo's AST before running it")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print wall-clock execution time after running")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level interpreter logging")

	return cmd
}

func listDemos(cmd *cobra.Command) error {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(cmd.OutOrStdout(), "available demos:")
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}
