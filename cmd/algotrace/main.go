// Command algotrace records an algorithm run and prints or replays its
// steps in the terminal.
//
//	algotrace list
//	algotrace run bubble-sort "5,3,1,4,2"
//	algotrace step binary-search "1 3 5 7 9" --target 7 --at 2
//	algotrace play bfs "A-B A-C B-D" --start A --interval 300ms
//	algotrace run quick-sort --random --seed 42
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/config"
	"github.com/katalvlaran/algotrace/engine"
)

// app holds the global flags and the engine built from them.
type app struct {
	configPath string
	verbose    bool
	target     string
	start      string
	random     bool
	seed       uint64
	format     string
	at         int
	height     int

	engine *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "algotrace [command] (flags)",
		Short:         "record and replay algorithm traces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(
		&a.configPath, "config", "", "YAML catalog overriding the built-in input limits")
	root.PersistentFlags().BoolVarP(
		&a.verbose, "verbose", "v", false, "log run lifecycle to stderr")

	cobra.EnableCommandSorting = false
	root.AddCommand(a.listCmd(), a.runCmd(), a.stepCmd(), a.playCmd())

	return root
}

// setup loads the catalog and builds the engine.
func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	catalog := config.Default()
	if a.configPath != "" {
		c, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		catalog = c
		logger.Info("catalog loaded", slog.String("path", a.configPath))
	}

	e, err := engine.New(engine.WithCatalog(catalog), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	a.engine = e

	return nil
}

// inputFlags registers the flags shared by commands that build a trace.
func (a *app) inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.target, "target", "t", "", "value to search for (search algorithms)")
	cmd.Flags().StringVarP(&a.start, "start", "s", "", "start vertex (graph traversals)")
	cmd.Flags().IntVar(&a.height, "plot-height", 6, "height of the snapshot plot in lines")
	cmd.Flags().BoolVarP(&a.random, "random", "r", false, "generate the input (sequence algorithms and factorial)")
	cmd.Flags().Uint64Var(&a.seed, "seed", 0, "seed for --random; 0 picks one from the clock")
}

// inputArgs takes the algorithm and its input, or only the algorithm when
// --random is set.
func (a *app) inputArgs(cmd *cobra.Command, args []string) error {
	if a.random {
		return cobra.ExactArgs(1)(cmd, args)
	}

	return cobra.ExactArgs(2)(cmd, args)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
