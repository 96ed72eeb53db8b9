package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/render"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list algorithms and their input limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := a.engine.Catalog()
			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"Algorithm", "Input", "Limits"})
			for _, k := range engine.Kinds() {
				var input, limits string
				switch {
				case k.IsSequence():
					c, _ := catalog.Lookup(k.String())
					input = "numbers"
					if k.IsSearch() {
						input += " + --target"
					}
					limits = fmt.Sprintf("%d..%d values", c.MinSize, c.MaxSize)
					if c.RequireSorted {
						limits += ", sorted"
					}
					if c.IntegersOnly {
						limits += ", integers"
					}
					if c.HasRange {
						limits += fmt.Sprintf(", in [%g, %g]", c.Min, c.Max)
					}
				case k == engine.Factorial:
					input = "n"
					limits = fmt.Sprintf("%d..%d", catalog.Factorial.Min, catalog.Factorial.Max)
				default:
					input = "edges + --start"
					limits = "up to " + strconv.Itoa(catalog.Graph.MaxVertices) + " vertices"
				}
				tbl.Append([]string{k.String(), input, limits})
			}
			tbl.Render()

			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <algorithm> [input]",
		Short: "record a trace and print every step",
		Args:  a.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, _, err := a.session(out, args)
			if err != nil {
				return err
			}
			tr := s.Trace()
			switch a.format {
			case "table":
				render.Table(out, tr)
			case "pretty":
				for _, step := range tr.Steps() {
					fmt.Fprintln(out, render.Pretty(step))
				}
			default:
				return errors.Newf("unknown format %q (want table or pretty)", a.format)
			}
			fmt.Fprintf(out, "%s: %d steps, run %s\n", tr.Algorithm(), tr.Len(), tr.RunID())

			return nil
		},
	}
	a.inputFlags(cmd)
	cmd.Flags().StringVarP(&a.format, "format", "f", "table", "output format: table or pretty")

	return cmd
}

func (a *app) stepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <algorithm> [input]",
		Short: "print a single step of a trace",
		Args:  a.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cur, err := a.session(cmd.OutOrStdout(), args)
			if err != nil {
				return err
			}
			cur.JumpTo(a.at)
			step, _ := cur.Current()
			render.Step(cmd.OutOrStdout(), step, cur.Len(), a.height)

			return nil
		},
	}
	a.inputFlags(cmd)
	cmd.Flags().IntVar(&a.at, "at", 0, "step index; clamped to the trace")

	return cmd
}
