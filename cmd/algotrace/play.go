package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/render"
)

func (a *app) playCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "play <algorithm> [input]",
		Short: "replay a trace one step per tick",
		Args:  a.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return errors.Newf("interval must be positive (%s)", interval)
			}
			_, cur, err := a.session(cmd.OutOrStdout(), args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return play(ctx, cmd.OutOrStdout(), cur, interval, a.height)
		},
	}
	a.inputFlags(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "i", 500*time.Millisecond, "delay between steps")

	return cmd
}

// play advances cur once per tick, printing each step, until the last step
// is shown or ctx is done.
func play(ctx context.Context, w io.Writer, cur *playback.Cursor, interval time.Duration, height int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for cur.StepForward() {
		step, _ := cur.Current()
		render.Step(w, step, cur.Len(), height)
		if cur.AtEnd() {
			return nil
		}
		fmt.Fprintln(w)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}
