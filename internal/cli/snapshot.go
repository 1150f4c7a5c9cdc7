package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeviz/internal/app"
	"lifeviz/internal/core"
	"lifeviz/internal/render"
)

type snapshotOpts struct {
	output      string
	generations int
}

func newSnapshotCmd(cfg *app.Config) *cobra.Command {
	opts := snapshotOpts{output: "lifeviz.png"}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the 2D grid to a PNG after some generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.generations < 0 {
				return fmt.Errorf("generations %d is negative", opts.generations)
			}
			return runSnapshot(cmd.Context(), cfg, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "PNG file to write")
	cmd.Flags().IntVarP(&opts.generations, "generations", "g", 0, "generations to advance before rendering")
	return cmd
}

func runSnapshot(ctx context.Context, cfg *app.Config, opts snapshotOpts) error {
	logger := loggerFromContext(ctx)

	u, err := newUniverse(cfg)
	if err != nil {
		return err
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		return err
	}
	surface := render.NewRGBASurface()
	ctrl := app.NewController(u, app.NewGridView(surface), core.NewFrameQueue(),
		app.WithLogger(logger),
		app.WithRenderConfig(rc),
		app.WithPlaybackConfig(cfg.PlaybackConfig()),
	)
	if cfg.Random {
		ctrl.Randomize()
	}
	ctrl.Step(opts.generations)

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := surface.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	w, h := surface.Bounds()
	logger.Info("wrote snapshot", "path", opts.output, "generation", ctrl.Generation(), "width", w, "height", h)
	return nil
}
