//go:build ebiten

package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeviz/internal/app"
	"lifeviz/internal/core"
	"lifeviz/internal/render"
	"lifeviz/internal/scene"
)

func runWindow(ctx context.Context, cfg *app.Config) error {
	logger := loggerFromContext(ctx)

	u, err := newUniverse(cfg)
	if err != nil {
		return err
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	queue := core.NewFrameQueue()
	var (
		view      app.Renderer
		sceneView *app.SceneView
	)
	if app.Mode(cfg.Mode) == app.Mode3D {
		rng := rand.New(rand.NewPCG(uint64(cfg.Seed), 1))
		sceneView = app.NewSceneView(scene.NewEngine(rng), cfg.Transition())
		view = sceneView
	} else {
		view = app.NewGridView(render.NewEbitenSurface())
	}

	ctrl := app.NewController(u, view, queue,
		app.WithLogger(logger),
		app.WithRenderConfig(rc),
		app.WithPlaybackConfig(cfg.PlaybackConfig()),
	)
	if sceneView != nil {
		sceneView.SetActivateHandler(ctrl.ActivateProxy)
	}
	if cfg.Random {
		ctrl.Randomize()
	}

	game := app.NewGame(ctx, ctrl, queue, view, "Life")
	ebiten.SetWindowTitle(fmt.Sprintf("lifeviz %s (%s)", cfg.Engine, cfg.Mode))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())
	if sceneView != nil {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting", "engine", cfg.Engine, "mode", cfg.Mode, "cols", cfg.Cols, "rows", cfg.Rows)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
