//go:build !ebiten

package cli

import (
	"context"
	"errors"

	"lifeviz/internal/app"
)

// errNoWindow is returned when the viewer is started from a headless build.
var errNoWindow = errors.New("the viewer window requires building with -tags ebiten; use `lifeviz snapshot` for headless output")

func runWindow(context.Context, *app.Config) error {
	return errNoWindow
}
