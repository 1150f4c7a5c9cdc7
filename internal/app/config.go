package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"

	"lifeviz/internal/core"
)

// Mode selects the presentation.
type Mode string

const (
	Mode2D Mode = "2d"
	Mode3D Mode = "3d"
)

// ErrUnknownMode is returned for a mode other than 2d or 3d.
var ErrUnknownMode = errors.New("unknown mode")

// Config represents the command-line and file parameters for the application.
type Config struct {
	Mode           string `toml:"mode"`
	Engine         string `toml:"engine"`
	Rows           int    `toml:"rows"`
	Cols           int    `toml:"cols"`
	CellSize       int    `toml:"cell_size"`
	GenerationSkip int    `toml:"generation_skip"`
	AnimationSpeed int    `toml:"animation_speed"`
	TransitionMs   int    `toml:"transition_ms"`
	AliveColor     string `toml:"alive_color"`
	DeadColor      string `toml:"dead_color"`
	GridColor      string `toml:"grid_color"`
	Random         bool   `toml:"random"`
	Seed           int64  `toml:"seed"`
	TPS            int    `toml:"tps"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:           string(Mode2D),
		Engine:         "life",
		Rows:           64,
		Cols:           64,
		CellSize:       8,
		GenerationSkip: 1,
		AnimationSpeed: 1,
		TransitionMs:   1000,
		AliveColor:     "#000000",
		DeadColor:      "#ffffff",
		GridColor:      "#eeeeee",
		Random:         true,
		Seed:           42,
		TPS:            60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Mode, "mode", "m", c.Mode, "presentation: 2d or 3d")
	fs.StringVar(&c.Engine, "engine", c.Engine, "automaton engine")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.GenerationSkip, "skip", c.GenerationSkip, "generations per advance")
	fs.IntVar(&c.AnimationSpeed, "speed", c.AnimationSpeed, "advances per second")
	fs.IntVar(&c.TransitionMs, "transition", c.TransitionMs, "3D layout transition in milliseconds")
	fs.StringVar(&c.AliveColor, "alive-color", c.AliveColor, "hex color of live cells")
	fs.StringVar(&c.DeadColor, "dead-color", c.DeadColor, "hex color of dead cells")
	fs.StringVar(&c.GridColor, "grid-color", c.GridColor, "hex color of gridlines and tile borders")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
}

// LoadFile decodes a TOML file over c. Flags already set on fs keep their
// command-line values.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	for name, v := range changed {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("reapply flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks ranges and colors.
func (c *Config) Validate() error {
	switch Mode(c.Mode) {
	case Mode2D, Mode3D:
	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, c.Mode)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Cols, c.Rows)
	}
	checks := []struct {
		key string
		v   int
	}{
		{keyCellSize, c.CellSize},
		{keyGenerationSkip, c.GenerationSkip},
		{keyAnimationSpeed, c.AnimationSpeed},
	}
	for _, chk := range checks {
		ctl := controlFor(chk.key)
		if ctl.Clamp(chk.v) != chk.v {
			return fmt.Errorf("%s %d outside [%d, %d]", ctl.Label, chk.v, ctl.Min, ctl.Max)
		}
	}
	if c.TransitionMs < 0 {
		return fmt.Errorf("transition %dms is negative", c.TransitionMs)
	}
	_, err := c.RenderConfig()
	return err
}

// RenderConfig parses the visual settings.
func (c *Config) RenderConfig() (core.RenderConfig, error) {
	cfg := core.RenderConfig{CellSize: c.CellSize}
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"alive color", c.AliveColor, &cfg.AliveColor},
		{"dead color", c.DeadColor, &cfg.DeadColor},
		{"grid color", c.GridColor, &cfg.GridColor},
	} {
		clr, err := ParseColor(f.hex)
		if err != nil {
			return core.RenderConfig{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = clr
	}
	return cfg, nil
}

// PlaybackConfig returns the generation skip and advance interval.
func (c *Config) PlaybackConfig() core.PlaybackConfig {
	return core.PlaybackConfig{
		TicksPerAdvance: max(c.GenerationSkip, 1),
		FrameInterval:   core.FrameIntervalForSpeed(c.AnimationSpeed),
	}
}

// Transition returns the 3D layout transition duration.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMs) * time.Millisecond
}

// ParseColor reads #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
