package app

import (
	"fmt"
	"strconv"

	"lifeviz/internal/core"
)

const (
	keyCellSize       = "cell_size"
	keyGenerationSkip = "generation_skip"
	keyAnimationSpeed = "animation_speed"
	keyCols           = "cols"
	keyRows           = "rows"
	keyGeneration     = "generation"
	keyPlaying        = "playing"
)

var controls = []core.ParameterControl{
	{Key: keyCellSize, Label: "Cell size", Step: 1, Min: 4, Max: 20, HasMin: true, HasMax: true},
	{Key: keyGenerationSkip, Label: "Generation skip", Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
	{Key: keyAnimationSpeed, Label: "Speed", Step: 1, Min: 1, Max: 30, HasMin: true, HasMax: true},
	{Key: keyCols, Label: "Columns", Step: 1, Min: 1, HasMin: true},
	{Key: keyRows, Label: "Rows", Step: 1, Min: 1, HasMin: true},
}

func controlFor(key string) core.ParameterControl {
	for _, ctl := range controls {
		if ctl.Key == key {
			return ctl
		}
	}
	return core.ParameterControl{Key: key, Label: key}
}

// ParameterControls lists the HUD-adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// Parameters reports the current values for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.Size()
	itoa := strconv.Itoa
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Playback", Params: []core.Parameter{
			{Key: keyPlaying, Label: "Playing", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.IsPlaying())},
			{Key: keyGeneration, Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(c.generation, 10)},
			{Key: keyGenerationSkip, Label: "Generation skip", Type: core.ParamTypeInt, Value: itoa(c.playback.TicksPerAdvance)},
			{Key: keyAnimationSpeed, Label: "Speed", Type: core.ParamTypeInt, Value: itoa(c.playback.Speed())},
		}},
		{Name: "Grid", Params: []core.Parameter{
			{Key: keyCellSize, Label: "Cell size", Type: core.ParamTypeInt, Value: itoa(c.render.CellSize)},
			{Key: keyCols, Label: "Columns", Type: core.ParamTypeInt, Value: itoa(size.W)},
			{Key: keyRows, Label: "Rows", Type: core.ParamTypeInt, Value: itoa(size.H)},
		}},
	}}
}

// SetIntParameter applies a HUD change. It reports false for unknown keys
// and rejected values.
func (c *Controller) SetIntParameter(key string, value int) bool {
	ctl := controlFor(key)
	value = ctl.Clamp(value)
	switch key {
	case keyCellSize:
		c.SetRenderConfig(RenderUpdate{CellSize: value})
	case keyGenerationSkip:
		c.SetTicksPerAdvance(value)
	case keyAnimationSpeed:
		c.SetAnimationSpeed(value)
	case keyCols:
		if err := c.Resize(value, c.Size().H); err != nil {
			c.log.Debug("resize rejected", "err", err)
			return false
		}
	case keyRows:
		if err := c.Resize(c.Size().W, value); err != nil {
			c.log.Debug("resize rejected", "err", err)
			return false
		}
	default:
		return false
	}
	return true
}

// StatusLines summarizes the state for the HUD footer.
func (c *Controller) StatusLines() []string {
	state := "paused"
	if c.IsPlaying() {
		state = "playing"
	}
	size := c.Size()
	return []string{
		fmt.Sprintf("%s  gen %d  %dx%d", state, c.generation, size.W, size.H),
		fmt.Sprintf("N: next %s generation", ordinal(c.playback.TicksPerAdvance)),
	}
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
