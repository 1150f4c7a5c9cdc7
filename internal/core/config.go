package core

import (
	"image/color"
	"math"
	"time"
)

// RenderConfig holds the visual settings shared by both renderers.
type RenderConfig struct {
	CellSize   int
	AliveColor color.Color
	DeadColor  color.Color
	GridColor  color.Color
}

// DefaultRenderConfig returns black cells on white with light gridlines.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		CellSize:   8,
		AliveColor: color.RGBA{A: 255},
		DeadColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		GridColor:  color.RGBA{R: 238, G: 238, B: 238, A: 255},
	}
}

// PlaybackConfig controls how fast and how far the simulation advances.
type PlaybackConfig struct {
	// TicksPerAdvance is the generation skip applied on every advance.
	TicksPerAdvance int
	// FrameInterval is the minimum wall-clock time between advances.
	FrameInterval time.Duration
}

// DefaultPlaybackConfig advances one generation per second.
func DefaultPlaybackConfig() PlaybackConfig {
	return PlaybackConfig{TicksPerAdvance: 1, FrameInterval: time.Second}
}

// FrameIntervalForSpeed converts an advances-per-second rate to an interval.
func FrameIntervalForSpeed(perSecond int) time.Duration {
	if perSecond <= 0 {
		perSecond = 1
	}
	return time.Second / time.Duration(perSecond)
}

// Speed returns the advance rate in advances per second, rounded.
func (p PlaybackConfig) Speed() int {
	if p.FrameInterval <= 0 {
		return 0
	}
	return int(math.Round(float64(time.Second) / float64(p.FrameInterval)))
}
