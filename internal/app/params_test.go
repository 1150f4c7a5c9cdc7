package app

import (
	"strings"
	"testing"
	"time"
)

func TestSetIntParameter(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value int
		ok    bool
		check func(*Controller) bool
	}{
		{"cell size", keyCellSize, 12, true, func(c *Controller) bool { return c.RenderConfig().CellSize == 12 }},
		{"cell size clamped", keyCellSize, 99, true, func(c *Controller) bool { return c.RenderConfig().CellSize == 20 }},
		{"generation skip", keyGenerationSkip, 5, true, func(c *Controller) bool { return c.PlaybackConfig().TicksPerAdvance == 5 }},
		{"speed", keyAnimationSpeed, 4, true, func(c *Controller) bool { return c.PlaybackConfig().FrameInterval == 250*time.Millisecond }},
		{"cols", keyCols, 6, true, func(c *Controller) bool { return c.Size().W == 6 && c.Size().H == 3 }},
		{"rows", keyRows, 7, true, func(c *Controller) bool { return c.Size().H == 7 }},
		{"unknown", "bogus", 1, false, func(*Controller) bool { return true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _, _ := newTestController(3, 3)
			if got := c.SetIntParameter(tt.key, tt.value); got != tt.ok {
				t.Fatalf("SetIntParameter(%q, %d) = %v, want %v", tt.key, tt.value, got, tt.ok)
			}
			if !tt.check(c) {
				t.Fatalf("state not updated for %q", tt.key)
			}
		})
	}
}

func TestParametersReflectState(t *testing.T) {
	c, _, _, _ := newTestController(3, 5)
	c.SetAnimationSpeed(30)
	c.Step(2)

	snap := c.Parameters()
	checks := map[string]string{
		keyAnimationSpeed: "30",
		keyGeneration:     "2",
		keyCols:           "5",
		keyRows:           "3",
		keyCellSize:       "8",
		keyPlaying:        "false",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
	for _, ctl := range c.ParameterControls() {
		if _, ok := snap.Lookup(ctl.Key); !ok {
			t.Fatalf("control %q has no parameter value", ctl.Key)
		}
	}
}

func TestStatusLines(t *testing.T) {
	c, _, _, _ := newTestController(2, 2)
	c.SetTicksPerAdvance(2)
	lines := c.StatusLines()
	if !strings.HasPrefix(lines[0], "paused") {
		t.Fatalf("status %q should start with paused", lines[0])
	}
	if !strings.Contains(lines[1], "2nd") {
		t.Fatalf("status %q should name the 2nd generation", lines[1])
	}
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 102: "102nd"} {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}
