// Package ui draws the control panel beside the viewer.
package ui

import (
	"image"
	"strconv"

	"lifeviz/internal/core"
)

// Source is what the panel reads and adjusts.
type Source interface {
	core.ParameterControlsProvider
	core.ParameterProvider
	core.IntParameterSetter
	StatusLines() []string
}

// Panel holds the layout and state of the control panel independent of any
// drawing backend. Coordinates are relative to the panel's top-left corner.
type Panel struct {
	src      Source
	title    string
	width    int
	controls []controlState
	status   []string
}

type controlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

// NewPanel lays out one row per control exposed by src.
func NewPanel(src Source, title string, width int) *Panel {
	p := &Panel{src: src, title: title, width: max(width, 0)}
	ctrls := src.ParameterControls()
	p.controls = make([]controlState, len(ctrls))
	for i, ctl := range ctrls {
		p.controls[i] = controlState{control: ctl, value: "--"}
	}
	p.layout()
	p.Refresh()
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Height returns the minimum height that fits every row and the status lines.
func (p *Panel) Height() int {
	return controlsTop + len(p.controls)*lineHeight + len(p.status)*statusSpacing + panelPadding
}

// Refresh pulls the current values from the source.
func (p *Panel) Refresh() {
	snap := p.src.Parameters()
	for i := range p.controls {
		st := &p.controls[i]
		param, ok := snap.Lookup(st.control.Key)
		if !ok {
			st.hasValue, st.value = false, "--"
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			st.hasValue, st.value = false, "--"
			continue
		}
		st.intValue, st.value, st.hasValue = v, strconv.Itoa(v), true
	}
	p.status = p.src.StatusLines()
}

// Click handles a press at (x, y) and reports whether a button consumed it.
func (p *Panel) Click(x, y int) bool {
	for i := range p.controls {
		st := &p.controls[i]
		if !st.hasValue {
			continue
		}
		switch {
		case pointInRect(x, y, st.minusRect):
			p.adjust(st, -1)
			return true
		case pointInRect(x, y, st.plusRect):
			p.adjust(st, 1)
			return true
		}
	}
	return false
}

func (p *Panel) adjust(st *controlState, direction int) {
	if !p.canAdjust(st, direction) {
		return
	}
	target := st.control.Clamp(st.intValue + direction*step(st.control))
	if p.src.SetIntParameter(st.control.Key, target) {
		st.intValue, st.value = target, strconv.Itoa(target)
	}
	p.status = p.src.StatusLines()
}

func (p *Panel) canAdjust(st *controlState, direction int) bool {
	if st == nil || !st.hasValue || direction == 0 {
		return false
	}
	target := st.intValue + direction*step(st.control)
	if direction < 0 && st.control.HasMin && target < st.control.Min {
		return false
	}
	if direction > 0 && st.control.HasMax && target > st.control.Max {
		return false
	}
	return true
}

func (p *Panel) layout() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

func step(ctl core.ParameterControl) int {
	if ctl.Step <= 0 {
		return 1
	}
	return ctl.Step
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// needsRealloc reports whether an offscreen image with bounds cur must be
// replaced to hold a w by h panel.
func needsRealloc(cur image.Rectangle, w, h int) bool {
	return cur.Empty() || cur.Dx() != w || cur.Dy() != h
}
