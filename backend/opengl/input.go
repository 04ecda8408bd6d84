package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	fancyscroll "github.com/ApxfIy/FancyScrollView"
)

// ScrollInput adapts GLFW mouse input into per-frame scroll gestures along
// one axis: accumulated wheel ticks and drag deltas in pixels.
type ScrollInput struct {
	window *glfw.Window
	axis   fancyscroll.ScrollDirection

	wheel      float64 // accumulated wheel ticks since last Poll
	dragDelta  float64 // accumulated drag pixels since last Poll
	dragging   bool
	lastCursor float64
}

// NewScrollInput registers mouse callbacks on the window and returns the
// adapter. Only one ScrollInput should own a window's mouse callbacks.
func NewScrollInput(window *glfw.Window, axis fancyscroll.ScrollDirection) *ScrollInput {
	in := &ScrollInput{window: window, axis: axis}

	window.SetScrollCallback(in.scrollCallback)
	window.SetMouseButtonCallback(in.mouseButtonCallback)
	window.SetCursorPosCallback(in.cursorPosCallback)

	return in
}

// Poll consumes the gestures accumulated since the previous call.
// wheel is in scroll ticks, drag in pixels along the configured axis
// (positive = content dragged toward the tail).
func (in *ScrollInput) Poll() (wheel, drag float32) {
	wheel = float32(in.wheel)
	drag = float32(in.dragDelta)
	in.wheel = 0
	in.dragDelta = 0
	return wheel, drag
}

// Dragging reports whether a drag gesture is in progress.
func (in *ScrollInput) Dragging() bool {
	return in.dragging
}

func (in *ScrollInput) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if in.axis == fancyscroll.Horizontal {
		// Horizontal lists accept both wheel axes; most mice only have one.
		in.wheel += yoff + xoff
		return
	}
	in.wheel += yoff
}

func (in *ScrollInput) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		in.dragging = true
		in.lastCursor = in.cursor()
	case glfw.Release:
		in.dragging = false
	}
}

func (in *ScrollInput) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !in.dragging {
		return
	}
	cur := xpos
	if in.axis == fancyscroll.Vertical {
		cur = ypos
	}
	in.dragDelta += cur - in.lastCursor
	in.lastCursor = cur
}

func (in *ScrollInput) cursor() float64 {
	x, y := in.window.GetCursorPos()
	if in.axis == fancyscroll.Vertical {
		return y
	}
	return x
}
