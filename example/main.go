// Example demonstrates the virtualized scrolling engine in a GLFW window:
// 500 items represented by a handful of colored cells, driven by a minimal
// wheel/drag scroller with inertia and elastic overscroll.
//
// Controls:
//
//	mouse wheel / drag  scroll
//	Home / End          jump to the first / last item
//	Space               animate to a random item, centered
//
// Prerequisites: a desktop with OpenGL 4.1 and the GLFW build dependencies
// (X11 headers on Linux). Then:
//
//	go run ./example/
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	fancyscroll "github.com/ApxfIy/FancyScrollView"
	"github.com/ApxfIy/FancyScrollView/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 720
	windowTitle  = "fancyscroll example"

	itemCount          = 500
	cellSize           = 80
	cellSpacing        = 8
	scrollbarThickness = 10
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewScrollInput(window, fancyscroll.Vertical)

	scroller := newDemoScroller(windowHeight, cellSize+cellSpacing, fancyscroll.Vertical)
	cells := &cellPool{}

	vp := fancyscroll.NewViewport(scroller, cells,
		fancyscroll.WithCellSize(cellSize),
		fancyscroll.WithSpacing(cellSpacing),
		fancyscroll.WithPadding(12, 12),
		fancyscroll.WithReuseMargin(0.5),
	)
	vp.Reload(itemCount)

	width, height := windowWidth, windowHeight

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		width, height = fbWidth, fbHeight
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		renderer.Resize(fbWidth, fbHeight)
		scroller.viewportSize = float32(fbHeight)
		vp.SetViewportSize(float32(fbHeight))
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyHome:
			vp.JumpTo(0, fancyscroll.AlignHead)
		case glfw.KeyEnd:
			vp.JumpTo(itemCount-1, fancyscroll.AlignTail)
		case glfw.KeySpace:
			vp.ScrollTo(rand.Intn(itemCount), fancyscroll.AlignCenter, 0.6, fancyscroll.EaseOutCubic, nil)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		wheel, drag := input.Poll()
		scroller.Update(dt, wheel, drag, input.Dragging())

		gl.ClearColor(0.12, 0.12, 0.14, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		rects := cells.Rects(vp.Context().Layout, float32(width), float32(height))
		rects = append(rects, scrollbarRects(scroller, float32(width), float32(height))...)

		if err := renderer.Render(rects); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// scrollbarRects draws the track and the thumb on the trailing edge. The
// thumb length comes straight from the engine's scrollbar sizing, so the
// elastic shrink during overscroll is visible.
func scrollbarRects(s *demoScroller, width, height float32) []opengl.Rect {
	if !s.bar.visible {
		return nil
	}

	trackX := width - scrollbarThickness - 2
	trackLen := height - 4

	thumbLen := s.bar.size * trackLen
	span := s.maxPos()
	progress := float32(0)
	if span > 0 {
		progress = clampf(s.pos/span, 0, 1)
	}
	thumbY := 2 + progress*(trackLen-thumbLen)

	return []opengl.Rect{
		{X: trackX, Y: 2, W: scrollbarThickness, H: trackLen, Color: opengl.RGBA(0x20, 0x20, 0x24, 0xff)},
		{X: trackX, Y: thumbY, W: scrollbarThickness, H: thumbLen, Color: opengl.RGBA(0x60, 0x60, 0x6a, 0xff)},
	}
}
