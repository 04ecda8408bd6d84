package fancyscroll_test

import (
	"testing"

	fancyscroll "github.com/ApxfIy/FancyScrollView"
)

func TestDefaultLayout(t *testing.T) {
	l := fancyscroll.DefaultLayout()
	if l.CellSize <= 0 {
		t.Errorf("default cell size = %v, want > 0", l.CellSize)
	}
	if l.Direction != fancyscroll.Vertical {
		t.Errorf("default direction = %v, want vertical", l.Direction)
	}
}

func TestNegativeReuseMarginClamped(t *testing.T) {
	state := fancyscroll.ViewportState{ViewportSize: 300, ItemCount: 10}

	clamped := fancyscroll.NewContext(fancyscroll.Layout{CellSize: 100, ReuseMargin: -2}, state)
	zero := fancyscroll.NewContext(fancyscroll.Layout{CellSize: 100, ReuseMargin: 0}, state)

	// A negative margin would produce negative virtualization lengths; it
	// is clamped to zero instead.
	approx(t, "CellInterval", clamped.CellInterval, zero.CellInterval, 1e-6)
	approx(t, "ViewportLength", clamped.ViewportLength, zero.ViewportLength, 1e-6)
	if clamped.ViewportLength < 0 {
		t.Errorf("ViewportLength = %v, want >= 0", clamped.ViewportLength)
	}
}

func TestNonPositiveCellSizeClamped(t *testing.T) {
	state := fancyscroll.ViewportState{ViewportSize: 300, ItemCount: 10}

	for _, cellSize := range []float32{0, -50} {
		ctx := fancyscroll.NewContext(fancyscroll.Layout{CellSize: cellSize}, state)
		if ctx.Layout.CellSize <= 0 {
			t.Errorf("cellSize %v not clamped: %v", cellSize, ctx.Layout.CellSize)
		}
		if !isFinite(ctx.CellInterval) || ctx.CellInterval <= 0 {
			t.Errorf("cellSize %v: CellInterval = %v", cellSize, ctx.CellInterval)
		}
		if !isFinite(ctx.MaxScrollPosition) {
			t.Errorf("cellSize %v: MaxScrollPosition = %v", cellSize, ctx.MaxScrollPosition)
		}
	}
}

func TestNegativePaddingAndSpacingClamped(t *testing.T) {
	ctx := fancyscroll.NewContext(
		fancyscroll.Layout{CellSize: 100, Spacing: -5, PaddingHead: -10, PaddingTail: -20},
		fancyscroll.ViewportState{ViewportSize: 300, ItemCount: 10},
	)
	l := ctx.Layout
	if l.Spacing != 0 || l.PaddingHead != 0 || l.PaddingTail != 0 {
		t.Errorf("negative fields not clamped: spacing=%v head=%v tail=%v", l.Spacing, l.PaddingHead, l.PaddingTail)
	}
}

func TestOptionDefaults(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300}
	vp := fancyscroll.NewViewport(scroller, &fakeCellSink{})
	l := vp.Context().Layout

	if l.CellSize != fancyscroll.OptCellSize.Default() {
		t.Errorf("cell size = %v, want default %v", l.CellSize, fancyscroll.OptCellSize.Default())
	}
	if l.Spacing != 0 || l.PaddingHead != 0 || l.PaddingTail != 0 || l.ReuseMargin != 0 {
		t.Errorf("unexpected non-zero defaults: %+v", l)
	}
	approx(t, "default sensitivity", scroller.sensitivity, 1, 1e-6)
}

func TestOptionsApply(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300, direction: fancyscroll.Horizontal}
	vp := fancyscroll.NewViewport(scroller, &fakeCellSink{},
		fancyscroll.WithCellSize(80),
		fancyscroll.WithSpacing(4),
		fancyscroll.WithPadding(12, 8),
		fancyscroll.WithReuseMargin(0.5),
		fancyscroll.WithDirection(fancyscroll.Horizontal),
	)
	l := vp.Context().Layout

	if l.CellSize != 80 || l.Spacing != 4 || l.PaddingHead != 12 || l.PaddingTail != 8 {
		t.Errorf("options not applied: %+v", l)
	}
	if l.ReuseMargin != 0.5 {
		t.Errorf("reuse margin = %v, want 0.5", l.ReuseMargin)
	}
	if l.Direction != fancyscroll.Horizontal {
		t.Errorf("direction = %v, want horizontal", l.Direction)
	}
}

func TestCustomOptKey(t *testing.T) {
	key := fancyscroll.NewOptKey[string]("hostTag", "none")

	if key.Name() != "hostTag" {
		t.Errorf("key name = %q", key.Name())
	}
	if key.Default() != "none" {
		t.Errorf("key default = %q", key.Default())
	}
}
