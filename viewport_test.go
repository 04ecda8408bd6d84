package fancyscroll_test

import (
	"testing"

	fancyscroll "github.com/ApxfIy/FancyScrollView"
)

// fakeScroller is a test double for the external physics component. It has
// no physics of its own: SetPosition writes land immediately and ScrollTo
// jumps straight to the target, since animation time-stepping is not the
// engine's concern.
type fakeScroller struct {
	pos          float32
	viewportSize float32
	direction    fancyscroll.ScrollDirection
	sensitivity  float32
	draggable    bool
	totalCount   int
	callback     func(float32)
	bar          *fakeScrollbar // nil = component without a scrollbar

	scrollToTarget   float32
	scrollToDuration float32
	scrollToCalls    int
}

func (s *fakeScroller) Position() float32 { return s.pos }

func (s *fakeScroller) SetPosition(p float32) {
	s.pos = p
	if s.callback != nil {
		s.callback(p)
	}
}

func (s *fakeScroller) ViewportSize() float32 { return s.viewportSize }

func (s *fakeScroller) Direction() fancyscroll.ScrollDirection { return s.direction }

func (s *fakeScroller) SetScrollSensitivity(v float32) { s.sensitivity = v }

func (s *fakeScroller) SetDraggable(d bool) { s.draggable = d }

func (s *fakeScroller) SetTotalCount(n int) { s.totalCount = n }

func (s *fakeScroller) OnPositionChanged(fn func(float32)) { s.callback = fn }

func (s *fakeScroller) ScrollTo(target, duration float32, easing fancyscroll.EasingFunc, onComplete func()) {
	s.scrollToCalls++
	s.scrollToTarget = target
	s.scrollToDuration = duration
	s.SetPosition(target)
	if onComplete != nil {
		onComplete()
	}
}

func (s *fakeScroller) Scrollbar() fancyscroll.ScrollbarHandle {
	if s.bar == nil {
		return nil
	}
	return s.bar
}

type fakeScrollbar struct {
	size    float32
	visible bool
}

func (b *fakeScrollbar) SetSize(size float32)    { b.size = size }
func (b *fakeScrollbar) SetVisible(visible bool) { b.visible = visible }

// fakeCellSink records every push from the viewport, including call order,
// so tests can assert that constants arrive before position updates.
type fakeCellSink struct {
	interval     float32
	offset       float32
	lastPosition float32
	refreshCount int
	calls        []string
}

func (c *fakeCellSink) SetCellInterval(interval float32) {
	c.interval = interval
	c.calls = append(c.calls, "interval")
}

func (c *fakeCellSink) SetScrollOffset(offset float32) {
	c.offset = offset
	c.calls = append(c.calls, "offset")
}

func (c *fakeCellSink) UpdatePosition(pos float32) {
	c.lastPosition = pos
	c.calls = append(c.calls, "position")
}

func (c *fakeCellSink) RefreshContents(itemCount int) {
	c.refreshCount = itemCount
	c.calls = append(c.calls, "refresh")
}

// setupViewport wires a viewport over the reference configuration: 100px
// cells, 10px spacing, 300px viewport, 10 items.
func setupViewport(t *testing.T) (*fancyscroll.Viewport, *fakeScroller, *fakeCellSink) {
	t.Helper()
	scroller := &fakeScroller{viewportSize: 300, bar: &fakeScrollbar{}}
	sink := &fakeCellSink{}
	vp := fancyscroll.NewViewport(scroller, sink,
		fancyscroll.WithCellSize(100),
		fancyscroll.WithSpacing(10),
	)
	vp.Reload(10)
	return vp, scroller, sink
}

func TestReloadPropagatesConstants(t *testing.T) {
	vp, scroller, sink := setupViewport(t)
	ctx := vp.Context()

	approx(t, "sink interval", sink.interval, 110.0/410.0, 1e-5)
	approx(t, "sink offset", sink.offset, ctx.ScrollOffset, 1e-6)
	if sink.refreshCount != 10 {
		t.Errorf("sink refresh count = %d, want 10", sink.refreshCount)
	}
	if scroller.totalCount != 10 {
		t.Errorf("scroller total count = %d, want 10", scroller.totalCount)
	}
	if !scroller.draggable {
		t.Error("scrollable content should enable dragging")
	}
	if !scroller.bar.visible {
		t.Error("scrollable content should show the scrollbar")
	}

	// Resting thumb: viewportLength over effective content length.
	wantThumb := ctx.ViewportLength / (10 + (0+0-10.0)/110.0)
	approx(t, "thumb size", scroller.bar.size, wantThumb, 1e-4)
}

func TestConstantsArriveBeforePositionUpdates(t *testing.T) {
	_, scroller, sink := setupViewport(t)

	sink.calls = nil
	scroller.SetPosition(3)

	// Within a single reload no position update may precede the constants;
	// after the reload, position updates use the already-pushed values.
	if len(sink.calls) != 1 || sink.calls[0] != "position" {
		t.Fatalf("calls after SetPosition = %v, want [position]", sink.calls)
	}
}

func TestReloadCallOrder(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300, bar: &fakeScrollbar{}}
	sink := &fakeCellSink{}
	vp := fancyscroll.NewViewport(scroller, sink, fancyscroll.WithCellSize(100))

	sink.calls = nil
	vp.Reload(10)

	// Constants land in the sink before the cells are repositioned.
	want := []string{"interval", "offset", "refresh", "position"}
	if len(sink.calls) != len(want) {
		t.Fatalf("reload calls = %v, want %v", sink.calls, want)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Fatalf("reload calls = %v, want %v", sink.calls, want)
		}
	}
}

func TestPositionChangeForwardsVirtualizationSpace(t *testing.T) {
	vp, scroller, sink := setupViewport(t)
	ctx := vp.Context()

	scroller.SetPosition(4.5)
	approx(t, "forwarded position", sink.lastPosition, ctx.ToVirtualizationSpace(4.5), 1e-5)
}

func TestEmptyListForcesZeroPosition(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300, bar: &fakeScrollbar{}}
	sink := &fakeCellSink{}
	vp := fancyscroll.NewViewport(scroller, sink,
		fancyscroll.WithCellSize(100),
		fancyscroll.WithSpacing(10),
	)
	vp.Reload(0)
	ctx := vp.Context()

	if scroller.draggable {
		t.Error("empty list must not be draggable")
	}
	if scroller.bar.visible {
		t.Error("empty list must hide the scrollbar")
	}
	if scroller.bar.size != 1 {
		t.Errorf("empty list thumb size = %v, want 1", scroller.bar.size)
	}

	// Residual physics motion is neutralized: whatever position the
	// scroller reports, cells are positioned as if at rest.
	scroller.SetPosition(3)
	approx(t, "forwarded position", sink.lastPosition, ctx.ToVirtualizationSpace(0), 1e-6)

	// The bogus report must not shrink or reveal the scrollbar either.
	if scroller.bar.size != 1 || scroller.bar.visible {
		t.Errorf("empty list scrollbar after motion: size=%v visible=%v", scroller.bar.size, scroller.bar.visible)
	}
}

func TestOverscrollShrinksThumb(t *testing.T) {
	_, scroller, _ := setupViewport(t)
	resting := scroller.bar.size

	// Past the tail by half an item.
	scroller.SetPosition(9.5)
	shrunk := scroller.bar.size
	if shrunk >= resting {
		t.Errorf("overscroll thumb = %v, want < resting %v", shrunk, resting)
	}
	if shrunk <= 0 {
		t.Errorf("overscroll thumb = %v, want > 0", shrunk)
	}

	// Back in range: resting size is restored.
	scroller.SetPosition(4)
	approx(t, "restored thumb", scroller.bar.size, resting, 1e-5)

	// Past the head shrinks symmetrically.
	scroller.SetPosition(-0.5)
	approx(t, "head overscroll thumb", scroller.bar.size, shrunk, 1e-4)
}

func TestOverscrollThumbContinuity(t *testing.T) {
	_, scroller, _ := setupViewport(t)
	resting := scroller.bar.size

	// As overscroll approaches zero the shrunken size converges to the
	// resting size: no visual pop at the boundary.
	scroller.SetPosition(9 + 1e-4)
	approx(t, "thumb near boundary", scroller.bar.size, resting, 1e-3)
}

func TestJumpTo(t *testing.T) {
	vp, scroller, sink := setupViewport(t)
	ctx := vp.Context()

	vp.JumpTo(0, fancyscroll.AlignHead)
	if scroller.pos != 0 {
		t.Errorf("JumpTo(0, head) position = %v, want 0", scroller.pos)
	}

	vp.JumpTo(9, fancyscroll.AlignTail)
	approx(t, "JumpTo(9, tail)", scroller.pos, ctx.AlignedScrollPosition(9, fancyscroll.AlignTail), 1e-6)

	// The direct write reached the cells through the notification path.
	approx(t, "cells after jump", sink.lastPosition, ctx.ToVirtualizationSpace(scroller.pos), 1e-5)
}

func TestScrollToDelegatesAnimation(t *testing.T) {
	vp, scroller, _ := setupViewport(t)
	ctx := vp.Context()

	completed := false
	vp.ScrollTo(5, fancyscroll.AlignCenter, 0.35, fancyscroll.EaseOutCubic, func() { completed = true })

	if scroller.scrollToCalls != 1 {
		t.Fatalf("scrollTo calls = %d, want 1", scroller.scrollToCalls)
	}
	approx(t, "scrollTo target", scroller.scrollToTarget, ctx.AlignedScrollPosition(5, fancyscroll.AlignCenter), 1e-6)
	approx(t, "scrollTo duration", scroller.scrollToDuration, 0.35, 1e-6)
	if !completed {
		t.Error("completion callback not invoked")
	}
}

func TestNilScrollbar(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300} // no scrollbar
	sink := &fakeCellSink{}
	vp := fancyscroll.NewViewport(scroller, sink,
		fancyscroll.WithCellSize(100),
		fancyscroll.WithSpacing(10),
	)

	// None of the scrollbar paths may panic when the handle is absent.
	vp.Reload(10)
	scroller.SetPosition(9.5)
	scroller.SetPosition(-1)
	vp.Reload(0)
}

func TestSetViewportSizeRecomputes(t *testing.T) {
	vp, _, sink := setupViewport(t)
	before := sink.interval

	vp.SetViewportSize(600)
	if sink.interval >= before {
		t.Errorf("larger viewport should shrink the cell interval: %v -> %v", before, sink.interval)
	}
	approx(t, "interval", sink.interval, 110.0/(600+110.0), 1e-5)
}

func TestSetLayoutRecomputes(t *testing.T) {
	vp, scroller, sink := setupViewport(t)

	layout := fancyscroll.DefaultLayout()
	layout.CellSize = 50
	layout.Spacing = 0
	vp.SetLayout(layout)

	approx(t, "interval", sink.interval, 50.0/350.0, 1e-5)
	if !scroller.draggable {
		t.Error("smaller cells keep the list scrollable")
	}
}

func TestScrollSensitivityForwarded(t *testing.T) {
	scroller := &fakeScroller{viewportSize: 300}
	fancyscroll.NewViewport(scroller, &fakeCellSink{},
		fancyscroll.WithScrollSensitivity(2.5),
	)
	approx(t, "sensitivity", scroller.sensitivity, 2.5, 1e-6)
}
