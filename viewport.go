package fancyscroll

// Scroller is the capability interface of the external drag/inertia scroll
// component. The engine never owns the scroll position: the Scroller reports
// it through the OnPositionChanged callback (in scroll space, roughly
// [0, itemCount-1], extending past those bounds during elastic overscroll)
// and accepts targets in the same unit. Its internal physics - deceleration
// curves, elasticity, snap - are deliberately opaque here, so alternative
// backends can be substituted without touching the mapping engine.
type Scroller interface {
	// Position returns the current scroll-space position.
	Position() float32

	// SetPosition writes the scroll-space position directly, with no
	// animation. Implementations notify OnPositionChanged for programmatic
	// writes just like for drag or inertia movement.
	SetPosition(pos float32)

	// ViewportSize returns the viewport extent along the scroll axis.
	ViewportSize() float32

	// Direction returns the scroll axis the component captures input on.
	Direction() ScrollDirection

	// SetScrollSensitivity scales how far input gestures move the position.
	SetScrollSensitivity(v float32)

	// SetDraggable enables or disables drag input.
	SetDraggable(draggable bool)

	// SetTotalCount tells the component how many items the position range
	// covers.
	SetTotalCount(n int)

	// OnPositionChanged registers the callback invoked on every position
	// change: drag, inertia, animation, or programmatic set.
	OnPositionChanged(fn func(pos float32))

	// ScrollTo animates the position to target over duration seconds.
	// easing may be nil (implementation default); onComplete may be nil.
	// A new ScrollTo supersedes any animation in flight.
	ScrollTo(target, duration float32, easing EasingFunc, onComplete func())

	// Scrollbar returns the scrollbar handle, or nil if the component has
	// no scrollbar.
	Scrollbar() ScrollbarHandle
}

// ScrollbarHandle is the scrollbar surface of a Scroller.
type ScrollbarHandle interface {
	// SetSize sets the thumb size as a fraction of the track, in [0,1].
	SetSize(size float32)

	// SetVisible shows or hides the scrollbar.
	SetVisible(visible bool)
}

// CellSink is the boundary to the cell-recycling layer: the component that
// instantiates, rebinds and repositions the bounded pool of visual cells.
// The engine pushes layout constants and virtualization-space positions into
// it and never inspects individual cells.
type CellSink interface {
	// SetCellInterval sets the fraction of normalized scroll space one item
	// occupies.
	SetCellInterval(interval float32)

	// SetScrollOffset sets the virtualization-space offset compensating for
	// the reuse margin.
	SetScrollOffset(offset float32)

	// UpdatePosition repositions/rebinds cells for a virtualization-space
	// position.
	UpdatePosition(pos float32)

	// RefreshContents rebinds cell data after the item count changed.
	RefreshContents(itemCount int)
}

// Viewport is the stateful glue between the Scroller, the CellSink and the
// position algebra. It reacts to two kinds of events: configuration/data
// changes (recompute constants, propagate them) and scroll-position changes
// (convert, forward, handle overscroll).
//
// Usage:
//
//	vp := fancyscroll.NewViewport(scroller, cells,
//	    fancyscroll.WithCellSize(100),
//	    fancyscroll.WithSpacing(10),
//	    fancyscroll.WithReuseMargin(0.5),
//	)
//	vp.Reload(len(items))
//	vp.ScrollTo(42, fancyscroll.AlignCenter, 0.35, fancyscroll.EaseOutCubic, nil)
//
// Single-threaded: all methods must be called from the host's update/event
// thread, matching the Scroller's callback delivery.
type Viewport struct {
	ctx      Context
	scroller Scroller
	sink     CellSink

	// overscrolled tracks whether the last notification was outside the
	// valid range, so the thumb is restored once the position comes back.
	overscrolled bool
}

// NewViewport wires a Viewport between a Scroller and a CellSink. The item
// count starts at zero; call Reload once the data source is known.
func NewViewport(scroller Scroller, sink CellSink, opts ...Option) *Viewport {
	o := applyOptions(opts)

	layout := Layout{
		CellSize:    GetOpt(o, OptCellSize),
		Spacing:     GetOpt(o, OptSpacing),
		PaddingHead: GetOpt(o, OptPaddingHead),
		PaddingTail: GetOpt(o, OptPaddingTail),
		ReuseMargin: GetOpt(o, OptReuseMargin),
		Direction:   GetOpt(o, OptDirection),
	}.sanitize()

	if scroller.Direction() != layout.Direction {
		scrollLogger.Warn("viewport: scroller and layout disagree on scroll axis",
			"scroller", scroller.Direction(), "layout", layout.Direction)
	}

	v := &Viewport{
		ctx: Context{
			Layout: layout,
			State:  ViewportState{ViewportSize: scroller.ViewportSize()},
		},
		scroller: scroller,
		sink:     sink,
	}

	scroller.SetScrollSensitivity(GetOpt(o, OptScrollSensitivity))
	scroller.OnPositionChanged(v.onPositionChanged)
	v.refresh()
	return v
}

// Context returns a copy of the current configuration/constants snapshot.
// Useful for hosts that need the raw conversions (e.g. hit testing).
func (v *Viewport) Context() Context {
	return v.ctx
}

// Reload updates the item count and recomputes everything derived from it.
// Call whenever the data source changes.
func (v *Viewport) Reload(itemCount int) {
	if itemCount < 0 {
		scrollLogger.Warn("viewport: negative item count, clamping to 0", "itemCount", itemCount)
		itemCount = 0
	}
	v.ctx.State.ItemCount = itemCount
	v.refresh()
}

// SetLayout replaces the layout configuration and recomputes.
func (v *Viewport) SetLayout(l Layout) {
	v.ctx.Layout = l.sanitize()
	v.refresh()
}

// SetViewportSize updates the viewport extent and recomputes. Call from the
// host's resize handler.
func (v *Viewport) SetViewportSize(size float32) {
	if size < minCellSize {
		scrollLogger.Warn("viewport: non-positive viewport size, clamping", "size", size)
		size = minCellSize
	}
	v.ctx.State.ViewportSize = size
	v.refresh()
}

// JumpTo moves directly to the given item with no animation.
func (v *Viewport) JumpTo(index int, alignment float32) {
	v.scroller.SetPosition(v.ctx.AlignedScrollPosition(index, alignment))
}

// ScrollTo animates to the given item over duration seconds. easing and
// onComplete may be nil. Animation time-stepping is the Scroller's job; a
// new ScrollTo supersedes a prior one.
func (v *Viewport) ScrollTo(index int, alignment, duration float32, easing EasingFunc, onComplete func()) {
	v.scroller.ScrollTo(v.ctx.AlignedScrollPosition(index, alignment), duration, easing, onComplete)
}

// refresh rederives the constants and propagates them. The constants reach
// the cell layer and the scroller before refresh returns, so a
// position-changed notification arriving afterwards can never observe stale
// values.
func (v *Viewport) refresh() {
	v.ctx.recompute()

	v.sink.SetCellInterval(v.ctx.CellInterval)
	v.sink.SetScrollOffset(v.ctx.ScrollOffset)
	v.sink.RefreshContents(v.ctx.State.ItemCount)

	scrollable := v.ctx.Scrollable()
	v.scroller.SetTotalCount(v.ctx.State.ItemCount)
	v.scroller.SetDraggable(scrollable)
	if sb := v.scroller.Scrollbar(); sb != nil {
		sb.SetVisible(scrollable)
	}
	v.updateScrollbarSize(v.ctx.ViewportLength)

	// Reposition cells against the fresh constants right away instead of
	// waiting for the next physics notification.
	v.onPositionChanged(v.scroller.Position())

	scrollLogger.Debug("viewport: refreshed",
		"itemCount", v.ctx.State.ItemCount,
		"cellInterval", v.ctx.CellInterval,
		"maxScrollPosition", v.ctx.MaxScrollPosition,
		"scrollable", scrollable)
}

// onPositionChanged handles every position report from the Scroller. For
// non-scrollable lists the effective input is forced to 0 before mapping, so
// residual physics motion cannot move cells.
func (v *Viewport) onPositionChanged(p float32) {
	eff := p
	if !v.ctx.Scrollable() {
		eff = 0
	}
	v.sink.UpdatePosition(v.ctx.ToVirtualizationSpace(eff))

	if v.scroller.Scrollbar() == nil || !v.ctx.Scrollable() {
		return
	}

	last := float32(v.ctx.State.ItemCount - 1)
	switch {
	case p > last:
		v.overscrolled = true
		v.shrinkScrollbar(p - last)
	case p < 0:
		v.overscrolled = true
		v.shrinkScrollbar(-p)
	case v.overscrolled:
		// Back in range: restore the resting thumb size. Needed because
		// discrete notifications can skip the exact boundary position.
		v.overscrolled = false
		v.updateScrollbarSize(v.ctx.ViewportLength)
	}
}

// shrinkScrollbar shrinks the thumb proportionally to how far the content
// has been dragged past its bound - the scrollbar equivalent of an elastic
// rubber-band cue. Continuous at the boundary: as overscroll approaches 0
// the effective length approaches ViewportLength, the resting value.
func (v *Viewport) shrinkScrollbar(overscroll float32) {
	visible := v.ctx.ViewportLength - v.ctx.PaddingHeadLength
	scale := 1 - v.ctx.ToVirtualizationSpace(overscroll)/maxf(visible, minCellSize)
	v.updateScrollbarSize(visible * scale)
}

// updateScrollbarSize sets the thumb to viewportLength over the effective
// content length, clamped to [0,1]. Non-scrollable lists always report a
// full-size thumb, never a degenerate sliver.
func (v *Viewport) updateScrollbarSize(viewportLength float32) {
	sb := v.scroller.Scrollbar()
	if sb == nil {
		return
	}

	size := float32(1)
	if v.ctx.Scrollable() {
		l := v.ctx.Layout
		unit := maxf(l.CellSize+l.Spacing, minCellSize)
		contentLength := maxf(float32(v.ctx.State.ItemCount)+(l.PaddingHead+l.PaddingTail-l.Spacing)/unit, 1)
		size = clamp01(viewportLength / contentLength)
	}
	sb.SetSize(size)
}
