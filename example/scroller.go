package main

import (
	"math"

	fancyscroll "github.com/ApxfIy/FancyScrollView"
)

const (
	wheelStep       = 0.6 // items per wheel tick
	inertiaDecay    = 4.0 // 1/s exponential decay of flick velocity
	bounceStiffness = 10.0
	overscrollLimit = 1.0 // max items past either bound while dragging
	dragResistance  = 0.4 // movement factor while overscrolled
)

// demoScroller is a minimal physics backend implementing
// fancyscroll.Scroller: wheel and drag input, inertia decay, elastic
// pull-back at the bounds, and eased scroll-to animation. It exists so the
// example is runnable; the engine only sees the Scroller interface.
type demoScroller struct {
	pos          float32
	velocity     float32
	totalCount   int
	viewportSize float32
	unitPixels   float32 // pixel extent of one item, for gesture conversion
	sensitivity  float32
	draggable    bool
	direction    fancyscroll.ScrollDirection
	callback     func(float32)
	bar          scrollbarState

	anim *scrollAnim
}

type scrollAnim struct {
	from, to   float32
	elapsed    float32
	duration   float32
	easing     fancyscroll.EasingFunc
	onComplete func()
}

// scrollbarState implements fancyscroll.ScrollbarHandle. The engine writes
// thumb size/visibility here; the render loop reads them back.
type scrollbarState struct {
	size    float32
	visible bool
}

func (b *scrollbarState) SetSize(size float32)    { b.size = size }
func (b *scrollbarState) SetVisible(visible bool) { b.visible = visible }

func newDemoScroller(viewportSize, unitPixels float32, direction fancyscroll.ScrollDirection) *demoScroller {
	return &demoScroller{
		viewportSize: viewportSize,
		unitPixels:   unitPixels,
		sensitivity:  1,
		direction:    direction,
		bar:          scrollbarState{size: 1},
	}
}

func (s *demoScroller) Position() float32 { return s.pos }

func (s *demoScroller) SetPosition(p float32) {
	s.anim = nil
	s.velocity = 0
	s.setPos(p)
}

func (s *demoScroller) ViewportSize() float32 { return s.viewportSize }

func (s *demoScroller) Direction() fancyscroll.ScrollDirection { return s.direction }

func (s *demoScroller) SetScrollSensitivity(v float32) { s.sensitivity = v }

func (s *demoScroller) SetDraggable(d bool) { s.draggable = d }

func (s *demoScroller) SetTotalCount(n int) { s.totalCount = n }

func (s *demoScroller) OnPositionChanged(fn func(float32)) { s.callback = fn }

func (s *demoScroller) ScrollTo(target, duration float32, easing fancyscroll.EasingFunc, onComplete func()) {
	if duration <= 0 {
		s.SetPosition(target)
		if onComplete != nil {
			onComplete()
		}
		return
	}
	if easing == nil {
		easing = fancyscroll.EaseOutCubic
	}
	// Supersedes any animation in flight; the old completion never fires.
	s.velocity = 0
	s.anim = &scrollAnim{from: s.pos, to: target, duration: duration, easing: easing, onComplete: onComplete}
}

func (s *demoScroller) Scrollbar() fancyscroll.ScrollbarHandle { return &s.bar }

// Update advances the physics by dt seconds with this frame's gestures:
// wheel in ticks, drag in pixels, dragging whether a drag is held.
func (s *demoScroller) Update(dt, wheel, drag float32, dragging bool) {
	if dt <= 0 {
		return
	}

	if s.anim != nil {
		if dragging && s.draggable {
			// Drag takes over; the superseded completion never fires.
			s.anim = nil
		} else {
			s.stepAnim(dt)
			return
		}
	}

	last := s.maxPos()

	if dragging && s.draggable && drag != 0 {
		delta := -drag / s.unitPixels * s.sensitivity
		if s.pos+delta < 0 || s.pos+delta > last {
			delta *= dragResistance
		}
		next := clampf(s.pos+delta, -overscrollLimit, last+overscrollLimit)
		s.velocity = (next - s.pos) / dt
		s.setPos(next)
		return
	}

	if wheel != 0 && s.draggable {
		s.velocity = 0
		s.setPos(clampf(s.pos-wheel*wheelStep*s.sensitivity, 0, last))
		return
	}

	// Inertia after a flick.
	if s.velocity != 0 {
		next := s.pos + s.velocity*dt
		s.velocity *= float32(math.Exp(float64(-inertiaDecay * dt)))
		if absf(s.velocity) < 0.01 {
			s.velocity = 0
		}
		// Flicks do not extend overscroll past the elastic limit.
		s.setPos(clampf(next, -overscrollLimit, last+overscrollLimit))
	}

	// Elastic pull-back toward the valid range.
	if s.pos < 0 || s.pos > last {
		s.velocity = 0
		target := clampf(s.pos, 0, last)
		step := minf(bounceStiffness*dt, 1)
		next := s.pos + (target-s.pos)*step
		if absf(next-target) < 1e-3 {
			next = target
		}
		s.setPos(next)
	}
}

func (s *demoScroller) stepAnim(dt float32) {
	a := s.anim
	a.elapsed += dt
	t := a.elapsed / a.duration
	if t >= 1 {
		s.anim = nil
		s.setPos(a.to)
		if a.onComplete != nil {
			a.onComplete()
		}
		return
	}
	s.setPos(a.from + (a.to-a.from)*a.easing(t))
}

func (s *demoScroller) maxPos() float32 {
	return maxf(float32(s.totalCount-1), 0)
}

func (s *demoScroller) setPos(p float32) {
	s.pos = p
	if s.callback != nil {
		s.callback(p)
	}
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
