package fancyscroll

// EasingFunc maps normalized animation time t in [0,1] to normalized
// progress. The engine never steps animations itself; easing functions are
// passed through to the Scroller's animated ScrollTo.
type EasingFunc func(t float32) float32

// EaseLinear is constant-speed interpolation.
func EaseLinear(t float32) float32 { return t }

// EaseOutCubic decelerates toward the target. A good default for
// scroll-to-item: fast start, gentle landing.
func EaseOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseOutBack overshoots the target slightly before settling, matching the
// elastic feel of overscroll physics.
func EaseOutBack(t float32) float32 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
