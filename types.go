package fancyscroll

// ScrollDirection selects the axis cells are laid out along.
type ScrollDirection int

const (
	Vertical ScrollDirection = iota
	Horizontal
)

// String returns the direction name for logging.
func (d ScrollDirection) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Alignment describes where in the viewport a target item lands when jumped
// or scrolled to: 0 aligns the item to the leading edge, 1 to the trailing
// edge, 0.5 centers it. Values outside [0,1] are accepted and extrapolate.
const (
	AlignHead   float32 = 0
	AlignCenter float32 = 0.5
	AlignTail   float32 = 1
)

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float32 value to [0, 1].
func clamp01(v float32) float32 {
	return clampf(v, 0, 1)
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
