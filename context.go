package fancyscroll

// minCellInterval bounds CellInterval away from zero when deriving lengths,
// so a viewport vastly larger than one cell cannot blow up ScrollLength.
const minCellInterval = 1e-2

// Context is the shared snapshot the position algebra operates on: the
// layout configuration, the viewport/data state, and the constants derived
// from them. It is a plain value object passed by reference into both the
// position conversions and the cell layer - there is no hidden state and no
// inheritance chain behind it.
//
// Derived fields are recomputed by a single call path (recompute) whenever
// the configuration or data changes, and are never persisted.
type Context struct {
	// Layout is the current cell geometry configuration.
	Layout Layout

	// State is the current viewport/data snapshot.
	State ViewportState

	// CellInterval is the fraction of normalized scroll space one item
	// occupies, given cell size, spacing, viewport size and reuse margin.
	CellInterval float32

	// ScrollOffset is the virtualization-space offset applied so the first
	// visible cell is positioned correctly when the reuse margin is > 0.
	ScrollOffset float32

	// MaxScrollPosition is the upper bound of the valid scroll position in
	// item units. Zero or negative when the content fits the viewport.
	MaxScrollPosition float32

	// ScrollLength is the viewport extent in item units, beyond the first
	// visible item.
	ScrollLength float32

	// ViewportLength is ScrollLength with the reuse margin excluded: the
	// extent actually visible to the user.
	ViewportLength float32

	// PaddingHeadLength is the head padding in item units, offset by half a
	// spacing so cell centers line up with slot centers.
	PaddingHeadLength float32
}

// NewContext returns a recomputed snapshot for the given configuration.
// Viewport maintains its own Context internally; NewContext is for hosts
// that need the position conversions without the adapter.
func NewContext(layout Layout, state ViewportState) Context {
	c := Context{Layout: layout.sanitize(), State: state}
	c.recompute()
	return c
}

// recompute rederives all constants from the current Layout and State.
// All divisions are guarded; no input can produce NaN or Inf.
func (c *Context) recompute() {
	l := c.Layout
	unit := maxf(l.CellSize+l.Spacing, minCellSize)

	c.CellInterval = unit / maxf(c.State.ViewportSize+unit*(1+2*l.ReuseMargin), minCellSize)
	c.ScrollOffset = c.CellInterval * (1 + l.ReuseMargin)

	c.ScrollLength = 1/maxf(c.CellInterval, minCellInterval) - 1
	c.ViewportLength = c.ScrollLength - 2*l.ReuseMargin
	c.PaddingHeadLength = (l.PaddingHead - l.Spacing*0.5) / unit
	c.MaxScrollPosition = float32(c.State.ItemCount) - c.ScrollLength +
		2*l.ReuseMargin + (l.PaddingHead+l.PaddingTail-l.Spacing)/unit
}
