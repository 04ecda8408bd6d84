package fancyscroll

// minCellSize is the smallest cell size the engine accepts. Configurations
// with CellSize <= 0 are clamped here instead of propagating a division by
// zero through the derived constants.
const minCellSize = 1e-3

// Layout holds the cell geometry configuration: how large each cell is, how
// cells are spaced and padded, and how much off-screen buffer is kept before
// a cell is recycled. A Layout is immutable per recompute cycle; it is
// mutated only by explicit configuration changes, never by scrolling.
type Layout struct {
	// CellSize is the extent of one cell along the scroll axis, in viewport
	// units. Must be > 0; non-positive values are clamped to a minimum.
	CellSize float32

	// Spacing is the gap between adjacent cells, in viewport units.
	Spacing float32

	// PaddingHead is the padding before the first cell, in viewport units.
	PaddingHead float32

	// PaddingTail is the padding after the last cell, in viewport units.
	PaddingTail float32

	// ReuseMargin is the number of extra cell-widths of buffer kept beyond
	// each viewport edge before an off-screen cell is recycled. Larger
	// values reduce visible popping during fast scrolls at the cost of more
	// live cells. Fractional values are allowed.
	ReuseMargin float32

	// Direction is the scroll axis. It does not affect the position algebra;
	// it is carried for the cell layer, which lays cells out along it.
	Direction ScrollDirection
}

// DefaultLayout returns a sensible default layout configuration.
func DefaultLayout() Layout {
	return Layout{
		CellSize:  100,
		Direction: Vertical,
	}
}

// sanitize returns a copy of the layout with out-of-range fields clamped to
// their nearest valid value. Each clamp is logged at Warn level so
// misconfiguration is visible without being fatal.
func (l Layout) sanitize() Layout {
	if l.CellSize < minCellSize {
		scrollLogger.Warn("layout: cell size must be positive, clamping",
			"cellSize", l.CellSize, "clampedTo", minCellSize)
		l.CellSize = minCellSize
	}
	if l.Spacing < 0 {
		scrollLogger.Warn("layout: negative spacing, clamping to 0", "spacing", l.Spacing)
		l.Spacing = 0
	}
	if l.PaddingHead < 0 {
		scrollLogger.Warn("layout: negative head padding, clamping to 0", "paddingHead", l.PaddingHead)
		l.PaddingHead = 0
	}
	if l.PaddingTail < 0 {
		scrollLogger.Warn("layout: negative tail padding, clamping to 0", "paddingTail", l.PaddingTail)
		l.PaddingTail = 0
	}
	if l.ReuseMargin < 0 {
		// A negative margin would produce negative virtualization lengths.
		scrollLogger.Warn("layout: negative reuse margin, clamping to 0", "reuseMargin", l.ReuseMargin)
		l.ReuseMargin = 0
	}
	return l
}

// ViewportState describes the data source and viewport dimensions the layout
// is applied to. Updated whenever the data source or viewport changes, which
// triggers a full recompute of the derived constants.
type ViewportState struct {
	// ViewportSize is the viewport extent along the scroll axis.
	ViewportSize float32

	// ItemCount is the number of items in the data source.
	ItemCount int
}
