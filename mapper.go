package fancyscroll

// Position conversions between scroll space (the unit the external Scroller
// reports, roughly [0, itemCount-1]) and virtualization space (the unit the
// cell layer interpolates positions in). All conversions are pure reads of
// the Context snapshot.

// itemSpan returns the scroll-space denominator: the distance between the
// first and last item, floored at 1 so single-item lists do not divide by
// zero.
func (c *Context) itemSpan() float32 {
	return maxf(float32(c.State.ItemCount-1), 1)
}

// ToVirtualizationSpace converts a scroll-space position into virtualization
// space. Monotonic increasing in pos; maps pos=0 to -PaddingHeadLength.
func (c *Context) ToVirtualizationSpace(pos float32) float32 {
	return pos/c.itemSpan()*c.MaxScrollPosition - c.PaddingHeadLength
}

// ToScrollSpace converts a virtualization-space position back into scroll
// space. Exact inverse of ToVirtualizationSpace when MaxScrollPosition is
// nonzero; for degenerate lists (itemCount <= 1) the mapping collapses to a
// fixed point rather than a meaningful scroll range.
func (c *Context) ToScrollSpace(pos float32) float32 {
	return (pos + c.PaddingHeadLength) / maxf(c.MaxScrollPosition, minCellSize) * c.itemSpan()
}

// AlignedScrollPosition returns the scroll-space position that places item
// index at the given viewport alignment (0 leading edge, 0.5 center, 1
// trailing edge; out-of-range values extrapolate). The target is clamped in
// both spaces, so jumping to items near either end of the list never
// requests a position past the valid bounds.
func (c *Context) AlignedScrollPosition(index int, alignment float32) float32 {
	unit := maxf(c.Layout.CellSize+c.Layout.Spacing, minCellSize)
	offset := alignment*(c.ScrollLength-(1+2*c.Layout.ReuseMargin)) +
		(0.5-alignment)*c.Layout.Spacing/unit

	target := clampf(float32(index)-offset, 0, maxf(c.MaxScrollPosition, 0))
	return clampf(c.ToScrollSpace(target), 0, maxf(float32(c.State.ItemCount-1), 0))
}

// Scrollable reports whether the content exceeds the viewport. False for
// empty and single-item lists, and whenever cells plus padding fit entirely
// on screen. Used to gate draggability and scrollbar visibility.
func (c *Context) Scrollable() bool {
	return c.MaxScrollPosition > 0
}
