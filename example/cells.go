package main

import (
	fancyscroll "github.com/ApxfIy/FancyScrollView"
	"github.com/ApxfIy/FancyScrollView/backend/opengl"
)

// cellPool implements fancyscroll.CellSink: it holds the constants and the
// virtualization-space position pushed by the engine and lays out the
// visible cells in pixels on demand. Cell identity is just the item index;
// binding data to a cell amounts to picking its color here.
type cellPool struct {
	interval  float32
	offset    float32
	position  float32
	itemCount int
}

func (p *cellPool) SetCellInterval(interval float32) { p.interval = interval }

func (p *cellPool) SetScrollOffset(offset float32) { p.offset = offset }

func (p *cellPool) UpdatePosition(pos float32) { p.position = pos }

func (p *cellPool) RefreshContents(itemCount int) { p.itemCount = itemCount }

var palette = []uint32{
	opengl.RGBA(0x3a, 0x6e, 0xa5, 0xff),
	opengl.RGBA(0x4f, 0x8f, 0x5a, 0xff),
	opengl.RGBA(0xa5, 0x6e, 0x3a, 0xff),
	opengl.RGBA(0x8f, 0x4f, 0x7a, 0xff),
	opengl.RGBA(0x5a, 0x5a, 0x8f, 0xff),
}

// Rects lays out the cells intersecting the extended (margin-inclusive)
// viewport. The axis position of item i derives from the engine's constants:
// its normalized slot is (i - position)*interval + offset over the extended
// length, and the cell sits centered in its slot.
func (p *cellPool) Rects(layout fancyscroll.Layout, viewportW, viewportH float32) []opengl.Rect {
	if p.itemCount == 0 || p.interval <= 0 {
		return nil
	}

	axisLen := viewportH
	if layout.Direction == fancyscroll.Horizontal {
		axisLen = viewportW
	}

	unit := layout.CellSize + layout.Spacing
	extLen := axisLen + unit*(1+2*layout.ReuseMargin)
	headInset := unit * (1 + layout.ReuseMargin)
	margin := unit * layout.ReuseMargin

	// Only indices near the current position can intersect the viewport.
	first := int(p.position) - int(layout.ReuseMargin) - 2
	if first < 0 {
		first = 0
	}
	lastVisible := int(p.position+axisLen/unit) + int(layout.ReuseMargin) + 2
	if lastVisible >= p.itemCount {
		lastVisible = p.itemCount - 1
	}

	rects := make([]opengl.Rect, 0, lastVisible-first+1)
	for i := first; i <= lastVisible; i++ {
		slot := (float32(i)-p.position)*p.interval + p.offset
		axis := slot*extLen - headInset + layout.Spacing/2

		if axis+layout.CellSize < -margin || axis > axisLen+margin {
			continue
		}

		color := palette[i%len(palette)]
		if layout.Direction == fancyscroll.Horizontal {
			rects = append(rects, opengl.Rect{
				X: axis, Y: 8, W: layout.CellSize, H: viewportH - 16 - scrollbarThickness,
				Color: color,
			})
			continue
		}
		rects = append(rects, opengl.Rect{
			X: 8, Y: axis, W: viewportW - 16 - scrollbarThickness, H: layout.CellSize,
			Color: color,
		})
	}
	return rects
}
