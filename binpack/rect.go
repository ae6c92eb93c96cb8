// Package binpack tracks the free space of a growable rectangular bin and
// finds placements for rectangular areas within it.
//
// The allocator keeps a list of empty regions and tries to fit each
// requested area into the corners of existing empty space, scoring every
// candidate by how many fragments the placement would split off and how
// much of the region it would leave unused. Only free space is recorded:
// once an area is packed the bin forgets it, and callers that need the
// occupied set must track returned placements themselves.
package binpack

// Rect is an axis-aligned rectangle with inclusive coordinates: a Rect
// covering a single cell has Left == Right and Top == Bottom, and a Rect
// spanning cells [0,10) x [0,10) is {0, 0, 9, 9}.
type Rect struct {
	Left   uint `json:"left"`
	Top    uint `json:"top"`
	Right  uint `json:"right"`
	Bottom uint `json:"bottom"`
}

// invalidRect is the canonical "no placement" value.
var invalidRect = Rect{Left: 1, Top: 1, Right: 0, Bottom: 0}

// IsValid reports whether Right >= Left and Bottom >= Top. TryPackArea
// signals failure by returning an invalid Rect, so this is the only check
// callers need on its result.
func (r Rect) IsValid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Width returns the number of columns the rectangle covers.
func (r Rect) Width() uint {
	return r.Right - r.Left + 1
}

// Height returns the number of rows the rectangle covers.
func (r Rect) Height() uint {
	return r.Bottom - r.Top + 1
}

// AreaSize returns the number of cells the rectangle covers.
func (r Rect) AreaSize() uint {
	return r.Width() * r.Height()
}

// intersects reports whether r and o share at least one cell.
func (r Rect) intersects(o Rect) bool {
	return r.Left <= o.Right && r.Right >= o.Left &&
		r.Top <= o.Bottom && r.Bottom >= o.Top
}

// Area describes a width/height pair. Both components must be greater
// than zero for any meaningful packing request.
type Area struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}
