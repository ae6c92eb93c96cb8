package model

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ChrisBlueStone/TFBinPacker/binpack"
)

// Offcut represents a usable rectangular area left free on a canvas after
// layout. Offcuts come straight from the allocator's free-region snapshot,
// so they never overlap a placement or each other.
type Offcut struct {
	ID          string `json:"id"`
	CanvasIndex int    `json:"canvas_index"` // Index of the source canvas in the result
	X           uint   `json:"x"`
	Y           uint   `json:"y"`
	Width       uint   `json:"width"`
	Height      uint   `json:"height"`
}

// Area returns the area of the offcut in square units.
func (o Offcut) Area() uint {
	return o.Width * o.Height
}

// ToItem converts an offcut into an item for reuse in a later layout.
func (o Offcut) ToItem(label string) Item {
	return NewItem(label, o.Width, o.Height, 1)
}

func offcutFromRegion(r binpack.Rect, canvasIndex int) Offcut {
	return Offcut{
		ID:          uuid.New().String()[:8],
		CanvasIndex: canvasIndex,
		X:           r.Left,
		Y:           r.Top,
		Width:       r.Width(),
		Height:      r.Height(),
	}
}

// DetectOffcuts filters a canvas's free regions down to those large enough
// to reuse. Regions below either threshold are waste.
func DetectOffcuts(cr CanvasResult, minSide, minArea uint) []Offcut {
	var offcuts []Offcut
	for _, r := range cr.FreeRegions {
		if !r.IsValid() {
			continue
		}
		if r.Width() < minSide || r.Height() < minSide || r.AreaSize() < minArea {
			continue
		}
		offcuts = append(offcuts, offcutFromRegion(r, cr.Index))
	}

	// Largest first
	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})

	return offcuts
}

// DetectAllOffcuts finds offcuts across all canvases in a layout result.
func DetectAllOffcuts(result LayoutResult, settings LayoutSettings) []Offcut {
	var all []Offcut
	for _, c := range result.Canvases {
		all = append(all, DetectOffcuts(c, settings.MinOffcutSide, settings.MinOffcutArea)...)
	}
	return all
}

// TotalOffcutArea returns the total area of all offcuts in square units.
func TotalOffcutArea(offcuts []Offcut) uint {
	var total uint
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
