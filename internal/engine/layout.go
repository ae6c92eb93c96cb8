package engine

import (
	"sort"

	"github.com/ChrisBlueStone/TFBinPacker/binpack"
	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// Layouter packs items onto growable canvases using the binpack allocator.
// The allocator only tracks free space; placements live here.
type Layouter struct {
	Settings model.LayoutSettings
}

func New(settings model.LayoutSettings) *Layouter {
	return &Layouter{Settings: settings}
}

// Layout takes items and returns the packed canvases. Items are expanded by
// quantity, ordered largest-area first and placed one by one; a canvas grows
// up to the configured maximum before the next canvas is opened.
func (l *Layouter) Layout(items []model.Item) model.LayoutResult {
	if l.Settings.Algorithm == model.AlgorithmGenetic {
		return LayoutGenetic(l.Settings, items)
	}

	expanded := expandByQuantity(items)
	sortByAreaDesc(expanded)
	return l.layoutOrdered(expanded)
}

// expandByQuantity turns each item into Quantity individual placement
// candidates.
func expandByQuantity(items []model.Item) []model.Item {
	var expanded []model.Item
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			cp := it
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}
	return expanded
}

// sortByAreaDesc orders items largest first, which packs better.
func sortByAreaDesc(items []model.Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Area() > items[j].Area()
	})
}

// layoutOrdered packs items in the given order, opening a new canvas whenever
// the current one cannot take any of the remaining items.
func (l *Layouter) layoutOrdered(ordered []model.Item) model.LayoutResult {
	result := model.LayoutResult{}
	remaining := ordered

	for len(remaining) > 0 {
		canvas, unplaced := l.packCanvas(len(result.Canvases), remaining)
		if len(canvas.Placements) == 0 {
			// Nothing fits even on a fresh canvas at maximum size.
			result.UnplacedItems = append(result.UnplacedItems, unplaced...)
			break
		}
		result.Canvases = append(result.Canvases, canvas)
		remaining = unplaced
	}

	return result
}

// packCanvas fills a single canvas, growing it on demand, and returns the
// canvas plus the items that did not fit.
func (l *Layouter) packCanvas(index int, items []model.Item) (model.CanvasResult, []model.Item) {
	var bin binpack.Bin
	bin.ExtendDimensions(binpack.Area{
		Width:  l.Settings.InitialWidth,
		Height: l.Settings.InitialHeight,
	})

	canvas := model.CanvasResult{Index: index}
	var unplaced []model.Item
	pad := l.Settings.Padding

	for _, it := range items {
		w := it.Width + pad
		h := it.Height + pad
		if it.Width == 0 || it.Height == 0 || !l.canEverFit(w, h) {
			unplaced = append(unplaced, it)
			continue
		}

		placed := tryBothOrientations(&bin, w, h)
		for !placed.IsValid() && l.grow(&bin) {
			placed = tryBothOrientations(&bin, w, h)
		}
		if !placed.IsValid() {
			unplaced = append(unplaced, it)
			continue
		}

		canvas.Placements = append(canvas.Placements, model.Placement{
			Item:    it,
			X:       placed.Left,
			Y:       placed.Top,
			Rotated: placed.Width() != w,
		})
	}

	dims := bin.GetDimensions()
	canvas.Width = dims.Width
	canvas.Height = dims.Height
	canvas.FreeRegions = append([]binpack.Rect(nil), bin.GetEmptyRegions()...)

	return canvas, unplaced
}

// tryBothOrientations packs a request, retrying with swapped dimensions
// when the as-given request is taller or wider than the bin itself. The
// allocator already weighs both orientations internally, but it rejects a
// request whose as-given dimensions exceed the bin outright.
func tryBothOrientations(bin *binpack.Bin, w, h uint) binpack.Rect {
	placed := bin.TryPackArea(binpack.Area{Width: w, Height: h})
	if !placed.IsValid() && w != h {
		placed = bin.TryPackArea(binpack.Area{Width: h, Height: w})
	}
	return placed
}

// canEverFit reports whether a padded request fits within the maximum canvas
// size in at least one orientation.
func (l *Layouter) canEverFit(w, h uint) bool {
	maxW, maxH := l.Settings.MaxWidth, l.Settings.MaxHeight
	return (w <= maxW && h <= maxH) || (h <= maxW && w <= maxH)
}

// grow enlarges the canvas by doubling its smaller axis, clamped to the
// configured maximum. Returns false once both axes are maxed out.
func (l *Layouter) grow(bin *binpack.Bin) bool {
	dims := bin.GetDimensions()
	maxW, maxH := l.Settings.MaxWidth, l.Settings.MaxHeight

	if dims.Width >= maxW && dims.Height >= maxH {
		return false
	}

	growWidth := dims.Width <= dims.Height
	if growWidth && dims.Width >= maxW {
		growWidth = false
	} else if !growWidth && dims.Height >= maxH {
		growWidth = true
	}

	if growWidth {
		target := dims.Width * 2
		if target <= dims.Width {
			target = dims.Width + 1
		}
		if l.Settings.PowerOfTwo {
			target = nextPowerOfTwo(target)
		}
		if target > maxW {
			target = maxW
		}
		if target <= dims.Width {
			return false
		}
		bin.ExtendDimensions(binpack.Area{Width: target - dims.Width})
		return true
	}

	target := dims.Height * 2
	if target <= dims.Height {
		target = dims.Height + 1
	}
	if l.Settings.PowerOfTwo {
		target = nextPowerOfTwo(target)
	}
	if target > maxH {
		target = maxH
	}
	if target <= dims.Height {
		return false
	}
	bin.ExtendDimensions(binpack.Area{Height: target - dims.Height})
	return true
}

func nextPowerOfTwo(n uint) uint {
	p := uint(1)
	for p < n {
		p <<= 1
	}
	return p
}
