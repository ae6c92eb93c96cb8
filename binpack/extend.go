package binpack

import (
	"cmp"
	"slices"
)

// ExtendDimensions increases the dimensions of the bin, making the space
// along the right and/or bottom edges available for packing. Either
// component of the extension may be zero. Growth only ever widens
// existing regions or adds new ones; it never removes or shrinks free
// space, and it is the only way a fresh Bin acquires any.
func (b *Bin) ExtendDimensions(extension Area) {
	if extension.Width > 0 && b.dimensions.Height > 0 {
		b.growRight(extension.Width)
	}
	b.dimensions.Width += extension.Width

	// Height growth runs against the post-growth right edge, so a single
	// call extending both axes fills the corner exactly once.
	if extension.Height > 0 && b.dimensions.Width > 0 {
		b.growBottom(extension.Height)
	}
	b.dimensions.Height += extension.Height
}

// growRight makes ext new columns of free space available. A region
// spanning the bin's full height at the right edge absorbs the new band
// whole; otherwise every region touching the right edge is widened into
// the band and the rows no widened region reaches are covered by new
// regions, keeping the free set disjoint.
func (b *Bin) growRight(ext uint) {
	bottomEdge := b.dimensions.Height - 1
	newRight := b.dimensions.Width + ext - 1

	if b.dimensions.Width > 0 {
		rightEdge := b.dimensions.Width - 1
		for i, r := range b.emptyRegions {
			if r.Right == rightEdge && r.Bottom-r.Top == bottomEdge {
				b.emptyRegions[i].Right += ext
				return
			}
		}
		for i, r := range b.emptyRegions {
			if r.Right == rightEdge {
				b.emptyRegions[i].Right += ext
			}
		}
	}

	var covered [][2]uint
	for _, r := range b.emptyRegions {
		if r.Right == newRight {
			covered = append(covered, [2]uint{r.Top, r.Bottom})
		}
	}
	for _, gap := range gapsIn(covered, bottomEdge) {
		b.emptyRegions = append(b.emptyRegions, Rect{
			Left: b.dimensions.Width, Top: gap[0], Right: newRight, Bottom: gap[1],
		})
	}
}

// growBottom is the mirror of growRight for the bottom edge.
func (b *Bin) growBottom(ext uint) {
	rightEdge := b.dimensions.Width - 1
	newBottom := b.dimensions.Height + ext - 1

	if b.dimensions.Height > 0 {
		bottomEdge := b.dimensions.Height - 1
		for i, r := range b.emptyRegions {
			if r.Bottom == bottomEdge && r.Right-r.Left == rightEdge {
				b.emptyRegions[i].Bottom += ext
				return
			}
		}
		for i, r := range b.emptyRegions {
			if r.Bottom == bottomEdge {
				b.emptyRegions[i].Bottom += ext
			}
		}
	}

	var covered [][2]uint
	for _, r := range b.emptyRegions {
		if r.Bottom == newBottom {
			covered = append(covered, [2]uint{r.Left, r.Right})
		}
	}
	for _, gap := range gapsIn(covered, rightEdge) {
		b.emptyRegions = append(b.emptyRegions, Rect{
			Left: gap[0], Top: b.dimensions.Height, Right: gap[1], Bottom: newBottom,
		})
	}
}

// gapsIn returns the maximal inclusive intervals of [0, limit] that the
// given disjoint intervals leave uncovered.
func gapsIn(covered [][2]uint, limit uint) [][2]uint {
	slices.SortFunc(covered, func(a, b [2]uint) int {
		return cmp.Compare(a[0], b[0])
	})

	var gaps [][2]uint
	next := uint(0)
	for _, iv := range covered {
		if iv[0] > next {
			gaps = append(gaps, [2]uint{next, iv[0] - 1})
		}
		if iv[1]+1 > next {
			next = iv[1] + 1
		}
		if next > limit {
			return gaps
		}
	}
	gaps = append(gaps, [2]uint{next, limit})
	return gaps
}
