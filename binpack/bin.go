package binpack

import (
	"math"
	"slices"
)

// Bin records the available space of a growable two-dimensional region.
// A zero Bin is ready to use: it has dimensions {0, 0} and no free space,
// and acquires space only through ExtendDimensions.
//
// A Bin is a single-writer structure. TryPackArea and ExtendDimensions
// must not run concurrently on the same Bin; the read accessors are safe
// for any number of readers as long as no mutator is active.
type Bin struct {
	dimensions   Area
	emptyRegions []Rect
}

// lessFunc compares two free regions for the ordered insert.
type lessFunc func(a, b Rect) bool

// byOriginProduct orders regions by ascending Left*Top. The product is a
// cheap proxy for distance from the bin's origin, so regions near the
// origin are tried first on future searches. It is not a geometric sort.
func byOriginProduct(a, b Rect) bool {
	return a.Left*a.Top < b.Left*b.Top
}

// GetDimensions returns the dimensions of the bin, empty or not.
func (b *Bin) GetDimensions() Area {
	return b.dimensions
}

// GetEmptyRegions returns the bin's free regions, ordered roughly by
// distance from the origin. The slice is owned by the Bin and must not be
// modified by callers.
func (b *Bin) GetEmptyRegions() []Rect {
	return b.emptyRegions
}

// TryPackArea finds the best location in the bin for packing area and
// claims it. Both orientations of the area are tried, anchored at all
// four corners of every free region large enough to hold it, and the
// candidate with the lowest total clip score across the whole free set
// wins; ties keep the earliest candidate in scan order. On success the
// returned Rect is the claimed placement and the free regions are updated
// to exclude it. On failure an invalid Rect is returned and the bin is
// left untouched.
func (b *Bin) TryPackArea(area Area) Rect {
	if area.Width == 0 || area.Height == 0 ||
		area.Width > b.dimensions.Width || area.Height > b.dimensions.Height {
		return invalidRect
	}

	best := invalidRect
	minScore := math.MaxInt

	orientations := [2]Area{area, {Width: area.Height, Height: area.Width}}
	for _, o := range orientations {
		for _, r := range b.emptyRegions {
			// Skip regions the oriented area cannot fit in.
			if r.Right-r.Left < o.Width-1 || r.Bottom-r.Top < o.Height-1 {
				continue
			}
			for _, clip := range cornerClips(r, o) {
				score := 0
				for _, region := range b.emptyRegions {
					score += clipScore(region, clip)
				}
				if score < minScore {
					minScore = score
					best = clip
					if score == 0 {
						break
					}
				}
			}
			if minScore == 0 {
				break
			}
		}
		if minScore == 0 {
			break
		}
	}

	if !best.IsValid() {
		return invalidRect
	}
	b.claim(best)
	return best
}

// cornerClips builds the four candidate placements of an oriented area
// inside a region, anchored NW, NE, SW, SE. The region must be large
// enough to hold the area.
func cornerClips(r Rect, area Area) [4]Rect {
	w := area.Width - 1
	h := area.Height - 1
	return [4]Rect{
		{Left: r.Left, Top: r.Top, Right: r.Left + w, Bottom: r.Top + h},
		{Left: r.Right - w, Top: r.Top, Right: r.Right, Bottom: r.Top + h},
		{Left: r.Left, Top: r.Bottom - h, Right: r.Left + w, Bottom: r.Bottom},
		{Left: r.Right - w, Top: r.Bottom - h, Right: r.Right, Bottom: r.Bottom},
	}
}

// claim removes every free region the clip intersects and re-inserts the
// remainders: left and right strips spanning the removed region's full
// height, and top and bottom strips covering the band between them. The
// remainders of a region are disjoint and their union is exactly the
// region minus the clip, which keeps the whole free set non-overlapping.
func (b *Bin) claim(clip Rect) {
	var staged []Rect
	kept := b.emptyRegions[:0]
	for _, r := range b.emptyRegions {
		if !r.intersects(clip) {
			kept = append(kept, r)
			continue
		}
		if clip.Left > r.Left && clip.Left <= r.Right {
			staged = append(staged, Rect{Left: r.Left, Top: r.Top, Right: clip.Left - 1, Bottom: r.Bottom})
		}
		if clip.Right < r.Right && clip.Right >= r.Left {
			staged = append(staged, Rect{Left: clip.Right + 1, Top: r.Top, Right: r.Right, Bottom: r.Bottom})
		}
		bandLeft := max(r.Left, clip.Left)
		bandRight := min(r.Right, clip.Right)
		if clip.Top > r.Top && clip.Top <= r.Bottom {
			staged = append(staged, Rect{Left: bandLeft, Top: r.Top, Right: bandRight, Bottom: clip.Top - 1})
		}
		if clip.Bottom < r.Bottom && clip.Bottom >= r.Top {
			staged = append(staged, Rect{Left: bandLeft, Top: clip.Bottom + 1, Right: bandRight, Bottom: r.Bottom})
		}
	}
	b.emptyRegions = kept

	for _, region := range staged {
		b.insertRegion(region)
	}
}

// insertRegion merges a remainder with a compatible existing region when
// possible, then inserts the result keeping the sequence ordered. Regions
// merge when they share identical left/right bounds and overlap or touch
// vertically, or share identical top/bottom bounds and overlap or touch
// horizontally; the merge result is their bounding box.
func (b *Bin) insertRegion(region Rect) {
	for i, r := range b.emptyRegions {
		sameColumn := region.Left == r.Left && region.Right == r.Right &&
			region.Top <= r.Bottom+1 && region.Bottom+1 >= r.Top
		sameRow := region.Top == r.Top && region.Bottom == r.Bottom &&
			region.Left <= r.Right+1 && region.Right+1 >= r.Left
		if sameColumn || sameRow {
			region = Rect{
				Left:   min(r.Left, region.Left),
				Top:    min(r.Top, region.Top),
				Right:  max(r.Right, region.Right),
				Bottom: max(r.Bottom, region.Bottom),
			}
			b.emptyRegions = slices.Delete(b.emptyRegions, i, i+1)
			break
		}
	}
	b.emptyRegions = insertOrdered(b.emptyRegions, region, byOriginProduct)
}

// insertOrdered inserts region at the upper bound given by less, i.e.
// after any existing regions that compare equal to it.
func insertOrdered(regions []Rect, region Rect, less lessFunc) []Rect {
	at := len(regions)
	for i, r := range regions {
		if less(region, r) {
			at = i
			break
		}
	}
	return slices.Insert(regions, at, region)
}
