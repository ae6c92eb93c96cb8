package model

import (
	"github.com/google/uuid"

	"github.com/ChrisBlueStone/TFBinPacker/binpack"
)

// Point2D represents a 2D coordinate in item units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Item represents a rectangle to be placed, in whole units (pixels or mm).
type Item struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Width      uint   `json:"width"`
	Height     uint   `json:"height"`
	Quantity   int    `json:"quantity"`
	SourcePath string `json:"source_path,omitempty"` // Image file backing the item, if any
}

func NewItem(label string, w, h uint, qty int) Item {
	return Item{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// Area returns the item area in square units.
func (it Item) Area() uint {
	return it.Width * it.Height
}

// Algorithm represents the layout algorithm to use.
type Algorithm string

const (
	AlgorithmBestFit Algorithm = "bestfit" // Greedy best-fit decreasing (fast)
	AlgorithmGenetic Algorithm = "genetic" // Genetic ordering meta-heuristic (slower, often better)
)

// LayoutSettings holds layout engine configuration.
type LayoutSettings struct {
	Algorithm     Algorithm `json:"algorithm"`
	InitialWidth  uint      `json:"initial_width"`   // Starting canvas width
	InitialHeight uint      `json:"initial_height"`  // Starting canvas height
	MaxWidth      uint      `json:"max_width"`       // Canvas growth ceiling
	MaxHeight     uint      `json:"max_height"`
	Padding       uint      `json:"padding"`         // Spacing added to each item's packed size
	PowerOfTwo    bool      `json:"power_of_two"`    // Round grown dimensions up to powers of two
	MinOffcutSide uint      `json:"min_offcut_side"` // Smallest side for a free region to count as an offcut
	MinOffcutArea uint      `json:"min_offcut_area"`
}

func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		Algorithm:     AlgorithmBestFit,
		InitialWidth:  256,
		InitialHeight: 256,
		MaxWidth:      4096,
		MaxHeight:     4096,
		Padding:       0,
		PowerOfTwo:    true,
		MinOffcutSide: 16,
		MinOffcutArea: 1024,
	}
}

// Placement represents a single item placed on a canvas.
type Placement struct {
	Item    Item `json:"item"`
	X       uint `json:"x"` // Position from the left edge
	Y       uint `json:"y"` // Position from the top edge
	Rotated bool `json:"rotated"`
}

// PlacedWidth returns the effective width considering rotation.
func (p Placement) PlacedWidth() uint {
	if p.Rotated {
		return p.Item.Height
	}
	return p.Item.Width
}

// PlacedHeight returns the effective height considering rotation.
func (p Placement) PlacedHeight() uint {
	if p.Rotated {
		return p.Item.Width
	}
	return p.Item.Height
}

// CanvasResult represents one finished canvas with its placed items and the
// free space left over.
type CanvasResult struct {
	Index       int            `json:"index"`
	Width       uint           `json:"width"`
	Height      uint           `json:"height"`
	Placements  []Placement    `json:"placements"`
	FreeRegions []binpack.Rect `json:"free_regions,omitempty"`
}

// UsedArea returns the total area covered by placed items.
func (cr CanvasResult) UsedArea() uint {
	var total uint
	for _, p := range cr.Placements {
		total += p.PlacedWidth() * p.PlacedHeight()
	}
	return total
}

// TotalArea returns the canvas area.
func (cr CanvasResult) TotalArea() uint {
	return cr.Width * cr.Height
}

// Efficiency returns the usage percentage.
func (cr CanvasResult) Efficiency() float64 {
	ta := cr.TotalArea()
	if ta == 0 {
		return 0
	}
	return (float64(cr.UsedArea()) / float64(ta)) * 100.0
}

// LayoutResult holds the full solution.
type LayoutResult struct {
	Canvases      []CanvasResult `json:"canvases"`
	UnplacedItems []Item         `json:"unplaced_items,omitempty"`
}

// TotalEfficiency returns overall canvas usage percentage.
func (lr LayoutResult) TotalEfficiency() float64 {
	var usedArea, totalArea uint
	for _, c := range lr.Canvases {
		usedArea += c.UsedArea()
		totalArea += c.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	return (float64(usedArea) / float64(totalArea)) * 100.0
}

// Project ties everything together for save/load.
type Project struct {
	Name     string         `json:"name"`
	Items    []Item         `json:"items"`
	Settings LayoutSettings `json:"settings"`
	Result   *LayoutResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Items:    []Item{},
		Settings: DefaultSettings(),
	}
}
