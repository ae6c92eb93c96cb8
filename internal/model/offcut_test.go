package model

import (
	"testing"

	"github.com/ChrisBlueStone/TFBinPacker/binpack"
)

func TestDetectOffcutsFromFreeRegions(t *testing.T) {
	cr := CanvasResult{
		Index:  2,
		Width:  256,
		Height: 256,
		FreeRegions: []binpack.Rect{
			{Left: 128, Top: 0, Right: 255, Bottom: 255}, // 128x256
			{Left: 0, Top: 200, Right: 127, Bottom: 255}, // 128x56
		},
	}
	offcuts := DetectOffcuts(cr, 16, 1024)
	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	// Largest first
	if offcuts[0].Width != 128 || offcuts[0].Height != 256 {
		t.Errorf("expected 128x256 first, got %dx%d", offcuts[0].Width, offcuts[0].Height)
	}
	if offcuts[0].X != 128 || offcuts[0].Y != 0 {
		t.Errorf("expected offcut at 128,0, got %d,%d", offcuts[0].X, offcuts[0].Y)
	}
	if offcuts[0].CanvasIndex != 2 {
		t.Errorf("expected canvas index 2, got %d", offcuts[0].CanvasIndex)
	}
	if offcuts[0].ID == "" || offcuts[1].ID == "" {
		t.Error("expected generated offcut IDs")
	}
}

func TestDetectOffcutsThresholds(t *testing.T) {
	cr := CanvasResult{
		Width:  256,
		Height: 256,
		FreeRegions: []binpack.Rect{
			{Left: 0, Top: 0, Right: 9, Bottom: 255},   // 10 wide, below min side
			{Left: 10, Top: 0, Right: 29, Bottom: 29},  // 20x30, area 600 below min area
			{Left: 30, Top: 0, Right: 93, Bottom: 63},  // 64x64, keeps
			{Left: 1, Top: 1, Right: 0, Bottom: 0},     // invalid sentinel
		},
	}
	offcuts := DetectOffcuts(cr, 16, 1024)
	if len(offcuts) != 1 {
		t.Fatalf("expected 1 offcut, got %d", len(offcuts))
	}
	if offcuts[0].Width != 64 || offcuts[0].Height != 64 {
		t.Errorf("expected the 64x64 region, got %dx%d", offcuts[0].Width, offcuts[0].Height)
	}
}

func TestDetectOffcutsNoFreeRegions(t *testing.T) {
	cr := CanvasResult{Width: 100, Height: 100}
	if offcuts := DetectOffcuts(cr, 16, 1024); len(offcuts) != 0 {
		t.Errorf("expected no offcuts, got %d", len(offcuts))
	}
}

func TestDetectAllOffcuts(t *testing.T) {
	result := LayoutResult{
		Canvases: []CanvasResult{
			{
				Index:       0,
				Width:       128,
				Height:      128,
				FreeRegions: []binpack.Rect{{Left: 64, Top: 0, Right: 127, Bottom: 127}},
			},
			{
				Index:       1,
				Width:       128,
				Height:      128,
				FreeRegions: []binpack.Rect{{Left: 0, Top: 96, Right: 127, Bottom: 127}},
			},
		},
	}
	offcuts := DetectAllOffcuts(result, DefaultSettings())
	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts across canvases, got %d", len(offcuts))
	}
	indexes := map[int]bool{}
	for _, o := range offcuts {
		indexes[o.CanvasIndex] = true
	}
	if !indexes[0] || !indexes[1] {
		t.Errorf("expected offcuts from both canvases, got %v", indexes)
	}
}

func TestOffcutArea(t *testing.T) {
	o := Offcut{Width: 500, Height: 300}
	if o.Area() != 150000 {
		t.Errorf("expected area 150000, got %d", o.Area())
	}
}

func TestOffcutToItem(t *testing.T) {
	o := Offcut{ID: "abc", Width: 800, Height: 400}
	it := o.ToItem("scrap")
	if it.Width != 800 || it.Height != 400 {
		t.Errorf("expected 800x400, got %dx%d", it.Width, it.Height)
	}
	if it.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", it.Quantity)
	}
	if it.Label != "scrap" {
		t.Errorf("expected label scrap, got %q", it.Label)
	}
}

func TestTotalOffcutArea(t *testing.T) {
	offcuts := []Offcut{
		{Width: 500, Height: 300},
		{Width: 200, Height: 100},
	}
	total := TotalOffcutArea(offcuts)
	if total != 500*300+200*100 {
		t.Errorf("expected total area %d, got %d", 500*300+200*100, total)
	}
}
