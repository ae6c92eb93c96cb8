package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// Item colors — cycle through these for visual distinction.
var itemColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// LayoutCanvas renders a visual representation of a single packed canvas.
type LayoutCanvas struct {
	widget.BaseWidget
	result    model.CanvasResult
	maxWidth  float32
	maxHeight float32
}

func NewLayoutCanvas(result model.CanvasResult, maxW, maxH float32) *LayoutCanvas {
	lc := &LayoutCanvas{
		result:    result,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	lc.ExtendBaseWidget(lc)
	return lc
}

func (lc *LayoutCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newLayoutCanvasRenderer(lc)
}

type layoutCanvasRenderer struct {
	lc      *LayoutCanvas
	objects []fyne.CanvasObject
}

func newLayoutCanvasRenderer(lc *LayoutCanvas) *layoutCanvasRenderer {
	r := &layoutCanvasRenderer{lc: lc}
	r.rebuild()
	return r
}

func (r *layoutCanvasRenderer) scale() float32 {
	result := r.lc.result
	scaleX := r.lc.maxWidth / float32(result.Width)
	scaleY := r.lc.maxHeight / float32(result.Height)
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *layoutCanvasRenderer) rebuild() {
	r.objects = nil

	result := r.lc.result
	scale := r.scale()
	canvasW := float32(result.Width) * scale
	canvasH := float32(result.Height) * scale

	// Canvas background
	bg := canvas.NewRectangle(color.NRGBA{R: 48, G: 48, B: 48, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Canvas border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Free regions, outlined behind the placed items
	r.drawFreeRegions(scale)

	// Placed items
	for i, p := range result.Placements {
		col := itemColors[i%len(itemColors)]
		pw := float32(p.PlacedWidth()) * scale
		ph := float32(p.PlacedHeight()) * scale
		px := float32(p.X) * scale
		py := float32(p.Y) * scale

		// Item rectangle
		itemRect := canvas.NewRectangle(col)
		itemRect.Resize(fyne.NewSize(pw, ph))
		itemRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemRect)

		// Item border
		itemBorder := canvas.NewRectangle(color.Transparent)
		itemBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		itemBorder.StrokeWidth = 1
		itemBorder.Resize(fyne.NewSize(pw, ph))
		itemBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			text := fmt.Sprintf("%s\n%dx%d", p.Item.Label, p.Item.Width, p.Item.Height)
			if p.Rotated {
				text += " R"
			}
			label := canvas.NewText(text, color.White)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

// drawFreeRegions outlines the unoccupied regions of the canvas.
func (r *layoutCanvasRenderer) drawFreeRegions(scale float32) {
	for _, region := range r.lc.result.FreeRegions {
		if !region.IsValid() {
			continue
		}

		zx := float32(region.Left) * scale
		zy := float32(region.Top) * scale
		zw := float32(region.Width()) * scale
		zh := float32(region.Height()) * scale

		zoneRect := canvas.NewRectangle(color.NRGBA{R: 80, G: 80, B: 80, A: 90})
		zoneRect.Resize(fyne.NewSize(zw, zh))
		zoneRect.Move(fyne.NewPos(zx, zy))
		r.objects = append(r.objects, zoneRect)

		zoneBorder := canvas.NewRectangle(color.Transparent)
		zoneBorder.StrokeColor = color.NRGBA{R: 140, G: 140, B: 140, A: 255}
		zoneBorder.StrokeWidth = 1
		zoneBorder.Resize(fyne.NewSize(zw, zh))
		zoneBorder.Move(fyne.NewPos(zx, zy))
		r.objects = append(r.objects, zoneBorder)

		if zw > 40 && zh > 15 {
			label := canvas.NewText("free", color.NRGBA{R: 160, G: 160, B: 160, A: 255})
			label.TextSize = 8
			label.Move(fyne.NewPos(zx+5, zy+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *layoutCanvasRenderer) Layout(size fyne.Size)        {}
func (r *layoutCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *layoutCanvasRenderer) Destroy()                     {}
func (r *layoutCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *layoutCanvasRenderer) MinSize() fyne.Size {
	result := r.lc.result
	scale := r.scale()
	return fyne.NewSize(float32(result.Width)*scale, float32(result.Height)*scale)
}

// RenderLayoutResult creates a scrollable container of all packed canvases.
func RenderLayoutResult(result *model.LayoutResult) fyne.CanvasObject {
	if result == nil || len(result.Canvases) == 0 {
		return widget.NewLabel("No layout loaded. Open a layout or project file to view it.")
	}

	var items []fyne.CanvasObject

	for i, cr := range result.Canvases {
		header := widget.NewLabel(fmt.Sprintf(
			"Canvas %d (%d × %d) — %d items, %.1f%% efficiency",
			i+1, cr.Width, cr.Height, len(cr.Placements), cr.Efficiency(),
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		layoutCanvas := NewLayoutCanvas(cr, 600, 400)

		items = append(items, header, layoutCanvas, widget.NewSeparator())
	}

	if len(result.UnplacedItems) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d items could not be placed! Increase the maximum canvas size.",
			len(result.UnplacedItems),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	// Per-canvas-size breakdown
	sizeBreakdown := buildCanvasSizeBreakdown(result)
	if len(sizeBreakdown) > 1 {
		items = append(items, widget.NewSeparator())
		breakdownHeader := widget.NewLabel("Canvas Size Breakdown:")
		breakdownHeader.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, breakdownHeader)
		for _, line := range sizeBreakdown {
			items = append(items, widget.NewLabel(line))
		}
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d canvases used, %.1f%% overall efficiency",
		len(result.Canvases), result.TotalEfficiency(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}

// buildCanvasSizeBreakdown generates per-canvas-size statistics lines.
// Groups canvases by their dimensions and reports count, total items, and efficiency.
func buildCanvasSizeBreakdown(result *model.LayoutResult) []string {
	if result == nil || len(result.Canvases) == 0 {
		return nil
	}

	type sizeKey struct {
		w, h uint
	}
	type sizeStats struct {
		count      int
		totalItems int
		usedArea   uint
		totalArea  uint
	}

	// Preserve insertion order with a slice of keys
	var order []sizeKey
	statsMap := make(map[sizeKey]*sizeStats)

	for _, cr := range result.Canvases {
		key := sizeKey{cr.Width, cr.Height}
		if _, exists := statsMap[key]; !exists {
			order = append(order, key)
			statsMap[key] = &sizeStats{}
		}
		s := statsMap[key]
		s.count++
		s.totalItems += len(cr.Placements)
		s.usedArea += cr.UsedArea()
		s.totalArea += cr.TotalArea()
	}

	var lines []string
	for _, key := range order {
		s := statsMap[key]
		eff := 0.0
		if s.totalArea > 0 {
			eff = float64(s.usedArea) / float64(s.totalArea) * 100.0
		}
		lines = append(lines, fmt.Sprintf(
			"  %d x %d: %d canvas(es), %d items, %.1f%% efficiency",
			key.w, key.h, s.count, s.totalItems, eff,
		))
	}
	return lines
}
