package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

func fixedSettings(w, h uint) model.LayoutSettings {
	return model.LayoutSettings{
		Algorithm:     model.AlgorithmBestFit,
		InitialWidth:  w,
		InitialHeight: h,
		MaxWidth:      w,
		MaxHeight:     h,
	}
}

func TestLayoutSingleItem(t *testing.T) {
	settings := model.LayoutSettings{
		Algorithm:     model.AlgorithmBestFit,
		InitialWidth:  64,
		InitialHeight: 64,
		MaxWidth:      256,
		MaxHeight:     256,
	}
	result := New(settings).Layout([]model.Item{
		{ID: "a", Label: "a", Width: 32, Height: 32, Quantity: 1},
	})

	require.Len(t, result.Canvases, 1)
	require.Empty(t, result.UnplacedItems)

	c := result.Canvases[0]
	assert.Equal(t, uint(64), c.Width)
	assert.Equal(t, uint(64), c.Height)
	require.Len(t, c.Placements, 1)
	assert.Equal(t, uint(0), c.Placements[0].X)
	assert.Equal(t, uint(0), c.Placements[0].Y)
	assert.False(t, c.Placements[0].Rotated)
	assert.NotEmpty(t, c.FreeRegions)
	assert.InDelta(t, 25.0, c.Efficiency(), 0.001)
}

func TestLayoutExpandsQuantity(t *testing.T) {
	result := New(fixedSettings(100, 100)).Layout([]model.Item{
		{ID: "a", Width: 10, Height: 10, Quantity: 4},
	})

	require.Len(t, result.Canvases, 1)
	assert.Len(t, result.Canvases[0].Placements, 4)
	assert.Empty(t, result.UnplacedItems)
}

func TestLayoutGrowsCanvas(t *testing.T) {
	settings := model.LayoutSettings{
		InitialWidth:  32,
		InitialHeight: 32,
		MaxWidth:      128,
		MaxHeight:     128,
		PowerOfTwo:    true,
	}
	result := New(settings).Layout([]model.Item{
		{ID: "wide", Width: 100, Height: 50, Quantity: 1},
	})

	require.Len(t, result.Canvases, 1)
	require.Empty(t, result.UnplacedItems)

	c := result.Canvases[0]
	assert.Equal(t, uint(128), c.Width)
	assert.Equal(t, uint(64), c.Height)
	require.Len(t, c.Placements, 1)
	assert.Equal(t, uint(0), c.Placements[0].X)
	assert.Equal(t, uint(0), c.Placements[0].Y)
	assert.False(t, c.Placements[0].Rotated)
}

func TestLayoutSpillsToSecondCanvas(t *testing.T) {
	result := New(fixedSettings(10, 10)).Layout([]model.Item{
		{ID: "full", Width: 10, Height: 10, Quantity: 2},
	})

	require.Len(t, result.Canvases, 2)
	assert.Len(t, result.Canvases[0].Placements, 1)
	assert.Len(t, result.Canvases[1].Placements, 1)
	assert.Equal(t, 0, result.Canvases[0].Index)
	assert.Equal(t, 1, result.Canvases[1].Index)
	assert.Empty(t, result.UnplacedItems)
}

func TestLayoutUnplaceableItem(t *testing.T) {
	result := New(fixedSettings(64, 64)).Layout([]model.Item{
		{ID: "huge", Width: 100, Height: 100, Quantity: 1},
		{ID: "small", Width: 10, Height: 10, Quantity: 1},
	})

	require.Len(t, result.Canvases, 1)
	assert.Len(t, result.Canvases[0].Placements, 1)
	require.Len(t, result.UnplacedItems, 1)
	assert.Equal(t, "huge", result.UnplacedItems[0].ID)
}

func TestLayoutZeroSizeItemUnplaced(t *testing.T) {
	result := New(fixedSettings(64, 64)).Layout([]model.Item{
		{ID: "flat", Width: 0, Height: 10, Quantity: 1},
	})

	assert.Empty(t, result.Canvases)
	assert.Len(t, result.UnplacedItems, 1)
}

func TestLayoutDetectsRotation(t *testing.T) {
	result := New(fixedSettings(10, 5)).Layout([]model.Item{
		{ID: "tall", Width: 5, Height: 10, Quantity: 1},
	})

	require.Len(t, result.Canvases, 1)
	require.Len(t, result.Canvases[0].Placements, 1)

	p := result.Canvases[0].Placements[0]
	assert.True(t, p.Rotated)
	assert.Equal(t, uint(10), p.PlacedWidth())
	assert.Equal(t, uint(5), p.PlacedHeight())
}

func TestLayoutPadding(t *testing.T) {
	settings := fixedSettings(12, 12)
	settings.Padding = 2
	result := New(settings).Layout([]model.Item{
		{ID: "a", Width: 10, Height: 10, Quantity: 1},
	})

	require.Len(t, result.Canvases, 1)
	c := result.Canvases[0]
	require.Len(t, c.Placements, 1)
	assert.Equal(t, uint(0), c.Placements[0].X)
	assert.Equal(t, uint(0), c.Placements[0].Y)
	// The padded request consumed the whole canvas.
	assert.Empty(t, c.FreeRegions)
}

func TestLayoutEmptyInput(t *testing.T) {
	result := New(fixedSettings(64, 64)).Layout(nil)
	assert.Empty(t, result.Canvases)
	assert.Empty(t, result.UnplacedItems)
}

func TestLayoutPlacementsNeverOverlap(t *testing.T) {
	result := New(fixedSettings(40, 40)).Layout([]model.Item{
		{ID: "a", Width: 13, Height: 7, Quantity: 5},
		{ID: "b", Width: 9, Height: 11, Quantity: 4},
		{ID: "c", Width: 5, Height: 5, Quantity: 6},
	})

	for _, c := range result.Canvases {
		for i, p := range c.Placements {
			assert.LessOrEqual(t, p.X+p.PlacedWidth(), c.Width)
			assert.LessOrEqual(t, p.Y+p.PlacedHeight(), c.Height)
			for j, q := range c.Placements[i+1:] {
				overlap := p.X < q.X+q.PlacedWidth() && q.X < p.X+p.PlacedWidth() &&
					p.Y < q.Y+q.PlacedHeight() && q.Y < p.Y+p.PlacedHeight()
				assert.Falsef(t, overlap, "placements %d and %d overlap", i, i+1+j)
			}
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want uint }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{64, 64},
		{65, 128},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPowerOfTwo(tt.in))
	}
}
