package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

func TestBuildDefaultScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}

	assert.Equal(t, "Current Settings", names[0])
	assert.Contains(t, names, "Genetic Algorithm")
	assert.Contains(t, names, "Free Dimensions")
	// Defaults have no padding, so no padding scenario appears.
	assert.NotContains(t, names, "No Padding")
}

func TestBuildDefaultScenariosWithPadding(t *testing.T) {
	base := model.DefaultSettings()
	base.Padding = 2
	base.Algorithm = model.AlgorithmGenetic

	scenarios := BuildDefaultScenarios(base)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Contains(t, names, "No Padding")
	assert.Contains(t, names, "Best-Fit Algorithm")
	assert.NotContains(t, names, "Genetic Algorithm")
}

func TestCompareScenarios(t *testing.T) {
	items := []model.Item{
		{ID: "a", Width: 10, Height: 10, Quantity: 3},
		{ID: "b", Width: 5, Height: 8, Quantity: 2},
	}
	scenarios := []ComparisonScenario{
		{Name: "small", Settings: fixedSettings(20, 20)},
		{Name: "large", Settings: fixedSettings(40, 40)},
	}

	results := CompareScenarios(scenarios, items)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, len(r.Result.Canvases), r.CanvasesUsed)
		assert.Equal(t, len(r.Result.UnplacedItems), r.UnplacedCount)

		total := 0
		for _, c := range r.Result.Canvases {
			total += len(c.Placements)
		}
		assert.Equal(t, total, r.TotalPlacements)
		assert.GreaterOrEqual(t, r.WastePercent, 0.0)
		assert.LessOrEqual(t, r.WastePercent, 100.0)
	}

	// Everything fits on one large canvas; the small canvas needs more.
	assert.Equal(t, 1, results[1].CanvasesUsed)
	assert.GreaterOrEqual(t, results[0].CanvasesUsed, results[1].CanvasesUsed)
}
