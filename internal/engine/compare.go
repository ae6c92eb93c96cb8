package engine

import (
	"fmt"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.LayoutSettings
}

// ComparisonResult holds the layout result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Result          model.LayoutResult
	CanvasesUsed    int
	TotalPlacements int
	WastePercent    float64
	UnplacedCount   int
}

// CompareScenarios runs the layouter for each scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different layout parameters.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result := New(scenario.Settings).Layout(items)

		totalPlacements := 0
		for _, c := range result.Canvases {
			totalPlacements += len(c.Placements)
		}

		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Result:          result,
			CanvasesUsed:    len(result.Canvases),
			TotalPlacements: totalPlacements,
			WastePercent:    100.0 - result.TotalEfficiency(),
			UnplacedCount:   len(result.UnplacedItems),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.LayoutSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: the other algorithm
	altAlgo := baseSettings
	if baseSettings.Algorithm == model.AlgorithmGenetic {
		altAlgo.Algorithm = model.AlgorithmBestFit
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Best-Fit Algorithm",
			Settings: altAlgo,
		})
	} else {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Genetic Algorithm",
			Settings: altAlgo,
		})
	}

	// Scenario: no padding between items
	if baseSettings.Padding > 0 {
		noPad := baseSettings
		noPad.Padding = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Padding",
			Settings: noPad,
		})
	}

	// Scenario: free canvas dimensions
	if baseSettings.PowerOfTwo {
		free := baseSettings
		free.PowerOfTwo = false
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Free Dimensions",
			Settings: free,
		})
	}

	// Scenario: start at the maximum size instead of growing
	if baseSettings.InitialWidth < baseSettings.MaxWidth || baseSettings.InitialHeight < baseSettings.MaxHeight {
		maxStart := baseSettings
		maxStart.InitialWidth = baseSettings.MaxWidth
		maxStart.InitialHeight = baseSettings.MaxHeight
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Fixed %dx%d Canvas", maxStart.InitialWidth, maxStart.InitialHeight),
			Settings: maxStart,
		})
	}

	return scenarios
}
