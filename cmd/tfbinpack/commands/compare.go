package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisBlueStone/TFBinPacker/internal/engine"
)

var CompareCmd = &cobra.Command{
	Use:   "compare <input>",
	Short: "Compare layout results across alternative settings",
	Long: `Import items and run the layouter under several what-if scenarios:
the current settings, the alternate algorithm, no padding, free canvas
dimensions and a fixed maximum-size canvas. Prints a side-by-side table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := layoutSettings(cmd)

		imported, err := importInput(args[0])
		if err != nil {
			return err
		}
		reportImport(imported)
		if len(imported.Items) == 0 {
			return fmt.Errorf("no items imported from %s", args[0])
		}

		scenarios := engine.BuildDefaultScenarios(settings)
		results := engine.CompareScenarios(scenarios, imported.Items)

		fmt.Printf("\n%-28s %10s %8s %8s %10s\n", "Scenario", "Canvases", "Items", "Waste", "Unplaced")
		for _, r := range results {
			fmt.Printf("%-28s %10d %8d %7.1f%% %10d\n",
				r.Scenario.Name, r.CanvasesUsed, r.TotalPlacements, r.WastePercent, r.UnplacedCount)
		}
		return nil
	},
}
