package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisBlueStone/TFBinPacker/internal/engine"
	"github.com/ChrisBlueStone/TFBinPacker/internal/export"
	"github.com/ChrisBlueStone/TFBinPacker/internal/importer"
	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
	"github.com/ChrisBlueStone/TFBinPacker/internal/project"
)

var (
	packOut      string
	packPDF      string
	packLabels   string
	packAtlasDir string
	packProject  string
	packOffcuts  string
)

var PackCmd = &cobra.Command{
	Use:   "pack <input>",
	Short: "Pack items from a file or sprite directory onto canvases",
	Long: `Import items and compute a packed layout.

The input may be a CSV or Excel cut list, a DXF drawing, or a directory
of sprite images. The layout is written as JSON; PDF, label and atlas
outputs are optional.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		settings := layoutSettings(cmd)

		imported, err := importInput(input)
		if err != nil {
			return err
		}
		reportImport(imported)
		if len(imported.Items) == 0 {
			return fmt.Errorf("no items imported from %s", input)
		}

		result := engine.New(settings).Layout(imported.Items)
		reportLayout(result, settings)

		if err := project.SaveLayout(packOut, result); err != nil {
			return fmt.Errorf("failed to write layout: %w", err)
		}
		fmt.Printf("Layout written to %s\n", packOut)

		if packProject != "" {
			p := model.NewProject()
			p.Name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			p.Items = imported.Items
			p.Settings = settings
			p.Result = &result
			if err := project.SaveProject(packProject, p); err != nil {
				return fmt.Errorf("failed to write project: %w", err)
			}
			fmt.Printf("Project written to %s\n", packProject)

			if abs, absErr := filepath.Abs(packProject); absErr == nil {
				if err := project.RecordRecentProject(project.DefaultConfigPath(), abs); err != nil {
					fmt.Fprintf(os.Stderr, "  warning: could not update recent projects: %v\n", err)
				}
			}
		}

		if packOffcuts != "" {
			offcuts := model.DetectAllOffcuts(result, settings)
			if len(offcuts) == 0 {
				fmt.Println("No reusable offcuts to export")
			} else {
				if err := export.ExportOffcutsCSV(packOffcuts, offcuts); err != nil {
					return fmt.Errorf("failed to write offcuts: %w", err)
				}
				fmt.Printf("Offcut cut list written to %s\n", packOffcuts)
			}
		}

		if packPDF != "" {
			if err := export.ExportPDF(packPDF, result, settings); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}
			fmt.Printf("PDF written to %s\n", packPDF)
		}

		if packLabels != "" {
			if err := export.ExportLabels(packLabels, result); err != nil {
				return fmt.Errorf("failed to write labels: %w", err)
			}
			fmt.Printf("Labels written to %s\n", packLabels)
		}

		if packAtlasDir != "" {
			paths, err := export.ExportAtlases(packAtlasDir, "atlas", result)
			if err != nil {
				return fmt.Errorf("failed to write atlases: %w", err)
			}
			fmt.Printf("%d atlas image(s) written to %s\n", len(paths), packAtlasDir)
		}

		return nil
	},
}

func init() {
	PackCmd.Flags().StringVarP(&packOut, "out", "o", "layout.json", "output path for the layout JSON")
	PackCmd.Flags().StringVar(&packPDF, "pdf", "", "also write a PDF report to this path")
	PackCmd.Flags().StringVar(&packLabels, "labels", "", "also write a QR label sheet to this path")
	PackCmd.Flags().StringVar(&packAtlasDir, "atlas-dir", "", "also write PNG atlas images into this directory")
	PackCmd.Flags().StringVar(&packProject, "save-project", "", "also write a full project file to this path")
	PackCmd.Flags().StringVar(&packOffcuts, "offcuts", "", "also write reusable free regions as a cut-list CSV to this path")
}

// importInput dispatches to the importer matching the input path.
func importInput(path string) (importer.ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return importer.ImportResult{}, fmt.Errorf("cannot read input %s: %w", path, err)
	}
	if info.IsDir() {
		return importer.ImportSpriteDir(path), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return importer.ImportCSV(path), nil
	case ".xlsx", ".xls":
		return importer.ImportExcel(path), nil
	case ".dxf":
		return importer.ImportDXF(path), nil
	default:
		return importer.ImportResult{}, fmt.Errorf("unsupported input type: %s", path)
	}
}

// reportImport prints import warnings and errors to the user.
func reportImport(result importer.ImportResult) {
	fmt.Printf("Imported %d item(s)\n", len(result.Items))
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "  error: %s\n", e)
	}
}

// reportLayout prints a per-canvas summary of the computed layout.
func reportLayout(result model.LayoutResult, settings model.LayoutSettings) {
	for i, c := range result.Canvases {
		fmt.Printf("Canvas %d: %dx%d px, %d item(s), %.1f%% efficiency\n",
			i+1, c.Width, c.Height, len(c.Placements), c.Efficiency())
	}

	offcuts := model.DetectAllOffcuts(result, settings)
	if len(offcuts) > 0 {
		fmt.Printf("Reusable free regions: %d (%d px² total)\n",
			len(offcuts), model.TotalOffcutArea(offcuts))
	}

	if len(result.UnplacedItems) > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %d item(s) could not be placed:\n", len(result.UnplacedItems))
		for _, item := range result.UnplacedItems {
			fmt.Fprintf(os.Stderr, "  - %s (%dx%d)\n", item.Label, item.Width, item.Height)
		}
	}

	fmt.Printf("Total: %d canvas(es), %.1f%% overall efficiency\n",
		len(result.Canvases), result.TotalEfficiency())
}
