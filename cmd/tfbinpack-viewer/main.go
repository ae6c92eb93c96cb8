// tfbinpack-viewer — layout viewer for TFBinPacker
//
// A cross-platform desktop application for browsing saved layout and
// project files produced by the tfbinpack CLI.
//
// Build:
//   go build -o tfbinpack-viewer ./cmd/tfbinpack-viewer
//
// Cross-compile with fyne-cross:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ChrisBlueStone/TFBinPacker/internal/ui"
)

func main() {
	application := app.NewWithID("com.chrisbluestone.tfbinpack")
	application.Settings().SetTheme(ui.NewViewerTheme())

	window := application.NewWindow("TFBinPacker — Layout Viewer")

	viewer := ui.NewViewer(window)
	viewer.SetupMenus()

	// Open a layout file passed on the command line
	if len(os.Args) > 1 {
		if err := viewer.OpenLayoutFile(os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", os.Args[1], err)
		}
	}

	window.SetContent(viewer.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
