package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
	"github.com/disintegration/imaging"
)

// ExportAtlas renders a single canvas result to a PNG image at the given path.
// Placements whose items carry a source sprite path are composited from the
// source file, rotated 90 degrees when packed rotated. Items without a source
// file are rendered as flat color rectangles so the layout is still visible.
func ExportAtlas(path string, canvas model.CanvasResult) error {
	if canvas.Width == 0 || canvas.Height == 0 {
		return fmt.Errorf("canvas has zero dimensions")
	}

	dst := imaging.New(int(canvas.Width), int(canvas.Height), color.NRGBA{0, 0, 0, 0})

	for i, p := range canvas.Placements {
		dstRect := image.Rect(
			int(p.X), int(p.Y),
			int(p.X+p.PlacedWidth()), int(p.Y+p.PlacedHeight()),
		)

		if p.Item.SourcePath == "" {
			col := itemColors[i%len(itemColors)]
			fill := color.NRGBA{R: uint8(col.R), G: uint8(col.G), B: uint8(col.B), A: 255}
			draw.Draw(dst, dstRect, &image.Uniform{fill}, image.Point{}, draw.Src)
			continue
		}

		src, err := imaging.Open(p.Item.SourcePath)
		if err != nil {
			return fmt.Errorf("failed to open sprite %s: %w", p.Item.SourcePath, err)
		}
		if p.Rotated {
			src = imaging.Rotate270(src)
		}

		draw.Draw(dst, dstRect, src, src.Bounds().Min, draw.Src)
	}

	if err := imaging.Save(dst, path); err != nil {
		return fmt.Errorf("failed to save atlas: %w", err)
	}
	return nil
}

// ExportAtlases renders every canvas in the result to a numbered PNG file in
// dir, named baseName_0.png, baseName_1.png and so on. It returns the paths
// of the files written.
func ExportAtlases(dir, baseName string, result model.LayoutResult) ([]string, error) {
	if len(result.Canvases) == 0 {
		return nil, fmt.Errorf("no canvases to export")
	}

	paths := make([]string, 0, len(result.Canvases))
	for i, canvas := range result.Canvases {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", baseName, i))
		if err := ExportAtlas(path, canvas); err != nil {
			return nil, fmt.Errorf("canvas %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
