package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// imageExtensions lists the file types accepted by ImportSpriteDir.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ImportSpriteDir imports every image in a directory as an item, in natural
// filename order (img2 before img10). Item sizes come from the decoded
// images; SourcePath is kept so the atlas exporter can render the pixels
// later.
func ImportSpriteDir(dir string) ImportResult {
	result := ImportResult{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read directory: %v", err))
		return result
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	if len(paths) == 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("No image files found in %s", dir))
		return result
	}

	sort.Sort(natural.StringSlice(paths))

	for _, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}

		bounds := img.Bounds()
		if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped empty image %s", filepath.Base(path)))
			continue
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		item := model.NewItem(name, uint(bounds.Dx()), uint(bounds.Dy()), 1)
		item.SourcePath = path
		result.Items = append(result.Items, item)
	}

	return result
}
