package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// ExportOffcutsCSV writes reusable free regions as a cut-list CSV in the
// same column format the importer accepts, so leftover space from one run
// can seed the item list of a later one.
func ExportOffcutsCSV(path string, offcuts []model.Offcut) error {
	if len(offcuts) == 0 {
		return fmt.Errorf("no offcuts to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create offcut file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"label", "width", "height", "quantity"}); err != nil {
		return err
	}
	for i, o := range offcuts {
		item := o.ToItem(fmt.Sprintf("Offcut %d", i+1))
		record := []string{
			item.Label,
			strconv.FormatUint(uint64(item.Width), 10),
			strconv.FormatUint(uint64(item.Height), 10),
			strconv.Itoa(item.Quantity),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
