package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

func buildLabelsTestResult() model.LayoutResult {
	return model.LayoutResult{
		Canvases: []model.CanvasResult{
			{
				Index:  0,
				Width:  256,
				Height: 128,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i1", Label: "player_idle", Width: 64, Height: 48, Quantity: 1},
						X:    0, Y: 0, Rotated: false,
					},
					{
						Item: model.Item{ID: "i2", Label: "tileset", Width: 96, Height: 64, Quantity: 1},
						X:    64, Y: 0, Rotated: true,
					},
				},
			},
			{
				Index:  1,
				Width:  128,
				Height: 64,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i3", Label: "background", Width: 100, Height: 50, Quantity: 1},
						X:    0, Y: 0, Rotated: false,
					},
				},
			},
		},
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	result := buildLabelsTestResult()
	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	result := model.LayoutResult{Canvases: nil}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_placements.pdf")

	result := model.LayoutResult{
		Canvases: []model.CanvasResult{
			{Index: 0, Width: 256, Height: 256},
		},
	}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildLabelsTestResult()
	labels := CollectLabelInfos(result)

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	// Check first label
	if labels[0].ItemLabel != "player_idle" {
		t.Errorf("expected first label to be 'player_idle', got %q", labels[0].ItemLabel)
	}
	if labels[0].Width != 64 || labels[0].Height != 48 {
		t.Errorf("wrong dimensions: got %dx%d, want 64x48", labels[0].Width, labels[0].Height)
	}
	if labels[0].CanvasIndex != 1 {
		t.Errorf("expected canvas index 1, got %d", labels[0].CanvasIndex)
	}
	if labels[0].Rotated {
		t.Error("expected first label not rotated")
	}

	// Check second label (rotated)
	if !labels[1].Rotated {
		t.Error("expected second label to be rotated")
	}

	// Check third label (second canvas)
	if labels[2].CanvasIndex != 2 {
		t.Errorf("expected canvas index 2 for third label, got %d", labels[2].CanvasIndex)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		ItemLabel:   "enemy_walk",
		Width:       300,
		Height:      200,
		CanvasIndex: 1,
		Rotated:     true,
		X:           50,
		Y:           100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.ItemLabel != info.ItemLabel {
		t.Errorf("label mismatch: got %q, want %q", decoded.ItemLabel, info.ItemLabel)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %dx%d, want %dx%d",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
	if decoded.Rotated != info.Rotated {
		t.Error("rotated flag mismatch")
	}
}

func TestExportLabels_ManyItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// Create 35 placements to test multi-page label generation
	placements := make([]model.Placement, 35)
	for i := range placements {
		placements[i] = model.Placement{
			Item: model.Item{
				ID:       fmt.Sprintf("i%d", i),
				Label:    fmt.Sprintf("frame_%02d", i),
				Width:    uint(32 + i*2),
				Height:   uint(16 + i),
				Quantity: 1,
			},
			X: uint(i * 40), Y: 10,
		}
	}

	result := model.LayoutResult{
		Canvases: []model.CanvasResult{
			{
				Index:      0,
				Width:      2048,
				Height:     1024,
				Placements: placements,
			},
		},
	}

	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
