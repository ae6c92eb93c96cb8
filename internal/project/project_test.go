package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

func sampleProject() model.Project {
	p := model.NewProject()
	p.Name = "dungeon-sprites"
	p.Items = []model.Item{
		{ID: "i1", Label: "player_idle", Width: 64, Height: 48, Quantity: 2},
		{ID: "i2", Label: "tileset", Width: 96, Height: 64, Quantity: 1},
	}
	p.Settings.Padding = 2
	return p
}

func TestSaveLoadProject_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "proj.json")

	want := sampleProject()
	if err := SaveProject(path, want); err != nil {
		t.Fatalf("SaveProject returned error: %v", err)
	}

	got, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}

	if got.Name != want.Name {
		t.Errorf("name mismatch: got %q, want %q", got.Name, want.Name)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Label != "player_idle" || got.Items[0].Width != 64 {
		t.Errorf("first item mismatch: %+v", got.Items[0])
	}
	if got.Settings.Padding != 2 {
		t.Errorf("expected padding 2, got %d", got.Settings.Padding)
	}
}

func TestLoadProject_MissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if p.Name != "Untitled" {
		t.Errorf("expected default project name, got %q", p.Name)
	}
	if p.Items == nil {
		t.Error("expected non-nil Items slice")
	}
	if p.Settings.Algorithm != model.AlgorithmBestFit {
		t.Errorf("expected default algorithm, got %q", p.Settings.Algorithm)
	}
}

func TestLoadProject_NilItemsNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proj.json")

	if err := os.WriteFile(path, []byte(`{"name":"x","settings":{}}`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}
	if p.Items == nil {
		t.Error("expected Items to be normalized to an empty slice")
	}
}

func TestLoadProject_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveLoadLayout_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.json")

	want := model.LayoutResult{
		Canvases: []model.CanvasResult{
			{
				Index:  0,
				Width:  128,
				Height: 64,
				Placements: []model.Placement{
					{
						Item: model.Item{ID: "i1", Label: "icon", Width: 32, Height: 16, Quantity: 1},
						X:    0, Y: 0, Rotated: true,
					},
				},
			},
		},
		UnplacedItems: []model.Item{
			{ID: "u1", Label: "huge", Width: 9000, Height: 9000, Quantity: 1},
		},
	}

	if err := SaveLayout(path, want); err != nil {
		t.Fatalf("SaveLayout returned error: %v", err)
	}

	got, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout returned error: %v", err)
	}

	if len(got.Canvases) != 1 {
		t.Fatalf("expected 1 canvas, got %d", len(got.Canvases))
	}
	if got.Canvases[0].Width != 128 || got.Canvases[0].Height != 64 {
		t.Errorf("canvas dimensions mismatch: %dx%d", got.Canvases[0].Width, got.Canvases[0].Height)
	}
	if !got.Canvases[0].Placements[0].Rotated {
		t.Error("expected rotated placement to survive the round trip")
	}
	if len(got.UnplacedItems) != 1 {
		t.Errorf("expected 1 unplaced item, got %d", len(got.UnplacedItems))
	}
}

func TestLoadLayout_MissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLayout(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing layout file, got nil")
	}
}

func TestDefaultProjectsDir_Created(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := DefaultProjectsDir()
	if err != nil {
		t.Fatalf("DefaultProjectsDir returned error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("projects dir was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("projects path is not a directory")
	}
}
