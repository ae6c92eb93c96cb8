package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

func TestExportImportBackup_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	p := sampleProject()
	p.Result = &model.LayoutResult{
		Canvases: []model.CanvasResult{
			{Index: 0, Width: 256, Height: 256},
		},
	}

	if err := ExportBackup(path, p); err != nil {
		t.Fatalf("ExportBackup returned error: %v", err)
	}

	backup, err := ImportBackup(path)
	if err != nil {
		t.Fatalf("ImportBackup returned error: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty creation timestamp")
	}
	if backup.Project.Name != p.Name {
		t.Errorf("project name mismatch: got %q, want %q", backup.Project.Name, p.Name)
	}
	if len(backup.Project.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(backup.Project.Items))
	}
	if backup.Project.Result == nil || len(backup.Project.Result.Canvases) != 1 {
		t.Error("expected layout result to survive the round trip")
	}
}

func TestImportBackup_MissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")

	if err := os.WriteFile(path, []byte(`{"project":{"name":"x"}}`), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := ImportBackup(path); err == nil {
		t.Fatal("expected error for backup without version, got nil")
	}
}

func TestImportBackup_MissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := ImportBackup(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing backup file, got nil")
	}
}

func TestImportBackup_NilItemsNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	content := `{"version":"1.0.0","created_at":"2026-01-01T00:00:00Z","project":{"name":"x","settings":{}}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	backup, err := ImportBackup(path)
	if err != nil {
		t.Fatalf("ImportBackup returned error: %v", err)
	}
	if backup.Project.Items == nil {
		t.Error("expected Items to be normalized to an empty slice")
	}
}
