package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// BackupData is the top-level structure for sharing a complete project,
// including its computed layout, as a single versioned file.
type BackupData struct {
	Version   string        `json:"version"`
	CreatedAt string        `json:"created_at"`
	Project   model.Project `json:"project"`
}

// ExportBackup writes a project bundle to a single JSON file at the
// specified path.
func ExportBackup(exportPath string, p model.Project) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Project:   p,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportBackup reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported project.
func ImportBackup(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure Items is never nil
	if backup.Project.Items == nil {
		backup.Project.Items = []model.Item{}
	}
	return backup, nil
}
