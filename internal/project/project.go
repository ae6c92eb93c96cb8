// Package project handles persistence of packing projects, layout results
// and application configuration as JSON files under ~/.tfbinpack/.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.tfbinpack/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tfbinpack")
}

// DefaultProjectsDir returns the default directory for saved projects,
// creating it if necessary.
func DefaultProjectsDir() (string, error) {
	dir := filepath.Join(DefaultConfigDir(), "projects")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveProject persists a project to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
// If the file does not exist, it returns a fresh project with no error.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewProject(), nil
		}
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, err
	}
	// Ensure Items is never nil
	if p.Items == nil {
		p.Items = []model.Item{}
	}
	return p, nil
}

// SaveLayout writes a standalone layout result to a JSON file.
func SaveLayout(path string, result model.LayoutResult) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a standalone layout result from a JSON file. Unlike
// projects there is no sensible default, so a missing file is an error.
func LoadLayout(path string) (model.LayoutResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.LayoutResult{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var result model.LayoutResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.LayoutResult{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	return result, nil
}
