package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
)

// maxRecentProjects limits how many entries the recent list keeps.
const maxRecentProjects = 10

// Config holds application-level preferences that persist between runs.
type Config struct {
	RecentProjects []string             `json:"recent_projects"`
	Settings       model.LayoutSettings `json:"settings"`
}

// DefaultConfig returns a Config with default layout settings and an
// empty recent projects list.
func DefaultConfig() Config {
	return Config{
		RecentProjects: []string{},
		Settings:       model.DefaultSettings(),
	}
}

// AddRecentProject records a project path at the front of the recent list,
// removing any earlier occurrence and trimming the list to its cap.
func (c *Config) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// RecordRecentProject loads the config at configPath, records projectPath
// at the front of its recent list, and writes the config back.
func RecordRecentProject(configPath, projectPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	config.AddRecentProject(projectPath)
	return SaveConfig(configPath, config)
}

// SaveConfig persists a Config to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveConfig(path string, config Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads a Config from the given path.
// If the file does not exist, it returns DefaultConfig with no error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
