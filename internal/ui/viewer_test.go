package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
	"github.com/ChrisBlueStone/TFBinPacker/internal/project"
)

func TestNewViewerLoadsRecentProjects(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	test.NewApp()

	cfg := project.DefaultConfig()
	cfg.AddRecentProject("/projects/a.json")
	cfg.AddRecentProject("/projects/b.json")
	if err := project.SaveConfig(project.DefaultConfigPath(), cfg); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	v := NewViewer(test.NewWindow(nil))
	if len(v.config.RecentProjects) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(v.config.RecentProjects))
	}
	if v.config.RecentProjects[0] != "/projects/b.json" {
		t.Errorf("expected newest entry first, got %q", v.config.RecentProjects[0])
	}
}

func TestRecentMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	test.NewApp()

	v := NewViewer(test.NewWindow(nil))

	item := v.recentMenu()
	if item.ChildMenu == nil || len(item.ChildMenu.Items) != 1 || !item.ChildMenu.Items[0].Disabled {
		t.Fatal("expected a single disabled placeholder entry for an empty recent list")
	}

	v.config.AddRecentProject("/projects/dungeon-sprites.json")
	item = v.recentMenu()
	if len(item.ChildMenu.Items) != 1 {
		t.Fatalf("expected 1 submenu entry, got %d", len(item.ChildMenu.Items))
	}
	if item.ChildMenu.Items[0].Label != "dungeon-sprites.json" {
		t.Errorf("unexpected submenu label %q", item.ChildMenu.Items[0].Label)
	}
}

func TestRecordRecentPersistsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	test.NewApp()

	v := NewViewer(test.NewWindow(nil))
	v.recordRecent("/projects/game.json")

	cfg, err := project.LoadConfig(project.DefaultConfigPath())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.RecentProjects) != 1 || cfg.RecentProjects[0] != "/projects/game.json" {
		t.Errorf("recent list not persisted: %v", cfg.RecentProjects)
	}
}

func TestRestoreProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	test.NewApp()

	v := NewViewer(test.NewWindow(nil))
	p := model.NewProject()
	p.Name = "restored"
	p.Items = append(p.Items, model.NewItem("tile", 32, 32, 4))

	path, err := v.restoreProject(p)
	if err != nil {
		t.Fatalf("restoreProject returned error: %v", err)
	}
	if filepath.Base(path) != "restored.json" {
		t.Errorf("unexpected restore path %q", path)
	}

	loaded, err := project.LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}
	if loaded.Name != "restored" || len(loaded.Items) != 1 {
		t.Errorf("restored project mismatch: %+v", loaded)
	}
}
