// Package ui provides the TFBinPacker layout viewer UI components.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/ChrisBlueStone/TFBinPacker/internal/export"
	"github.com/ChrisBlueStone/TFBinPacker/internal/model"
	"github.com/ChrisBlueStone/TFBinPacker/internal/project"
	"github.com/ChrisBlueStone/TFBinPacker/internal/ui/widgets"
)

// Viewer is a read-only browser for saved layouts and projects.
type Viewer struct {
	window  fyne.Window
	project model.Project
	config  project.Config
	content *fyne.Container
}

func NewViewer(window fyne.Window) *Viewer {
	config, err := project.LoadConfig(project.DefaultConfigPath())
	if err != nil {
		config = project.DefaultConfig()
	}
	return &Viewer{
		window:  window,
		project: model.NewProject(),
		config:  config,
		content: container.NewStack(),
	}
}

// SetupMenus creates the native menu bar for the viewer.
func (v *Viewer) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Layout...", func() {
			v.openLayout()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			v.openProject()
		}),
		v.recentMenu(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			v.exportPDF()
		}),
		fyne.NewMenuItem("Export Labels...", func() {
			v.exportLabels()
		}),
		fyne.NewMenuItem("Export Atlases...", func() {
			v.exportAtlases()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Backup...", func() {
			v.exportBackup()
		}),
		fyne.NewMenuItem("Import Backup...", func() {
			v.importBackup()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			v.window.Close()
		}),
	)

	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// recentMenu builds the Open Recent submenu from the persisted config.
func (v *Viewer) recentMenu() *fyne.MenuItem {
	var entries []*fyne.MenuItem
	for _, path := range v.config.RecentProjects {
		p := path
		entries = append(entries, fyne.NewMenuItem(filepath.Base(p), func() {
			v.openProjectPath(p)
		}))
	}
	if len(entries) == 0 {
		empty := fyne.NewMenuItem("(empty)", nil)
		empty.Disabled = true
		entries = append(entries, empty)
	}

	item := fyne.NewMenuItem("Open Recent", nil)
	item.ChildMenu = fyne.NewMenu("", entries...)
	return item
}

// Build returns the viewer's root canvas object.
func (v *Viewer) Build() fyne.CanvasObject {
	v.refresh()
	return v.content
}

// OpenLayoutFile loads a layout file directly, for opening from the command line.
func (v *Viewer) OpenLayoutFile(path string) error {
	result, err := project.LoadLayout(path)
	if err != nil {
		return err
	}
	v.project = model.NewProject()
	v.project.Result = &result
	v.refresh()
	return nil
}

func (v *Viewer) refresh() {
	v.content.Objects = []fyne.CanvasObject{
		widgets.RenderLayoutResult(v.project.Result),
	}
	v.content.Refresh()
}

func (v *Viewer) openLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		if openErr := v.OpenLayoutFile(reader.URI().Path()); openErr != nil {
			dialog.ShowError(openErr, v.window)
		}
	}, v.window)
	d.Show()
}

func (v *Viewer) openProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		v.openProjectPath(reader.URI().Path())
	}, v.window)
	d.Show()
}

func (v *Viewer) openProjectPath(path string) {
	proj, err := project.LoadProject(path)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	v.project = proj
	v.recordRecent(path)
	v.refresh()
}

// recordRecent updates the persisted recent list and rebuilds the menus so
// the Open Recent submenu reflects it.
func (v *Viewer) recordRecent(path string) {
	v.config.AddRecentProject(path)
	if err := project.SaveConfig(project.DefaultConfigPath(), v.config); err != nil {
		fmt.Fprintf(os.Stderr, "could not save recent projects: %v\n", err)
	}
	v.SetupMenus()
}

// hasResult reports whether a layout is loaded, showing a hint when not.
func (v *Viewer) hasResult() bool {
	if v.project.Result == nil || len(v.project.Result.Canvases) == 0 {
		dialog.ShowInformation("No layout", "Open a layout or project file first.", v.window)
		return false
	}
	return true
}

func (v *Viewer) exportPDF() {
	if !v.hasResult() {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if exportErr := export.ExportPDF(path, *v.project.Result, v.project.Settings); exportErr != nil {
			dialog.ShowError(exportErr, v.window)
			return
		}
		dialog.ShowInformation("Export complete", fmt.Sprintf("PDF written to %s", path), v.window)
	}, v.window)
	d.SetFileName("layout.pdf")
	d.Show()
}

func (v *Viewer) exportLabels() {
	if !v.hasResult() {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if exportErr := export.ExportLabels(path, *v.project.Result); exportErr != nil {
			dialog.ShowError(exportErr, v.window)
			return
		}
		dialog.ShowInformation("Export complete", fmt.Sprintf("Labels written to %s", path), v.window)
	}, v.window)
	d.SetFileName("labels.pdf")
	d.Show()
}

func (v *Viewer) exportBackup() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if exportErr := project.ExportBackup(path, v.project); exportErr != nil {
			dialog.ShowError(exportErr, v.window)
			return
		}
		dialog.ShowInformation("Export complete", fmt.Sprintf("Backup written to %s", path), v.window)
	}, v.window)
	d.SetFileName(v.project.Name + ".backup.json")
	d.Show()
}

func (v *Viewer) importBackup() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		backup, loadErr := project.ImportBackup(reader.URI().Path())
		if loadErr != nil {
			dialog.ShowError(loadErr, v.window)
			return
		}
		v.project = backup.Project
		if path, restoreErr := v.restoreProject(backup.Project); restoreErr == nil {
			v.recordRecent(path)
		} else {
			fmt.Fprintf(os.Stderr, "could not restore project file: %v\n", restoreErr)
		}
		v.refresh()
	}, v.window)
	d.Show()
}

// restoreProject saves an imported project into the projects directory so it
// appears in the recent list on the next run.
func (v *Viewer) restoreProject(p model.Project) (string, error) {
	dir, err := project.DefaultProjectsDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, p.Name+".json")
	if err := project.SaveProject(path, p); err != nil {
		return "", err
	}
	return path, nil
}

func (v *Viewer) exportAtlases() {
	if !v.hasResult() {
		return
	}
	d := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}
		paths, exportErr := export.ExportAtlases(list.Path(), "atlas", *v.project.Result)
		if exportErr != nil {
			dialog.ShowError(exportErr, v.window)
			return
		}
		dialog.ShowInformation("Export complete",
			fmt.Sprintf("%d atlas image(s) written to %s", len(paths), list.Path()), v.window)
	}, v.window)
	d.Show()
}
