// Package mainwindow provides the previewer window.
package mainwindow

import (
	"fmt"
	"os"
	"path/filepath"

	"cartesian-plane/internal/app"
	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/profile"
	"cartesian-plane/internal/version"
	"cartesian-plane/pkg/geometry"
	"cartesian-plane/ui/canvas"
	"cartesian-plane/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
)

const (
	appTitle      = "Cartesian Plane"
	profileExt    = ".profile"
	defaultHeight = 500
)

// MainWindow shows one profile and follows changes to its file.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.PlaneCanvas
	statusBar *widget.Label
	coords    *widget.Label
	watcher   *app.ProfileWatcher
}

// New creates the previewer window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.SetOnClosed(mw.onClosed)

	return mw
}

func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewPlaneCanvas(mw.state.Config())
	mw.statusBar = widget.NewLabel("Ready")
	mw.coords = widget.NewLabel("")
	mw.canvas.OnHover(mw.onHover)

	status := container.NewBorder(nil, nil, nil, mw.coords, mw.statusBar)
	content := container.NewBorder(
		nil,    // top
		status, // bottom
		nil,    // left
		nil,    // right
		mw.canvas,
	)
	mw.SetContent(content)

	width := mw.prefs.Float(prefs.KeyWindowWidth, mw.state.Profile().MainWindow.Width)
	height := mw.prefs.Float(prefs.KeyWindowHeight, defaultHeight)
	mw.Resize(fyne.NewSize(float32(width), float32(height)))
}

func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Profile...", mw.onOpenProfile),
		fyne.NewMenuItem("Reload", mw.onReload),
		fyne.NewMenuItem("Save Profile As...", mw.onSaveProfileAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Image...", mw.onExportImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProfileLoaded, func(data any) {
		mw.canvas.SetConfig(mw.state.Config())
		if p, ok := data.(*profile.Profile); ok {
			mw.SetTitle(appTitle + " - " + p.Name)
			mw.updateStatus("Profile loaded: " + p.Name)
		}
	})

	mw.state.On(app.EventProfileSaved, func(data any) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Profile saved: " + path)
		}
	})

	mw.state.On(app.EventProfileError, func(data any) {
		if err, ok := data.(error); ok {
			mw.updateStatus("Profile error: " + err.Error())
		}
	})
}

// OpenProfile loads the profile at path and watches it for changes.
func (mw *MainWindow) OpenProfile(path string) error {
	err := mw.state.LoadProfile(path)
	if mw.state.Path() != path {
		return err
	}
	mw.prefs.SetString(prefs.KeyLastProfile, path)
	mw.saveLastDir(path)
	mw.watch(path)
	return err
}

func (mw *MainWindow) watch(path string) {
	if mw.watcher != nil {
		mw.watcher.Stop()
		mw.watcher = nil
	}
	w, err := app.NewProfileWatcher(path, app.DefaultDebounce)
	if err != nil {
		log.Warn("Cannot watch profile", "path", path, "error", err)
		return
	}
	w.OnChange(func(p *profile.Profile, err error) {
		if p != nil {
			mw.state.SetProfile(p)
		}
		if err != nil {
			mw.state.Emit(app.EventProfileError, err)
		}
	})
	if err := w.Start(); err != nil {
		log.Warn("Cannot watch profile", "path", path, "error", err)
		return
	}
	mw.watcher = w
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onHover(p geometry.Point2D, ok bool) {
	if !ok {
		mw.coords.SetText("")
		return
	}
	mw.coords.SetText(fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y))
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
}

func (mw *MainWindow) onOpenProfile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		if err := mw.OpenProfile(reader.URI().Path()); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{profileExt}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onReload() {
	path := mw.state.Path()
	if path == "" {
		mw.state.SetProfile(profile.Default())
		return
	}
	if err := mw.state.LoadProfile(path); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveProfileAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != profileExt {
			path += profileExt
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveProfile(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("plane" + profileExt)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportImage() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		mw.saveLastDir(path)
		if err := mw.exportImage(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported " + path)
	}, mw.Window)
	fd.SetFileName("plane.png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".tif", ".tiff"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// exportImage writes the plane at the canvas's current pixel size.
func (mw *MainWindow) exportImage(path string) error {
	size := mw.canvas.Size()
	scale := mw.Canvas().Scale()
	w, h := int(size.Width*scale), int(size.Height*scale)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("nothing to export at %dx%d", w, h)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := gfx.Encode(f, mw.canvas.Snapshot(w, h), gfx.FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Draws a configurable Cartesian plane.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

func (mw *MainWindow) onClosed() {
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		log.Error("Failed to save preferences", "error", err)
	}
}
