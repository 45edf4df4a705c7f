// Package main provides the entry point for the Cartesian plane previewer.
package main

import (
	"os"

	"cartesian-plane/internal/app"
	"cartesian-plane/internal/version"
	"cartesian-plane/ui/mainwindow"
	"cartesian-plane/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
)

const appID = "io.github.cartesian-plane"

func main() {
	log.SetReportTimestamp(true)
	log.Info("Starting previewer", "version", version.Version)

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.PlaneTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// The command line profile wins over the one used last time.
	path := appPrefs.String(prefs.KeyLastProfile)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path != "" {
		if err := win.OpenProfile(path); err != nil {
			log.Error("Failed to open profile", "path", path, "error", err)
		}
	}

	win.ShowAndRun()
	log.Info("Previewer closed")
}
