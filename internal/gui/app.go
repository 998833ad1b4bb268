//go:build !nogui

package gui

import (
	"sync"
	"time"

	"aetherfm/internal/config"
	"aetherfm/internal/log"
	"aetherfm/internal/places"
	"aetherfm/internal/session"
	"aetherfm/internal/watch"
	"aetherfm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the file manager window
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	session    *session.Session
	watcher    *watch.Watcher

	mu       sync.Mutex
	entries  []types.Entry
	selected string
	places   []places.Place

	pathEntry *widget.Entry
	upButton  *widget.Button
	entryList *widget.List
	placeList *widget.List

	// Replaced in tests; the defaults show modal dialogs.
	confirm func(title, message string, callback func(bool))
	prompt  func(title, label, initial string, callback func(string))
}

// NewApp creates the window on a new desktop application.
func NewApp(cfg *config.Config, s *session.Session) *App {
	fyneApp := app.NewWithID("io.github.aetherfm")
	fyneApp.SetIcon(theme.FolderIcon())
	return New(fyneApp, cfg, s)
}

// New builds the window on an existing fyne application.
func New(fyneApp fyne.App, cfg *config.Config, s *session.Session) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		session: s,
	}
	a.confirm = func(title, message string, callback func(bool)) {
		dialog.ShowConfirm(title, message, callback, a.mainWindow)
	}
	a.prompt = a.showPrompt

	a.mainWindow = fyneApp.NewWindow("AetherFM")
	a.mainWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	a.places = places.Discover(places.Options{
		Bookmarks:   cfg.Bookmarks,
		ShowVolumes: cfg.Places.ShowVolumes,
	})

	a.setupMainWindow()
	a.refresh()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the window and blocks until the application quits.
func (a *App) Run() {
	if a.cfg.Watch.Enabled {
		a.startWatching()
	}
	a.mainWindow.SetOnClosed(a.stopWatching)
	a.mainWindow.ShowAndRun()
}

func (a *App) setupMainWindow() {
	a.pathEntry = widget.NewEntry()
	a.pathEntry.OnSubmitted = func(text string) {
		a.run(session.ActionJump, session.Request{Path: text})
		// A rejected path snaps back to the current location.
		a.pathEntry.SetText(a.session.Location())
	}

	a.upButton = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		a.run(session.ActionUp, session.Request{})
	})

	toolbar := container.NewBorder(nil, nil, a.upButton, nil, a.pathEntry)

	a.placeList = widget.NewList(
		func() int {
			return len(a.places)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.FolderIcon()),
				widget.NewLabel("Template place name"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.places) {
				return
			}
			p := a.places[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Icon).SetResource(placeIcon(p))
			row.Objects[1].(*widget.Label).SetText(p.Name)
		},
	)
	a.placeList.OnSelected = func(id widget.ListItemID) {
		a.selectPlace(id)
		a.placeList.UnselectAll()
	}

	a.entryList = widget.NewList(
		func() int {
			a.mu.Lock()
			defer a.mu.Unlock()
			return len(a.entries)
		},
		func() fyne.CanvasObject {
			return newEntryRow(a)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			e, ok := a.entryAt(id)
			if !ok {
				return
			}
			obj.(*entryRow).update(id, e)
		},
	)
	a.entryList.OnSelected = func(id widget.ListItemID) {
		if e, ok := a.entryAt(id); ok {
			a.mu.Lock()
			a.selected = e.Name
			a.mu.Unlock()
		}
	}

	listArea := container.NewStack(newContextArea(a), a.entryList)

	split := container.NewHSplit(a.placeList, listArea)
	split.SetOffset(a.cfg.SidebarOffset())

	a.mainWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))
}

// refresh lists CurrentLocation again and updates every view of it.
func (a *App) refresh() {
	location := a.session.Location()
	entries := a.session.List()

	a.mu.Lock()
	a.entries = entries
	a.selected = ""
	watcher := a.watcher
	a.mu.Unlock()

	a.pathEntry.SetText(location)
	a.entryList.UnselectAll()
	a.entryList.Refresh()

	if watcher != nil {
		if err := watcher.Follow(location); err != nil {
			log.LogWithFields(log.F("directory", location)).Debugf("cannot watch: %v", err)
		}
	}
}

// run dispatches an action and refreshes when the result asks for it.
// Errors are logged by the session and otherwise ignored.
func (a *App) run(action session.Action, req session.Request) session.Result {
	res := a.session.Dispatch(action, req)
	if res.Refresh {
		a.refresh()
	}
	return res
}

func (a *App) entryAt(id widget.ListItemID) (types.Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id < 0 || id >= len(a.entries) {
		return types.Entry{}, false
	}
	return a.entries[id], true
}

// Selected returns the name of the selected entry, or "".
func (a *App) Selected() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}

func (a *App) selectPlace(id widget.ListItemID) {
	if id < 0 || id >= len(a.places) {
		return
	}
	a.run(session.ActionJump, session.Request{Path: a.places[id].Path})
}

func (a *App) startWatching() {
	w, err := watch.New(time.Duration(a.cfg.Watch.DebounceMS) * time.Millisecond)
	if err != nil {
		log.Warnf("Directory watching disabled: %v", err)
		return
	}
	a.mu.Lock()
	a.watcher = w
	a.mu.Unlock()
	if err := w.Follow(a.session.Location()); err != nil {
		log.LogWithFields(log.F("directory", a.session.Location())).Debugf("cannot watch: %v", err)
	}

	go func() {
		for dir := range w.Changes() {
			if dir == a.session.Location() {
				a.refresh()
			}
		}
	}()
}

func (a *App) stopWatching() {
	a.mu.Lock()
	w := a.watcher
	a.watcher = nil
	a.mu.Unlock()

	if w == nil {
		return
	}
	if err := w.Close(); err != nil {
		log.Debugf("closing watcher: %v", err)
	}
}
