//go:build !nogui

package gui

import (
	"fmt"
	"net/url"
	"strings"

	"aetherfm/internal/config"
	"aetherfm/internal/places"
	"aetherfm/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Start opens the file manager window on s and blocks until it closes.
func Start(cfg *config.Config, s *session.Session) error {
	a := NewApp(cfg, s)
	s.SetOpener(desktopOpener{
		command: session.CommandOpener{Command: cfg.OpenCommand},
		app:     a.fyneApp,
	})
	a.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// desktopOpener launches plain paths with the configured command and hands
// URIs to the desktop driver.
type desktopOpener struct {
	command session.CommandOpener
	app     fyne.App
}

func (o desktopOpener) Open(target string) error {
	if !strings.Contains(target, "://") {
		return o.command.Open(target)
	}
	u, err := url.Parse(target)
	if err != nil {
		return err
	}
	return o.app.OpenURL(u)
}

// contextMenu builds the entry list menu for the current selection.
func (a *App) contextMenu() *fyne.Menu {
	selected := a.Selected()
	_, hasClip := a.session.Clipboard()

	newFolder := fyne.NewMenuItem("New Folder", a.newFolder)
	newFile := fyne.NewMenuItem("New File", a.newFile)

	copyItem := fyne.NewMenuItem("Copy", func() {
		a.run(session.ActionCopy, session.Request{Name: selected})
	})
	paste := fyne.NewMenuItem("Paste", func() {
		a.run(session.ActionPaste, session.Request{})
	})
	paste.Disabled = !hasClip

	rename := fyne.NewMenuItem("Rename", func() { a.renameEntry(selected) })
	del := fyne.NewMenuItem("Delete", func() { a.deleteEntry(selected) })

	if selected == "" {
		copyItem.Disabled = true
		rename.Disabled = true
		del.Disabled = true
	}

	return fyne.NewMenu("",
		newFolder,
		newFile,
		fyne.NewMenuItemSeparator(),
		copyItem,
		paste,
		fyne.NewMenuItemSeparator(),
		rename,
		del,
	)
}

func (a *App) showContextMenu(pos fyne.Position) {
	widget.ShowPopUpMenuAtPosition(a.contextMenu(), a.mainWindow.Canvas(), pos)
}

func (a *App) newFolder() {
	a.prompt("New Folder", "Folder name:", "New Folder", func(name string) {
		a.run(session.ActionCreateFolder, session.Request{Name: name})
	})
}

func (a *App) newFile() {
	a.prompt("New File", "File name:", "new_file.txt", func(name string) {
		a.run(session.ActionCreateFile, session.Request{Name: name})
	})
}

func (a *App) renameEntry(name string) {
	if name == "" {
		return
	}
	a.prompt("Rename", "New name:", name, func(newName string) {
		if newName == name {
			return
		}
		a.run(session.ActionRename, session.Request{Name: name, NewName: newName})
	})
}

func (a *App) deleteEntry(name string) {
	if name == "" {
		return
	}
	if !a.cfg.ConfirmDelete {
		a.run(session.ActionDelete, session.Request{Name: name, Confirmed: true})
		return
	}
	message := fmt.Sprintf("Are you sure you want to delete '%s'?", name)
	a.confirm("Delete", message, func(confirmed bool) {
		a.run(session.ActionDelete, session.Request{Name: name, Confirmed: confirmed})
	})
}

func (a *App) activateEntry(id widget.ListItemID) {
	e, ok := a.entryAt(id)
	if !ok {
		return
	}
	a.run(session.ActionActivate, session.Request{Name: e.Name})
}

// showPrompt asks for a single name. Empty answers are dropped.
func (a *App) showPrompt(title, label, initial string, callback func(string)) {
	entry := widget.NewEntry()
	entry.SetText(initial)

	dialog.ShowForm(title, "OK", "Cancel", []*widget.FormItem{
		{Text: label, Widget: entry},
	}, func(confirmed bool) {
		if !confirmed || entry.Text == "" {
			return
		}
		callback(entry.Text)
	}, a.mainWindow)
}

// entryIcon maps an entry icon name to a theme resource.
func entryIcon(icon string) fyne.Resource {
	switch {
	case icon == "folder":
		return theme.FolderIcon()
	case strings.HasPrefix(icon, "image-"):
		return theme.FileImageIcon()
	case strings.HasPrefix(icon, "audio-"):
		return theme.FileAudioIcon()
	case strings.HasPrefix(icon, "video-"):
		return theme.FileVideoIcon()
	case icon == "text-x-generic":
		return theme.FileTextIcon()
	case icon == "application-x-executable":
		return theme.FileApplicationIcon()
	}
	return theme.FileIcon()
}

func placeIcon(p places.Place) fyne.Resource {
	switch p.Kind {
	case places.KindHome:
		return theme.HomeIcon()
	case places.KindRoot:
		return theme.ComputerIcon()
	case places.KindVolume:
		return theme.StorageIcon()
	}
	return theme.FolderIcon()
}
