//go:build !nogui

package gui

import (
	"os"
	"path/filepath"
	"testing"

	"aetherfm/internal/config"
	"aetherfm/internal/session"
	"aetherfm/pkg/testutils"
	"aetherfm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, dir string, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = config.NewTestConfig()
	}
	s, err := session.New(dir)
	require.NoError(t, err)

	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)
	return New(fyneApp, cfg, s)
}

func listedNames(a *App) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return types.Names(a.entries)
}

func indexOf(t *testing.T, a *App, name string) int {
	t.Helper()
	for i, n := range listedNames(a) {
		if n == name {
			return i
		}
	}
	t.Fatalf("entry %q not listed", name)
	return -1
}

func TestNewWindow(t *testing.T) {
	assert.True(t, IsGUIAvailable())

	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	a := newTestApp(t, dir, nil)
	w := a.GetMainWindow()
	require.NotNil(t, w)

	assert.Equal(t, "AetherFM", w.Title())
	assert.Equal(t, dir, a.pathEntry.Text)
	assert.Equal(t, 3, a.entryList.Length())
	assert.ElementsMatch(t, []string{"notes.txt", "report.pdf", "photos"}, listedNames(a))

	root, ok := w.Content().(*fyne.Container)
	require.True(t, ok, "Window content should be a *fyne.Container")
	var split *container.Split
	for _, obj := range root.Objects {
		if s, ok := obj.(*container.Split); ok {
			split = s
		}
	}
	require.NotNil(t, split, "entry pane should sit in a split container")
	assert.InDelta(t, 200.0/900.0, split.Offset, 0.001)
	assert.True(t, split.Horizontal)
}

func TestUpButton(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "child")
	require.NoError(t, os.Mkdir(child, 0755))

	a := newTestApp(t, child, nil)
	test.Tap(a.upButton)

	assert.Equal(t, root, a.session.Location())
	assert.Equal(t, root, a.pathEntry.Text)
	assert.Contains(t, listedNames(a), "child")
}

func TestPathEntry(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	testutils.CreateTestFilesWithContent(t, root, map[string]string{"target/inside.txt": ""})

	a := newTestApp(t, root, nil)

	a.pathEntry.SetText(target)
	a.pathEntry.OnSubmitted(target)
	assert.Equal(t, target, a.session.Location())
	assert.Equal(t, []string{"inside.txt"}, listedNames(a))

	bogus := filepath.Join(root, "nowhere")
	a.pathEntry.SetText(bogus)
	a.pathEntry.OnSubmitted(bogus)
	assert.Equal(t, target, a.session.Location())
	assert.Equal(t, target, a.pathEntry.Text, "rejected path snaps back")
}

func TestDoubleTapEntersFolder(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTestFilesWithContent(t, root, map[string]string{"photos/cat.png": ""})

	a := newTestApp(t, root, nil)
	id := indexOf(t, a, "photos")

	row := newEntryRow(a)
	e, ok := a.entryAt(id)
	require.True(t, ok)
	row.update(id, e)
	test.DoubleTap(row)

	assert.Equal(t, filepath.Join(root, "photos"), a.session.Location())
	assert.Equal(t, []string{"cat.png"}, listedNames(a))
}

func TestContextMenu(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"report.pdf": "%PDF"})
	a := newTestApp(t, dir, nil)

	labels := func(m *fyne.Menu) []string {
		var out []string
		for _, item := range m.Items {
			if item.IsSeparator {
				out = append(out, "-")
				continue
			}
			out = append(out, item.Label)
		}
		return out
	}
	byLabel := func(m *fyne.Menu, label string) *fyne.MenuItem {
		for _, item := range m.Items {
			if item.Label == label {
				return item
			}
		}
		t.Fatalf("menu item %q missing", label)
		return nil
	}

	menu := a.contextMenu()
	assert.Equal(t, []string{"New Folder", "New File", "-", "Copy", "Paste", "-", "Rename", "Delete"}, labels(menu))
	assert.True(t, byLabel(menu, "Paste").Disabled, "nothing copied yet")
	assert.True(t, byLabel(menu, "Copy").Disabled, "nothing selected")

	a.entryList.Select(indexOf(t, a, "report.pdf"))
	assert.Equal(t, "report.pdf", a.Selected())

	menu = a.contextMenu()
	assert.False(t, byLabel(menu, "Copy").Disabled)
	byLabel(menu, "Copy").Action()

	clip, ok := a.session.Clipboard()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), clip)
	assert.False(t, byLabel(a.contextMenu(), "Paste").Disabled)
}

func TestPromptedOperations(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"draft.txt": "text"})
	a := newTestApp(t, dir, nil)

	var initials []string
	answer := ""
	a.prompt = func(title, label, initial string, callback func(string)) {
		initials = append(initials, initial)
		if answer != "" {
			callback(answer)
			return
		}
		callback(initial)
	}

	a.newFile()
	a.newFolder()
	assert.Contains(t, listedNames(a), "new_file.txt")
	assert.Contains(t, listedNames(a), "New Folder")

	answer = "final.txt"
	a.renameEntry("draft.txt")
	assert.NotContains(t, listedNames(a), "draft.txt")
	assert.Contains(t, listedNames(a), "final.txt")

	assert.Equal(t, []string{"new_file.txt", "New Folder", "draft.txt"}, initials)
}

func TestDeleteAsksFirst(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.log": "x"})
	cfg := config.NewTestConfig()
	cfg.ConfirmDelete = true
	a := newTestApp(t, dir, cfg)

	var messages []string
	answer := false
	a.confirm = func(title, message string, callback func(bool)) {
		messages = append(messages, message)
		callback(answer)
	}

	a.deleteEntry("old.log")
	assert.Contains(t, listedNames(a), "old.log")

	answer = true
	a.deleteEntry("old.log")
	assert.NotContains(t, listedNames(a), "old.log")
	assert.Equal(t, "Are you sure you want to delete 'old.log'?", messages[0])
	assert.Len(t, messages, 2)
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.log": "x"})
	a := newTestApp(t, dir, nil)
	a.confirm = func(string, string, func(bool)) {
		t.Fatal("confirmation is disabled")
	}

	a.deleteEntry("old.log")
	assert.NotContains(t, listedNames(a), "old.log")
}

func TestEntryIcon(t *testing.T) {
	assert.Equal(t, theme.FolderIcon(), entryIcon("folder"))
	assert.Equal(t, theme.FileImageIcon(), entryIcon("image-x-generic"))
	assert.Equal(t, theme.FileTextIcon(), entryIcon("text-x-generic"))
	assert.Equal(t, theme.FileIcon(), entryIcon("application-pdf"))
}
