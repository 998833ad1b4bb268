package tui

import (
	"os"
	"path/filepath"
	"testing"

	"aetherfm/internal/config"
	"aetherfm/internal/session"
	"aetherfm/internal/tui/common"
	"aetherfm/pkg/testutils"
	"aetherfm/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, dir string, cfg *config.Config) *Model {
	t.Helper()
	if cfg == nil {
		cfg = config.NewTestConfig()
	}
	s, err := session.New(dir)
	require.NoError(t, err)
	return New(cfg, s)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func moveTo(t *testing.T, m *Model, name string) {
	t.Helper()
	for i, e := range m.Entries() {
		if e.Name == name {
			m.SetCursor(i)
			return
		}
	}
	t.Fatalf("entry %q not listed", name)
}

func TestModelInitialization(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithDefault(t, dir)

	m := newModel(t, dir, nil)
	assert.Equal(t, common.Normal, m.Mode())
	assert.Equal(t, dir, m.CurrentDir())
	assert.Equal(t, 0, m.Cursor())
	assert.ElementsMatch(t, []string{"notes.txt", "report.pdf", "photos"}, types.Names(m.Entries()))
	assert.Nil(t, m.Init(), "no watcher without watch mode")
}

func TestModelEdgeCases(t *testing.T) {
	t.Run("empty_directory", func(t *testing.T) {
		m := newModel(t, t.TempDir(), nil)
		assert.Empty(t, m.Entries())

		// Navigation in empty directory should not panic
		press(m, "j", "k", "G", "enter", "y", "d", "r")
		assert.Equal(t, 0, m.Cursor())
		assert.Equal(t, common.Normal, m.Mode())
	})

	t.Run("cursor_bounds", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.txt": "", "b.txt": ""})
		m := newModel(t, dir, nil)

		m.SetCursor(-1)
		assert.Equal(t, 0, m.Cursor())
		m.SetCursor(100)
		assert.Equal(t, 0, m.Cursor())

		press(m, "j", "j", "j")
		assert.Equal(t, 1, m.Cursor())
		press(m, "k", "k")
		assert.Equal(t, 0, m.Cursor())
	})

	t.Run("quit", func(t *testing.T) {
		m := newModel(t, t.TempDir(), nil)
		_, cmd := m.Update(keyMsg("q"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestNavigation(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTestFilesWithContent(t, root, map[string]string{"dir1/inner.txt": ""})
	m := newModel(t, root, nil)

	moveTo(t, m, "dir1")
	press(m, "enter")
	assert.Equal(t, filepath.Join(root, "dir1"), m.CurrentDir())
	assert.Equal(t, []string{"inner.txt"}, types.Names(m.Entries()))

	press(m, "h")
	assert.Equal(t, root, m.CurrentDir())
	assert.Equal(t, 0, m.Cursor())
}

func TestCopyPaste(t *testing.T) {
	root := t.TempDir()
	testutils.CreateTestFilesWithContent(t, root, map[string]string{"docs/report.pdf": "%PDF"})
	require.NoError(t, os.Mkdir(filepath.Join(root, "archive"), 0755))
	m := newModel(t, filepath.Join(root, "docs"), nil)

	press(m, "y")
	assert.Equal(t, "Copied report.pdf", m.Status())

	press(m, "g")
	require.Equal(t, common.Prompt, m.Mode())
	m.input.SetValue(filepath.Join(root, "archive"))
	press(m, "enter")
	assert.Equal(t, filepath.Join(root, "archive"), m.CurrentDir())
	assert.Equal(t, "Clipboard: "+filepath.Join(root, "docs", "report.pdf"), m.Status())

	press(m, "p")
	assert.Equal(t, []string{"report.pdf"}, types.Names(m.Entries()))
	assert.True(t, testutils.Exists(t, filepath.Join(root, "docs", "report.pdf")))
}

func TestRenamePrompt(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"draft.txt": "x"})
	m := newModel(t, dir, nil)

	press(m, "r")
	require.Equal(t, common.Prompt, m.Mode())
	assert.Equal(t, "draft.txt", m.input.Value())

	m.input.SetValue("final")
	press(m, ".", "t", "x", "t", "enter")

	assert.Equal(t, common.Normal, m.Mode())
	assert.Equal(t, []string{"final.txt"}, types.Names(m.Entries()))
}

func TestPromptCancel(t *testing.T) {
	dir := t.TempDir()
	m := newModel(t, dir, nil)

	press(m, "N")
	assert.Equal(t, "New Folder", m.input.Value())
	press(m, "esc")

	assert.Equal(t, common.Normal, m.Mode())
	assert.Empty(t, m.Entries())
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	m := newModel(t, dir, nil)

	press(m, "n", "enter")
	press(m, "N", "enter")
	assert.ElementsMatch(t, []string{"new_file.txt", "New Folder"}, types.Names(m.Entries()))

	// Creating the same folder again changes nothing.
	press(m, "N", "enter")
	assert.ElementsMatch(t, []string{"new_file.txt", "New Folder"}, types.Names(m.Entries()))
}

func TestDeleteConfirmation(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.log": "x"})
	cfg := config.NewTestConfig()
	cfg.ConfirmDelete = true
	m := newModel(t, dir, cfg)

	press(m, "d")
	require.Equal(t, common.Confirm, m.Mode())
	assert.Contains(t, m.PromptView(), "Are you sure you want to delete 'old.log'?")
	press(m, "n")
	assert.Equal(t, []string{"old.log"}, types.Names(m.Entries()))

	press(m, "d", "y")
	assert.Empty(t, m.Entries())
}

func TestChangedMessageRefreshes(t *testing.T) {
	dir := t.TempDir()
	m := newModel(t, dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "external.txt"), nil, 0644))

	m.Update(changedMsg("/somewhere/else"))
	assert.Empty(t, m.Entries())

	m.Update(changedMsg(dir))
	assert.Equal(t, []string{"external.txt"}, types.Names(m.Entries()))
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	bindings := map[string]key.Binding{
		"help": km.Help, "quit": km.Quit, "refresh": km.Refresh,
		"up": km.Up, "down": km.Down, "top": km.GotoTop, "bottom": km.GotoBottom,
		"activate": km.Activate, "back": km.GoBack, "jump": km.Jump,
		"copy": km.Copy, "paste": km.Paste, "delete": km.Delete,
		"rename": km.Rename, "new file": km.NewFile, "new folder": km.NewFolder,
	}
	seen := map[string]string{}
	for name, b := range bindings {
		assert.NotEmpty(t, b.Keys(), name)
		assert.NotEmpty(t, b.Help().Desc, name)
		for _, k := range b.Keys() {
			if other, dup := seen[k]; dup {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}

	assert.True(t, key.Matches(keyMsg("G"), km.GotoBottom))
	assert.False(t, key.Matches(keyMsg("g"), km.GotoBottom))
	assert.True(t, key.Matches(keyMsg("enter"), km.Activate))
}
