package tui_test

import (
	"path/filepath"
	"testing"

	"aetherfm/internal/config"
	"aetherfm/internal/session"
	"aetherfm/internal/tui"
	"aetherfm/internal/tui/common"
	"aetherfm/pkg/testutils"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewRendering(t *testing.T) {
	tmpDir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, tmpDir, map[string]string{
		"test1.txt":      "hello",
		"dir1/inner.txt": "",
		".hidden":        "",
	})

	s, err := session.New(tmpDir)
	require.NoError(t, err)
	m := tui.New(config.NewTestConfig(), s)

	t.Run("initial view", func(t *testing.T) {
		out := testutils.StripANSI(m.View())
		alsrt.Contains(t, out, "Location: "+tmpDir, "Status bar should show the initial directory")
		alsrt.Contains(t, out, "test1.txt")
		alsrt.Contains(t, out, "dir1/")
		alsrt.NotContains(t, out, ".hidden")
		alsrt.Contains(t, out, "5 B")
		alsrt.Equal(t, common.Normal, m.Mode(), "Initial mode should be Normal")
	})

	t.Run("help toggle", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
		alsrt.Contains(t, testutils.StripANSI(m.View()), "paste into this folder")
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
		alsrt.NotContains(t, testutils.StripANSI(m.View()), "paste into this folder")
	})

	t.Run("navigate into dir1", func(t *testing.T) {
		for i, name := range []string{m.Entries()[0].Name, m.Entries()[1].Name} {
			if name == "dir1" {
				m.SetCursor(i)
			}
		}
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		alsrt.Contains(t, testutils.StripANSI(m.View()), "Location: "+filepath.Join(tmpDir, "dir1"), "Should have navigated into dir1")
	})
}
