package views

import (
	"strings"

	"aetherfm/internal/tui/common"
	"aetherfm/internal/tui/components"
	"aetherfm/internal/tui/styles"
)

// RenderMainView draws the whole screen; height is the number of list rows
// that fit, or 0 for no limit.
func RenderMainView(m common.ModelReader, height int) string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render("AetherFM"))
	sb.WriteString("\n")

	fileList := components.NewFileList()
	fileList.SetCurrentDir(m.CurrentDir())
	fileList.SetEntries(m.Entries())
	fileList.SetCursor(m.Cursor())
	fileList.SetHeight(height)
	sb.WriteString(fileList.View())

	if m.Mode() != common.Normal {
		sb.WriteString("\n" + styles.Theme.Prompt.Render(m.PromptView()) + "\n")
	}

	status := components.NewStatusBar()
	status.SetText(m.Status())
	if v := status.View(); v != "" {
		sb.WriteString("\n" + v)
	}

	if m.ShowHelp() {
		sb.WriteString("\n" + RenderHelp())
	}
	sb.WriteString("\n" + RenderKeyCommands())

	return styles.Theme.App.Render(sb.String())
}

func RenderKeyCommands() string {
	return styles.Theme.Help.Render(`[↑/k] Up  [↓/j] Down  [Enter/l] Open  [h] Parent  [y] Copy  [p] Paste  [?] Help  [q] Quit`)
}

func RenderHelp() string {
	return styles.Theme.Help.Render(`
  Enter, l, →     open folder or file
  Backspace, h, ← parent folder
  g               go to path
  y               copy entry
  p               paste into this folder
  r               rename entry
  d               delete entry
  n / N           new file / new folder
  ctrl+r          reload
`)
}
