package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Directory  lipgloss.Style
	Help       lipgloss.Style
	Prompt     lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Unselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Directory: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#81A1C1")).
		Bold(true),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#4F4FB7")).
		Padding(0, 1),
}
