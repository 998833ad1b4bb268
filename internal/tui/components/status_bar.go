package components

import (
	"aetherfm/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type StatusBar struct {
	text  string
	style lipgloss.Style
}

func NewStatusBar() *StatusBar {
	return &StatusBar{
		style: styles.Theme.Help,
	}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	return s.style.Render(s.text)
}
