//go:build nogui

package gui

import (
	"fmt"

	"aetherfm/internal/config"
	"aetherfm/internal/session"
)

// Start is a stub implementation for builds with GUI disabled
func Start(cfg *config.Config, s *session.Session) error {
	return fmt.Errorf("GUI not available in this build, use the tui command")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
