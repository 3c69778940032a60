package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sitecfg/sitecfg/internal/config"
)

// Run starts the browser and saves the last view settings on exit.
func Run(dev, pub config.Settings) error {
	m := NewModel(dev, pub, LoadPrefs())
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if fm, ok := final.(Model); ok {
		_ = SavePrefs(fm.Prefs())
	}
	return nil
}
