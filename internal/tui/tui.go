// Package tui implements the report preview pager.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the rendered report pages until the user quits.
func Run(title string, pages []string) error {
	if len(pages) == 0 {
		return fmt.Errorf("nothing to preview")
	}
	p := tea.NewProgram(NewModel(title, pages), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
