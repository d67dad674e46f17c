package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI runs the questionnaire full screen with mouse support until the
// operator quits.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
