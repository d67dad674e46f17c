package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies a screen of the TUI.
type ViewID int

const (
	ViewQuestionnaire ViewID = iota
	ViewHistory
)

// View is a screen on the appModel's stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // hints for the status bar
	Title() string            // breadcrumb segment
}

// stackMsg asks the appModel to push view, or to pop the top view when view
// is nil. The bottom view is never popped.
type stackMsg struct {
	view View
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return stackMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return stackMsg{} }
}
