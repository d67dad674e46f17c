package cli

import (
	"github.com/alexanderramin/checkpoint/internal/navigation"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// questionnaireKeys maps raw keys to questionnaire actions.
type questionnaireKeys struct {
	Up      key.Binding
	Down    key.Binding
	Yes     key.Binding
	No      key.Binding
	Submit  key.Binding
	Retry   key.Binding
	History key.Binding
}

func defaultQuestionnaireKeys() questionnaireKeys {
	return questionnaireKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Yes:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "yes")),
		No:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "no")),
		Submit:  key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "submit")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	}
}

// signalFor translates a key press into a navigation signal.
func (k questionnaireKeys) signalFor(msg tea.KeyMsg) (navigation.Signal, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return navigation.MovePrevious, true
	case key.Matches(msg, k.Down):
		return navigation.MoveNext, true
	case key.Matches(msg, k.Yes):
		return navigation.SelectYes, true
	case key.Matches(msg, k.No):
		return navigation.SelectNo, true
	}
	return 0, false
}
