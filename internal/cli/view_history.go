package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const historyLimit = 50

// historyLoadedMsg signals that recent submissions have been loaded.
type historyLoadedMsg struct {
	subs []*domain.Submission
	err  error
}

// historyView lists recent submissions from the local store.
type historyView struct {
	state   *SharedState
	vp      viewport.Model
	loading bool
	err     error
	count   int
}

func newHistoryView(state *SharedState) *historyView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &historyView{state: state, vp: vp, loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.load()
}

func (v *historyView) load() tea.Cmd {
	svc := v.state.App.Checks
	return func() tea.Msg {
		subs, err := svc.ListSubmissions(context.Background(), historyLimit)
		return historyLoadedMsg{subs: subs, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.count = len(msg.subs)
			v.vp.SetContent(formatter.FormatSubmissions(msg.subs, time.Now()))
			v.vp.GotoTop()
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loading = true
			return v, v.load()
		case "backspace":
			return v, popView()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *historyView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading submissions...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}
