package cli

import (
	"strings"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sony/gobreaker"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack framed by a header and a status bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = formatter.StyleDim
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.ShortSeparator = formatter.StyleDim

	return appModel{
		state:     state,
		viewStack: []View{newQuestionnaireView(state)},
		help:      h,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// pop drops the top view, keeping the questionnaire at the bottom.
func (m *appModel) pop() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Views lay out from the top of the content area.
		msg.Y -= headerHeight
		return m.forward(msg)

	case stackMsg:
		if msg.view != nil {
			m.viewStack = append(m.viewStack, msg.view)
			return m, msg.view.Init()
		}
		m.pop()
		return m, nil
	}

	return m.forward(msg)
}

// forward hands msg to the active view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC, msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.pop()
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	content := strings.Join(sections, "\n")

	// Keep the status bar pinned to the bottom of the terminal.
	if m.state.Height > 0 {
		lines := strings.Count(content, "\n") + 1
		if fill := m.state.Height - statusBarHeight - lines; fill > 0 {
			content += strings.Repeat("\n", fill)
		}
	}

	return content + "\n" + m.renderStatusBar()
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("checkpoint")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	if src := m.state.App.Config.Source; src != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(string(src)) + formatter.Dim("]")
	}
	header += m.renderCircuit()

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

// renderCircuit flags a tripped circuit breaker on the checklist source.
func (m *appModel) renderCircuit() string {
	b, ok := m.state.App.Source.(interface {
		BreakerState() (gobreaker.State, bool)
	})
	if !ok {
		return ""
	}
	switch state, hasBreaker := b.BreakerState(); {
	case !hasBreaker:
		return ""
	case state == gobreaker.StateOpen:
		return "  " + formatter.StyleRed.Render("circuit open")
	case state == gobreaker.StateHalfOpen:
		return "  " + formatter.StyleYellow.Render("circuit half-open")
	default:
		return ""
	}
}

func (m *appModel) renderStatusBar() string {
	var bindings []key.Binding
	if v := m.activeView(); v != nil {
		bindings = append(bindings, v.ShortHelp()...)
	}
	if len(m.viewStack) > 1 {
		bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")))

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + m.help.ShortHelpView(bindings)
}
