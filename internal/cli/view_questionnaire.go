package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/navigation"
	"github.com/alexanderramin/checkpoint/internal/progression"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// checksLoadedMsg carries the result of a fetch.
type checksLoadedMsg struct {
	checks []domain.Check
	err    error
}

// submitDoneMsg carries the result of a submit.
type submitDoneMsg struct {
	count int
	err   error
}

// Row layout, in cells from the left edge of the content area. The list
// starts on rowsTop; each check takes one line.
const (
	rowsTop       = 3
	yesButtonFrom = 2
	yesButtonTo   = yesButtonFrom + len(formatter.YesButtonLabel)
	noButtonFrom  = yesButtonTo + 1
	noButtonTo    = noButtonFrom + len(formatter.NoButtonLabel)
	progressWidth = 12
)

// questionnaireView fetches the checks, lets the operator answer them in
// priority order and submits the answers.
type questionnaireView struct {
	state *SharedState
	keys  questionnaireKeys

	checks  []domain.Check // priority order
	answers domain.Answers

	controller *navigation.Controller
	dispatcher *navigation.Dispatcher

	spinner    spinner.Model
	loading    bool
	submitting bool
	fetchErr   error

	// notice is a submit failure, shown until the next key press.
	notice string
	// confirmation follows a successful submit until the next key press.
	confirmation string
}

func newQuestionnaireView(state *SharedState) *questionnaireView {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return &questionnaireView{
		state:      state,
		keys:       defaultQuestionnaireKeys(),
		answers:    domain.Answers{},
		controller: navigation.NewController(),
		dispatcher: navigation.NewDispatcher(),
		spinner:    sp,
	}
}

func (v *questionnaireView) ID() ViewID    { return ViewQuestionnaire }
func (v *questionnaireView) Title() string { return "Verification" }

func (v *questionnaireView) ShortHelp() []key.Binding {
	switch {
	case v.loading:
		return nil
	case v.fetchErr != nil || len(v.checks) == 0:
		return v.withHistory(v.keys.Retry)
	}
	bindings := []key.Binding{v.keys.Up, v.keys.Down, v.keys.Yes, v.keys.No}
	if v.canSubmit() {
		bindings = append(bindings, v.keys.Submit)
	}
	return v.withHistory(bindings...)
}

func (v *questionnaireView) withHistory(bindings ...key.Binding) []key.Binding {
	if v.state.App.Checks != nil {
		bindings = append(bindings, v.keys.History)
	}
	return bindings
}

func (v *questionnaireView) Init() tea.Cmd {
	return v.startFetch()
}

// startFetch begins loading checks. It is a no-op while a fetch is in flight.
func (v *questionnaireView) startFetch() tea.Cmd {
	if v.loading {
		return nil
	}
	v.loading = true
	v.fetchErr = nil
	src := v.state.App.Source
	fetch := func() tea.Msg {
		checks, err := src.FetchChecks(context.Background())
		return checksLoadedMsg{checks: checks, err: err}
	}
	return tea.Batch(v.spinner.Tick, fetch)
}

func (v *questionnaireView) startSubmit() tea.Cmd {
	if v.submitting || !v.canSubmit() {
		return nil
	}
	v.submitting = true
	payload := progression.BuildPayload(v.checks, v.answers)
	src := v.state.App.Source
	submit := func() tea.Msg {
		err := src.SubmitResults(context.Background(), payload)
		return submitDoneMsg{count: len(payload), err: err}
	}
	return tea.Batch(v.spinner.Tick, submit)
}

func (v *questionnaireView) canSubmit() bool {
	return progression.CanSubmit(v.checks, v.answers)
}

func (v *questionnaireView) enabled() []domain.Check {
	return progression.ComputeEnabled(v.checks, v.answers)
}

// rebind re-registers the controller's input handler over the current
// enabled set and answers.
func (v *questionnaireView) rebind() {
	v.controller.Bind(v.dispatcher, v.enabled(), v.answers, v.commit)
}

func (v *questionnaireView) commit(answers domain.Answers) {
	v.answers = answers
	v.rebind()
}

func (v *questionnaireView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checksLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.fetchErr = msg.err
			v.checks = nil
			v.controller.Unbind()
			return v, nil
		}
		v.checks = progression.SortByPriority(msg.checks)
		v.answers = domain.Answers{}
		v.controller.Reset()
		v.rebind()
		return v, nil

	case submitDoneMsg:
		v.submitting = false
		if msg.err != nil {
			v.notice = "Submission failed: " + msg.err.Error()
			return v, nil
		}
		v.answers = domain.Answers{}
		v.controller.Reset()
		v.rebind()
		v.confirmation = fmt.Sprintf("Submitted %d answer(s).", msg.count)
		return v, nil

	case spinner.TickMsg:
		if !v.loading && !v.submitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.MouseMsg:
		v.handleClick(msg)
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *questionnaireView) handleKey(msg tea.KeyMsg) tea.Cmd {
	v.notice = ""
	v.confirmation = ""

	if v.loading {
		return nil
	}
	if key.Matches(msg, v.keys.History) && v.state.App.Checks != nil {
		return pushView(newHistoryView(v.state))
	}
	if v.fetchErr != nil || len(v.checks) == 0 {
		if key.Matches(msg, v.keys.Retry) {
			return v.startFetch()
		}
		return nil
	}
	if v.submitting {
		return nil
	}
	if key.Matches(msg, v.keys.Submit) {
		return v.startSubmit()
	}
	if sig, ok := v.keys.signalFor(msg); ok {
		v.dispatcher.Emit(sig)
	}
	return nil
}

// handleClick turns a left click on a yes/no button of an enabled row into
// a direct answer.
func (v *questionnaireView) handleClick(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if v.loading || v.submitting || v.fetchErr != nil {
		return
	}
	row := msg.Y - rowsTop
	if !progression.IsEnabled(v.checks, v.answers, row) {
		return
	}

	var value bool
	switch {
	case msg.X >= yesButtonFrom && msg.X < yesButtonTo:
		value = true
	case msg.X >= noButtonFrom && msg.X < noButtonTo:
		value = false
	default:
		return
	}

	v.notice = ""
	v.confirmation = ""
	v.commit(v.controller.Click(v.checks[row].ID, row, value, v.answers))
}

func (v *questionnaireView) View() string {
	if v.loading {
		return "\n  " + v.spinner.View() + " " + formatter.Dim("Loading verification checks...")
	}
	if v.fetchErr != nil {
		return "\n  " + formatter.StyleRed.Render("Could not load checks: "+v.fetchErr.Error()) +
			"\n\n  " + formatter.Dim("Press r to retry.")
	}
	if len(v.checks) == 0 {
		return "\n  " + formatter.Dim(formatter.EmptyChecklistMessage) +
			"\n\n  " + formatter.Dim("Press r to reload.")
	}

	var b strings.Builder
	answered, total := progression.Progress(v.checks, v.answers)
	b.WriteString("\n")
	b.WriteString("  " + formatter.Bold("Verification checks") + "  " +
		formatter.RenderProgress(answered, total, progressWidth) + "\n")
	b.WriteString("\n")

	enabledCount := len(v.enabled())
	for i, c := range v.checks {
		b.WriteString(v.renderRow(c, i, i < enabledCount))
		b.WriteByte('\n')
	}

	b.WriteString("\n  ")
	b.WriteString(v.footer())
	return b.String()
}

func (v *questionnaireView) renderRow(c domain.Check, index int, enabled bool) string {
	focused := enabled && index == v.controller.Focused()

	cursor := "  "
	if focused {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	value, answered := v.answers.Get(c.ID)
	buttons := formatter.AnswerButtons(answered, value, !enabled)

	desc := c.Description
	if width := v.state.Width - noButtonTo - 2; width > 0 {
		desc = formatter.Truncate(desc, width)
	}
	switch {
	case !enabled:
		desc = formatter.Dim(desc)
	case focused:
		desc = formatter.Bold(desc)
	default:
		desc = formatter.StyleFg.Render(desc)
	}

	return cursor + buttons + "  " + desc
}

func (v *questionnaireView) footer() string {
	switch {
	case v.submitting:
		return v.spinner.View() + " " + formatter.Dim("Submitting...")
	case v.notice != "":
		return formatter.StyleRed.Render(v.notice)
	case v.confirmation != "":
		return formatter.StyleGreen.Render(v.confirmation)
	case v.canSubmit():
		return formatter.StyleGreen.Render("Ready to submit. Press enter.")
	default:
		return formatter.Dim("Answer yes to unlock the next check.")
	}
}
