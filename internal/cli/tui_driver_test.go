package cli

import (
	"testing"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/teatest"
)

// TestDriver wraps teatest.Driver with questionnaire-specific inspection
// methods. It provides access to appModel internals (view stack, shared
// state, answers, focus) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init(), which
// fetches the checks synchronously from the app's source.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// ClickAnswer clicks the yes or no button on the given questionnaire row,
// in screen coordinates.
func (d *TestDriver) ClickAnswer(row int, yes bool) {
	d.T.Helper()
	x := noButtonFrom
	if yes {
		x = yesButtonFrom
	}
	d.Click(x, headerHeight+rowsTop+row)
}

// AnswerFocused presses 1 (yes) or 2 (no) on the focused row.
func (d *TestDriver) AnswerFocused(yes bool) {
	d.T.Helper()
	if yes {
		d.PressKey('1')
	} else {
		d.PressKey('2')
	}
}

// ── Questionnaire inspection ─────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Questionnaire returns the questionnaire view at the bottom of the stack.
func (d *TestDriver) Questionnaire() *questionnaireView {
	m := d.appModel()
	return m.viewStack[0].(*questionnaireView)
}

// Answers returns the questionnaire's current answers.
func (d *TestDriver) Answers() domain.Answers {
	return d.Questionnaire().answers
}

// Focused returns the focused row index.
func (d *TestDriver) Focused() int {
	return d.Questionnaire().controller.Focused()
}

// EnabledIDs returns the IDs of the enabled prefix.
func (d *TestDriver) EnabledIDs() []string {
	enabled := d.Questionnaire().enabled()
	ids := make([]string, len(enabled))
	for i, c := range enabled {
		ids[i] = c.ID
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
