package cli

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/checkpoint/internal/checklist"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedApp returns a test App whose questionnaire talks to a scripted
// source serving the four-check catalogue.
func scriptedApp(t *testing.T) (*App, *scriptedSource) {
	t.Helper()
	app := testApp(t)
	src := &scriptedSource{checks: testutil.Catalogue()}
	app.Source = src
	return app, src
}

func TestTUI_LoadsChecksInPriorityOrder(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	q := d.Questionnaire()
	require.False(t, q.loading)
	ids := make([]string, len(q.checks))
	for i, c := range q.checks {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"aaa", "ccc", "bbb", "ddd"}, ids)
	assert.Equal(t, []string{"aaa"}, d.EnabledIDs())
	assert.Equal(t, 0, d.Focused())

	view := d.View()
	assert.Contains(t, view, "Face on the picture matches face on the document")
	assert.Contains(t, view, "0/4")
}

func TestTUI_YesUnlocksNextCheck(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	assert.Equal(t, []string{"aaa", "ccc"}, d.EnabledIDs())
	assert.Equal(t, 0, d.Focused(), "answering does not move focus")

	d.PressDown()
	assert.Equal(t, 1, d.Focused())
	d.AnswerFocused(true)
	assert.Equal(t, []string{"aaa", "ccc", "bbb"}, d.EnabledIDs())
}

func TestTUI_NoLocksEverythingBelow(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	d.PressKey('j')
	d.AnswerFocused(true)
	d.PressKey('j')
	d.AnswerFocused(true)
	require.Equal(t, []string{"aaa", "ccc", "bbb", "ddd"}, d.EnabledIDs())

	// Changing the first answer to no hides the rest again.
	d.PressKey('k')
	d.PressKey('k')
	d.AnswerFocused(false)
	assert.Equal(t, []string{"aaa"}, d.EnabledIDs())
	assert.Equal(t, 0, d.Focused())
	assert.True(t, d.Questionnaire().canSubmit())
}

func TestTUI_MovementClampsAtEnds(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.PressUp()
	assert.Equal(t, 0, d.Focused())
	d.PressDown()
	assert.Equal(t, 0, d.Focused(), "only aaa is enabled")

	d.AnswerFocused(true)
	d.PressDown()
	d.PressDown()
	assert.Equal(t, 1, d.Focused())
}

func TestTUI_ClickAboveFocusShrinksEnabledSet(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	d.PressDown()
	d.AnswerFocused(true)
	d.PressDown()
	require.Equal(t, 2, d.Focused())

	// Click no on aaa while focus sits on bbb.
	d.ClickAnswer(0, false)
	assert.Equal(t, []string{"aaa"}, d.EnabledIDs())
	assert.Equal(t, 0, d.Focused())

	d.PressDown()
	assert.Equal(t, 0, d.Focused())
}

func TestTUI_ClickAnswersAndFocusesRow(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.ClickAnswer(0, true)
	v, ok := d.Answers().Get("aaa")
	require.True(t, ok)
	assert.True(t, v)

	d.ClickAnswer(1, false)
	v, ok = d.Answers().Get("ccc")
	require.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, 1, d.Focused())
	assert.True(t, d.Questionnaire().canSubmit())
}

func TestTUI_ClickOnLockedRowIsIgnored(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.ClickAnswer(2, true)
	assert.Empty(t, d.Answers())
	assert.Equal(t, 0, d.Focused())
}

func TestTUI_ClickOutsideButtonsIsIgnored(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.Click(noButtonTo+4, headerHeight+rowsTop)
	d.Click(yesButtonFrom, 0)
	d.Send(tea.MouseMsg{X: yesButtonFrom, Y: headerHeight + rowsTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	d.RightClick(yesButtonFrom, headerHeight+rowsTop)
	assert.Empty(t, d.Answers())
}

func TestTUI_SubmitRequiresGate(t *testing.T) {
	app, src := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.PressEnter()
	assert.Empty(t, src.submitted)

	d.AnswerFocused(true)
	d.PressEnter()
	assert.Empty(t, src.submitted, "aaa=yes alone cannot be submitted")
	assert.Contains(t, d.View(), "Answer yes to unlock")
}

func TestTUI_SubmitSuccessResets(t *testing.T) {
	app, src := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	d.PressDown()
	d.AnswerFocused(false)
	assert.Contains(t, d.View(), "Ready to submit")

	d.PressEnter()
	require.Len(t, src.submitted, 1)
	assert.Equal(t, []domain.Result{testutil.Yes("aaa"), testutil.No("ccc")}, src.submitted[0])

	assert.Empty(t, d.Answers())
	assert.Equal(t, 0, d.Focused())
	assert.Equal(t, []string{"aaa"}, d.EnabledIDs())
	assert.Contains(t, d.View(), "Submitted 2 answer(s).")

	// The confirmation clears on the next key.
	d.PressDown()
	assert.NotContains(t, d.View(), "Submitted 2 answer(s).")
}

func TestTUI_SubmitWithSKey(t *testing.T) {
	app, src := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(false)
	d.PressKey('s')
	require.Len(t, src.submitted, 1)
	assert.Equal(t, []domain.Result{testutil.No("aaa")}, src.submitted[0])
}

func TestTUI_SubmitFailureKeepsState(t *testing.T) {
	app, src := scriptedApp(t)
	src.setSubmitErr(fmt.Errorf("%w: %w", checklist.ErrSubmitFailed, checklist.ErrSimulated))
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	d.PressDown()
	d.AnswerFocused(false)
	before := d.Answers()

	d.PressEnter()
	assert.Empty(t, src.submitted)
	assert.Equal(t, before, d.Answers())
	assert.Equal(t, 1, d.Focused())
	assert.False(t, d.Questionnaire().submitting)
	assert.Contains(t, d.View(), "Submission failed")

	// The notice stays until the next key press.
	d.PressUp()
	assert.NotContains(t, d.View(), "Submission failed")

	// The operator can retry once the backend recovers.
	src.setSubmitErr(nil)
	d.PressEnter()
	require.Len(t, src.submitted, 1)
}

func TestTUI_InputIgnoredWhileSubmitting(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(false)
	q := d.Questionnaire()
	q.submitting = true

	d.PressKey('1')
	d.ClickAnswer(0, true)
	v, _ := d.Answers().Get("aaa")
	assert.False(t, v)
	assert.Nil(t, q.startSubmit(), "a second submit never starts while one is in flight")
}

func TestTUI_FetchErrorAndRetry(t *testing.T) {
	app, src := scriptedApp(t)
	src.setFetchErr(fmt.Errorf("%w: %w", checklist.ErrFetchFailed, checklist.ErrSimulated))
	d := NewTestDriver(t, app)

	assert.Contains(t, d.View(), "Could not load checks")
	assert.Contains(t, d.View(), "Press r to retry")

	// Answer keys do nothing in the error state.
	d.AnswerFocused(true)
	assert.Empty(t, d.Answers())

	src.setFetchErr(nil)
	d.PressKey('r')
	assert.Equal(t, 2, src.fetches)
	assert.Nil(t, d.Questionnaire().fetchErr)
	assert.Equal(t, []string{"aaa"}, d.EnabledIDs())
}

func TestTUI_RetryDisabledWhileLoading(t *testing.T) {
	app, src := scriptedApp(t)
	src.setFetchErr(checklist.ErrFetchFailed)
	d := NewTestDriver(t, app)

	q := d.Questionnaire()
	q.loading = true
	d.PressKey('r')
	assert.Equal(t, 1, src.fetches)
	assert.Nil(t, q.startFetch())
}

func TestTUI_EmptyChecklist(t *testing.T) {
	app := testApp(t)
	app.Source = &scriptedSource{}
	d := NewTestDriver(t, app)

	assert.Contains(t, d.View(), "No verification options available.")
	d.AnswerFocused(true)
	d.PressEnter()
	assert.Empty(t, d.Answers())
}

func TestTUI_AnsweredRowsShowProgress(t *testing.T) {
	app, _ := scriptedApp(t)
	d := NewTestDriver(t, app)

	d.AnswerFocused(true)
	assert.Contains(t, d.View(), "1/4")
}

func TestTUI_HistoryViewPushAndBack(t *testing.T) {
	app, _ := scriptedApp(t)
	seedCatalogue(t, app)
	d := NewTestDriver(t, app)

	d.PressKey('h')
	assert.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "No submissions recorded yet.")
	assert.Contains(t, d.View(), "History")

	d.PressEsc()
	assert.Equal(t, ViewQuestionnaire, d.ActiveViewID())

	d.PressKey('h')
	d.SendKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, ViewQuestionnaire, d.ActiveViewID())
}

func TestTUI_HistoryUnavailableWithoutStore(t *testing.T) {
	app, _ := scriptedApp(t)
	app.Checks = nil
	d := NewTestDriver(t, app)

	d.PressKey('h')
	assert.Equal(t, ViewQuestionnaire, d.ActiveViewID())
}

func TestTUI_QuitKeys(t *testing.T) {
	app, _ := scriptedApp(t)

	d := NewTestDriver(t, app)
	d.PressKey('q')
	assert.True(t, d.IsQuitting())

	d = NewTestDriver(t, app)
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_WithMockSource(t *testing.T) {
	app := testApp(t)
	mock := checklist.NewMockSource(checklist.WithLatency(0), checklist.WithFailureRate(0))
	app.Source = mock
	d := NewTestDriver(t, app)

	d.ClickAnswer(0, false)
	d.PressEnter()
	assert.Equal(t, [][]domain.Result{{testutil.No("aaa")}}, mock.Submitted())
}
