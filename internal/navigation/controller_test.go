package navigation

import (
	"testing"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeChecks() []domain.Check {
	return []domain.Check{
		{ID: "aaa", Priority: 10, Description: "Face on the picture matches face on the document"},
		{ID: "ccc", Priority: 7, Description: "Face is clearly visible"},
		{ID: "bbb", Priority: 5, Description: "Veriff supports presented document"},
	}
}

func TestController_StartsAtZero(t *testing.T) {
	c := NewController()
	assert.Equal(t, 0, c.Focused())
}

func TestController_MovePreviousAtZeroIsNoop(t *testing.T) {
	c := NewController()
	answers := domain.Answers{"aaa": true, "ccc": false}

	got := c.Apply(MovePrevious, threeChecks(), answers)

	assert.Equal(t, 0, c.Focused())
	assert.Equal(t, answers, got)
}

func TestController_MoveNextThenPrevious(t *testing.T) {
	c := NewController()
	c.Apply(MoveNext, threeChecks(), nil)
	assert.Equal(t, 1, c.Focused())

	c.Apply(MovePrevious, threeChecks(), nil)
	assert.Equal(t, 0, c.Focused())
}

func TestController_MoveNextClampsAtLastEnabled(t *testing.T) {
	c := NewController()
	enabled := threeChecks()

	c.Apply(MoveNext, enabled, nil)
	c.Apply(MoveNext, enabled, nil)
	require.Equal(t, 2, c.Focused())

	c.Apply(MoveNext, enabled, nil)
	assert.Equal(t, 2, c.Focused())
}

func TestController_SelectYesAndNoWriteFocusedCheck(t *testing.T) {
	c := NewController()
	enabled := threeChecks()
	answers := domain.Answers{"aaa": true, "ccc": false}

	c.Apply(MoveNext, enabled, answers)
	c.Apply(MoveNext, enabled, answers)

	yes := c.Apply(SelectYes, enabled, answers)
	assert.Equal(t, domain.Answers{"aaa": true, "ccc": false, "bbb": true}, yes)

	no := c.Apply(SelectNo, enabled, answers)
	assert.Equal(t, domain.Answers{"aaa": true, "ccc": false, "bbb": false}, no)

	assert.Equal(t, domain.Answers{"aaa": true, "ccc": false}, answers, "input answers untouched")
}

func TestController_RepeatedSelectIsIdempotent(t *testing.T) {
	c := NewController()
	enabled := threeChecks()[:1]

	first := c.Apply(SelectYes, enabled, domain.Answers{})
	second := c.Apply(SelectYes, enabled, first)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, c.Focused())
}

func TestController_EmptyEnabledSetIgnoresEverything(t *testing.T) {
	c := NewController()
	for _, sig := range []Signal{MovePrevious, MoveNext, SelectYes, SelectNo} {
		got := c.Apply(sig, nil, domain.Answers{"aaa": true})
		assert.Equal(t, domain.Answers{"aaa": true}, got, sig.String())
		assert.Equal(t, 0, c.Focused())
	}
}

func TestController_UnknownSignalIgnored(t *testing.T) {
	c := NewController()
	answers := domain.Answers{}
	got := c.Apply(Signal(99), threeChecks(), answers)
	assert.Equal(t, answers, got)
	assert.Equal(t, 0, c.Focused())
	assert.Equal(t, "unknown", Signal(99).String())
}

func TestController_ClickSetsFocusAndAnswer(t *testing.T) {
	c := NewController()
	got := c.Click("ccc", 1, false, domain.Answers{"aaa": true})

	assert.Equal(t, 1, c.Focused())
	assert.Equal(t, domain.Answers{"aaa": true, "ccc": false}, got)
}

func TestController_ClampAfterShrink(t *testing.T) {
	c := NewController()
	enabled := threeChecks()
	c.Apply(MoveNext, enabled, nil)
	c.Apply(MoveNext, enabled, nil)
	require.Equal(t, 2, c.Focused())

	// The enabled set shrank to one check; the next signal sees a valid index.
	got := c.Apply(SelectNo, enabled[:1], domain.Answers{})
	assert.Equal(t, 0, c.Focused())
	assert.Equal(t, domain.Answers{"aaa": false}, got)
}

func TestController_Reset(t *testing.T) {
	c := NewController()
	c.Apply(MoveNext, threeChecks(), nil)
	c.Reset()
	assert.Equal(t, 0, c.Focused())
}
