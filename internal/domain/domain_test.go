package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidate(t *testing.T) {
	cases := []struct {
		name    string
		check   Check
		wantErr bool
	}{
		{"valid", Check{ID: "aaa", Priority: 10, Description: "Face is visible"}, false},
		{"dotted id", Check{ID: "doc.front-1", Description: "Front side"}, false},
		{"missing id", Check{Description: "x"}, true},
		{"id with space", Check{ID: "a a", Description: "x"}, true},
		{"missing description", Check{ID: "aaa"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnswersWith_DoesNotMutateReceiver(t *testing.T) {
	orig := Answers{"aaa": true}
	next := orig.With("ccc", false)

	require.Len(t, orig, 1)
	_, ok := orig.Get("ccc")
	assert.False(t, ok)

	v, ok := next.Get("ccc")
	require.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, 2, next.Len())
}

func TestAnswersWith_NilReceiver(t *testing.T) {
	var a Answers
	next := a.With("aaa", true)
	assert.Equal(t, Answers{"aaa": true}, next)
	assert.Nil(t, a)
}

func TestResultFromBool(t *testing.T) {
	assert.Equal(t, ResultYes, ResultFromBool(true))
	assert.Equal(t, ResultNo, ResultFromBool(false))
	assert.True(t, ResultYes.Valid())
	assert.False(t, ResultValue("maybe").Valid())
}

func TestSubmissionCounts(t *testing.T) {
	s := &Submission{Results: []Result{
		{CheckID: "aaa", Result: ResultYes},
		{CheckID: "ccc", Result: ResultNo},
		{CheckID: "bbb", Result: ResultYes},
	}}
	yes, no := s.Counts()
	assert.Equal(t, 2, yes)
	assert.Equal(t, 1, no)
}
