package progression

import (
	"testing"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortByPriority_Descending(t *testing.T) {
	in := []domain.Check{
		{ID: "aaa", Priority: 10},
		{ID: "bbb", Priority: 5},
		{ID: "ccc", Priority: 7},
		{ID: "ddd", Priority: 3},
	}
	out := SortByPriority(in)
	assert.Equal(t, []string{"aaa", "ccc", "bbb", "ddd"}, ids(out))
	assert.Equal(t, "bbb", in[1].ID, "input must not be reordered")
}

func TestSortByPriority_TiesKeepArrivalOrder(t *testing.T) {
	in := []domain.Check{
		{ID: "first", Priority: 5},
		{ID: "top", Priority: 9},
		{ID: "second", Priority: 5},
		{ID: "third", Priority: 5},
	}
	assert.Equal(t, []string{"top", "first", "second", "third"}, ids(SortByPriority(in)))
}

func TestSortByPriority_Nil(t *testing.T) {
	assert.Nil(t, SortByPriority(nil))
	assert.Empty(t, SortByPriority([]domain.Check{}))
}

func TestAnswered_CarriesPositions(t *testing.T) {
	got := Answered(sortedChecks(), domain.Answers{"bbb": false, "aaa": true})
	if assert.Len(t, got, 2) {
		assert.Equal(t, "aaa", got[0].Check.ID)
		assert.Equal(t, 0, got[0].Position)
		assert.True(t, got[0].Value)
		assert.Equal(t, "bbb", got[1].Check.ID)
		assert.Equal(t, 2, got[1].Position)
		assert.False(t, got[1].Value)
	}
}
