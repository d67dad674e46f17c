// Package progression derives which checks an operator may answer and when
// the answers may be submitted. Every function is pure and total: a nil check
// list is treated as "no checks available yet".
package progression

import (
	"sort"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

// SortByPriority returns a copy of checks ordered by descending priority.
// Checks with equal priority keep their arrival order.
func SortByPriority(checks []domain.Check) []domain.Check {
	if checks == nil {
		return nil
	}
	out := make([]domain.Check, len(checks))
	copy(out, checks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// AnsweredCheck pairs a check with its answer and its position in the
// priority-ordered list.
type AnsweredCheck struct {
	Check    domain.Check
	Position int
	Value    bool
}

// Answered returns the answered checks in priority order. Insertion order of
// answers plays no part; ids that do not name a check are dropped.
func Answered(checks []domain.Check, answers domain.Answers) []AnsweredCheck {
	var out []AnsweredCheck
	for i, c := range checks {
		if v, ok := answers.Get(c.ID); ok {
			out = append(out, AnsweredCheck{Check: c, Position: i, Value: v})
		}
	}
	return out
}

// Progress returns how many checks have an answer and how many exist.
func Progress(checks []domain.Check, answers domain.Answers) (answered, total int) {
	return len(Answered(checks, answers)), len(checks)
}
