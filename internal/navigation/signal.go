// Package navigation tracks which enabled check has keyboard focus and turns
// discrete input signals into focus moves or recorded answers.
package navigation

// Signal is a logical input event, independent of the raw key that caused it.
type Signal int

const (
	MovePrevious Signal = iota + 1
	MoveNext
	SelectYes
	SelectNo
)

func (s Signal) String() string {
	switch s {
	case MovePrevious:
		return "move-previous"
	case MoveNext:
		return "move-next"
	case SelectYes:
		return "select-yes"
	case SelectNo:
		return "select-no"
	default:
		return "unknown"
	}
}
