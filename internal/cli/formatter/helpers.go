package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content with a rounded border. A non-empty title is
// printed in capitals above the content.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleHeader.Render(strings.ToUpper(title)),
		"",
		content,
	))
}

// HumanTimestamp describes t relative to now: minutes or hours ago within the
// last day, otherwise a calendar date.
func HumanTimestamp(t, now time.Time) string {
	if d := now.Sub(t); d >= 0 && d < 24*time.Hour {
		switch {
		case d < time.Minute:
			return "Just now"
		case d < time.Hour:
			return fmt.Sprintf("%dm ago", int(d/time.Minute))
		default:
			return fmt.Sprintf("%dh ago", int(d/time.Hour))
		}
	}
	return humanDate(t, now)
}

func humanDate(t, now time.Time) string {
	switch daysBetween(t, now) {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// daysBetween counts calendar days from t to now in now's location.
func daysBetween(t, now time.Time) int {
	midnight := func(x time.Time) time.Time {
		y, m, d := x.In(now.Location()).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return int(midnight(now).Sub(midnight(t)) / (24 * time.Hour))
}

// TruncID shortens a submission id to its first 8 characters, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most width visible cells, adding an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
