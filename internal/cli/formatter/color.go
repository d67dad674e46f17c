package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#282828")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Answer button styles. Buttons never change width between states so mouse
// hit-testing can rely on fixed columns.
var (
	styleYesChosen = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorGreen).Bold(true)
	styleNoChosen  = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorRed).Bold(true)
	styleButton    = lipgloss.NewStyle().Foreground(ColorFg)
)

const (
	YesButtonLabel = "[yes]"
	NoButtonLabel  = "[no]"
)

// AnswerButtons renders the yes/no pair for a check. answered reports whether
// the check has an answer and value holds it. Disabled rows render dim.
func AnswerButtons(answered, value, disabled bool) string {
	yes := styleButton.Render(YesButtonLabel)
	no := styleButton.Render(NoButtonLabel)
	switch {
	case disabled:
		yes = StyleDim.Render(YesButtonLabel)
		no = StyleDim.Render(NoButtonLabel)
	case answered && value:
		yes = styleYesChosen.Render(YesButtonLabel)
	case answered && !value:
		no = styleNoChosen.Render(NoButtonLabel)
	}
	return yes + " " + no
}

// ResultPill returns a colored indicator for a submitted result.
func ResultPill(r domain.ResultValue) string {
	switch r {
	case domain.ResultYes:
		return StyleGreen.Render("✔ yes")
	case domain.ResultNo:
		return StyleRed.Render("✖ no")
	default:
		return StyleDim.Render(string(r))
	}
}

// PriorityBadge renders a check priority, brighter for higher values.
func PriorityBadge(p int) string {
	s := fmt.Sprintf("%d", p)
	switch {
	case p >= 8:
		return StyleHeader.Render(s)
	case p >= 5:
		return StyleYellow.Render(s)
	default:
		return StyleDim.Render(s)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
