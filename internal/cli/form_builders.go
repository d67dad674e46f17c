package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// checkpointHuhTheme returns a custom huh theme using the Gruvbox palette.
func checkpointHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// checkFormFields holds the raw string values bound to the check form.
type checkFormFields struct {
	ID          string
	Priority    string
	Description string
}

func (f checkFormFields) check() (domain.Check, error) {
	p, err := strconv.Atoi(strings.TrimSpace(f.Priority))
	if err != nil {
		return domain.Check{}, errors.New("priority must be a whole number")
	}
	c := domain.Check{
		ID:          strings.TrimSpace(f.ID),
		Priority:    p,
		Description: strings.TrimSpace(f.Description),
	}
	return c, c.Validate()
}

// checkForm returns a themed form collecting one check.
func checkForm(f *checkFormFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Check ID").
				Placeholder("aaa").
				Value(&f.ID).
				Validate(validateCheckID),
			huh.NewInput().
				Title("Priority").
				Description("Higher priorities are asked first.").
				Placeholder("10").
				Value(&f.Priority).
				Validate(validateInt),
			huh.NewText().
				Title("Description").
				Value(&f.Description).
				Validate(validateRequired),
		),
	).WithTheme(checkpointHuhTheme()).WithShowHelp(false)
}

func validateCheckID(s string) error {
	return (domain.Check{ID: strings.TrimSpace(s), Description: "-"}).Validate()
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("must be a whole number")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}
