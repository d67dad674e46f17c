package domain

import (
	"fmt"
	"regexp"
)

var checkIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Check is a single verification question. Checks are immutable once fetched.
type Check struct {
	ID          string `json:"id" yaml:"id"`
	Priority    int    `json:"priority" yaml:"priority"`
	Description string `json:"description" yaml:"description"`
}

// Validate checks that the check can be stored and answered.
func (c Check) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("check id is required")
	}
	if !checkIDPattern.MatchString(c.ID) {
		return fmt.Errorf("check id %q must be letters, digits, '.', '_' or '-'", c.ID)
	}
	if c.Description == "" {
		return fmt.Errorf("check %q: description is required", c.ID)
	}
	return nil
}
