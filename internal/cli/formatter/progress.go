package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders answered-out-of-total as a bar like [████░░░░] 2/4.
// The bar is green once complete and yellow while partial.
func RenderProgress(answered, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total < 0 {
		total = 0
	}
	answered = max(0, min(answered, total))

	filled := 0
	if total > 0 {
		filled = answered * width / total
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case total > 0 && answered == total:
		style = StyleGreen
	case answered == 0:
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), answered, total)
}
