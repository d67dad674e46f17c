package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// Header and status bar heights in lines. Mouse coordinates are translated
// by headerHeight before reaching a view.
const (
	headerHeight    = 2 // title + separator
	statusBarHeight = 2 // separator + hints
)

// ContentHeight returns the available height for view content.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerHeight - statusBarHeight
	if h < 1 {
		return 1
	}
	return h
}
