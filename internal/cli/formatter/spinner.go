package formatter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// lineSpinner animates a single status line on a plain writer while a
// command waits on a checklist source. It draws the same frames as the TUI's
// bubbles spinner.
type lineSpinner struct {
	w       io.Writer
	message string
	style   spinner.Spinner

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newLineSpinner(w io.Writer, message string) *lineSpinner {
	return &lineSpinner{
		w:       w,
		message: message,
		style:   spinner.Dot,
		done:    make(chan struct{}),
	}
}

func (s *lineSpinner) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		fmt.Fprintf(s.w, "\r  %s %s", StylePurple.Render(s.style.Frames[frame%len(s.style.Frames)]), Dim(s.message))
		select {
		case <-ctx.Done():
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// stop is safe to call more than once; it returns after the line is cleared.
func (s *lineSpinner) stop() {
	s.once.Do(s.cancel)
	<-s.done
}

// StartSpinner shows message with an animated spinner on w until the
// returned func is called. With enabled false nothing is drawn, so piped
// output stays clean.
func StartSpinner(w io.Writer, message string, enabled bool) func() {
	if !enabled {
		return func() {}
	}
	s := newLineSpinner(w, message)
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx)
	return s.stop
}
