package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates one status line on statusOut while a slow step runs,
// such as rendering graph fields or generating a large batch. Its label can
// be replaced while it runs to count progress ("Rendering g (2/5)").
type spinner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	label string
	frame int
	width int // widest line drawn so far
}

// startSpinner draws the first frame and animates until stop is called or
// ctx is cancelled.
func startSpinner(ctx context.Context, label string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		label:   label,
	}
	s.draw()
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			s.clear()
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame++
			s.mu.Unlock()
			s.draw()
		}
	}
}

// step replaces the label with "<label> (<n>/<total>)" and redraws at once.
func (s *spinner) step(label string, n, total int) {
	s.mu.Lock()
	s.label = fmt.Sprintf("%s (%d/%d)", label, n, total)
	s.mu.Unlock()
	s.draw()
}

func (s *spinner) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	s.width = max(s.width, len(s.label)+2)
	fmt.Fprintf(statusOut, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(statusOut, "\r%s\r", strings.Repeat(" ", s.width))
}

// stop ends the animation and clears the line. It is safe to call more than
// once.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
	})
}

// succeed stops the spinner and replaces it with a success line.
func (s *spinner) succeed(format string, args ...any) {
	s.stop()
	printSuccess(format, args...)
}

// fail stops the spinner and replaces it with an error line.
func (s *spinner) fail(format string, args ...any) {
	s.stop()
	printError(format, args...)
}
