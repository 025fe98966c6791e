package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer is written by spinner goroutines and read by tests.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureStatus redirects status output for the duration of the test.
func captureStatus(t *testing.T) *lockedBuffer {
	t.Helper()
	buf := &lockedBuffer{}
	prev := statusOut
	statusOut = buf
	t.Cleanup(func() { statusOut = prev })
	return buf
}

func TestSpinnerDrawsLabelImmediately(t *testing.T) {
	out := captureStatus(t)

	sp := startSpinner(context.Background(), "Generating 20 records")
	sp.stop()

	if !strings.Contains(out.String(), "Generating 20 records") {
		t.Errorf("first frame missing label: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\r") {
		t.Errorf("stop should leave a cleared line, got %q", out.String())
	}
}

func TestSpinnerStep(t *testing.T) {
	out := captureStatus(t)

	sp := startSpinner(context.Background(), "Rendering graphs")
	for n, base := range []string{"g-0", "g-1", "t-0"} {
		sp.step("Rendering "+base, n+1, 3)
	}
	sp.stop()

	for _, want := range []string{"Rendering g-0 (1/3)", "Rendering g-1 (2/3)", "Rendering t-0 (3/3)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	captureStatus(t)
	ctx, cancel := context.WithCancel(context.Background())

	sp := startSpinner(ctx, "Rendering graphs")
	cancel()

	select {
	case <-sp.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after its context was cancelled")
	}
	sp.stop()
	sp.step("Rendering g", 1, 1)
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureStatus(t)
	sp := startSpinner(context.Background(), "Rendering graphs")
	sp.stop()
	sp.stop()
}

func TestSpinnerOutcome(t *testing.T) {
	tests := []struct {
		name   string
		finish func(*spinner)
		want   string
	}{
		{"succeed", func(s *spinner) { s.succeed("Rendered %s", plural(2, "drawing")) }, iconSuccess + " Rendered 2 drawings"},
		{"fail", func(s *spinner) { s.fail("Rendering %s failed", "g") }, iconError + " Rendering g failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStatus(t)
			sp := startSpinner(context.Background(), "Rendering graphs")
			tt.finish(sp)
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}
