package timer

import (
	"fmt"
	"io"
	"time"
)

// Notifier receives the end-of-phase cue. completed is true when the
// countdown expired naturally, false when the phase was skipped.
type Notifier interface {
	PhaseEnd(kind PhaseKind, completed bool)
}

// BellNotifier holds the frame briefly on every phase end and rings the
// terminal bell on natural completion only. Skips get the hold without the
// bell.
type BellNotifier struct {
	W     io.Writer
	Delay time.Duration
}

// PhaseEnd implements Notifier.
func (b BellNotifier) PhaseEnd(_ PhaseKind, completed bool) {
	time.Sleep(b.Delay)
	if completed && b.W != nil {
		fmt.Fprint(b.W, "\a")
	}
}

// NopNotifier discards all cues. Used by tests and the non-TTY fallback.
type NopNotifier struct{}

// PhaseEnd implements Notifier.
func (NopNotifier) PhaseEnd(PhaseKind, bool) {}
