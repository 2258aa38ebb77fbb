package tui

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/npratt/opomo/internal/timer"
)

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// runSimple provides line-by-line output for non-interactive environments.
// There is no raw keyboard input here, so the run plays through on its own;
// an interrupt signal still ends it via the shared run flag within one poll
// interval.
func (t *TUI) runSimple() error {
	announce(t.ctrl.Snapshot())

	for !t.ctrl.Done() {
		time.Sleep(t.pollInterval)

		before := t.ctrl.Snapshot()
		t.ctrl.Step(timer.ActionNone, time.Now())
		after := t.ctrl.Snapshot()

		if after.End.Terminal() {
			break
		}
		if after.Phase != before.Phase || after.Cycle != before.Cycle {
			announce(after)
		}
	}

	return t.ctrl.Err()
}

// announce prints one line for a phase start.
func announce(s timer.Snapshot) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s %s %s (cycle %d/%d)\n",
		timestamp, s.Phase.Kind, formatMMSS(s.Phase.Duration), s.Cycle, s.NumCycles)
}
