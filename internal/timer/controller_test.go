package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/npratt/opomo/internal/config"
	"github.com/npratt/opomo/internal/shutdown"
)

var testBase = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// cueCall records one Notifier invocation.
type cueCall struct {
	kind      PhaseKind
	completed bool
}

type recordingNotifier struct {
	calls []cueCall
}

func (r *recordingNotifier) PhaseEnd(kind PhaseKind, completed bool) {
	r.calls = append(r.calls, cueCall{kind: kind, completed: completed})
}

func newTestController(cycles int, late bool) (*Controller, *shutdown.Flag, *recordingNotifier) {
	cfg := config.TimerConfig{
		Work:   25 * time.Minute,
		Break:  5 * time.Minute,
		Cycles: cycles,
		Late:   late,
	}
	flag := shutdown.NewFlag()
	rec := &recordingNotifier{}
	return New(cfg, flag, testBase, WithNotifier(rec)), flag, rec
}

// runToEnd drives the controller through natural expiries until it reaches a
// terminal state, returning the observed phase sequence. Each phase is
// expired by stepping exactly at its end instant.
func runToEnd(t *testing.T, c *Controller) []Snapshot {
	t.Helper()

	now := testBase
	var seen []Snapshot
	for i := 0; i < 50; i++ {
		snap := c.Snapshot()
		seen = append(seen, snap)
		now = now.Add(snap.Remaining)
		if c.Step(ActionNone, now).Terminal() {
			return seen
		}
	}
	t.Fatal("controller did not terminate within 50 phases")
	return nil
}

func phaseLabels(snaps []Snapshot) []string {
	var labels []string
	for _, s := range snaps {
		labels = append(labels, s.Phase.Kind.String())
	}
	return labels
}

func TestController_InitialState(t *testing.T) {
	c, _, _ := newTestController(4, false)
	snap := c.Snapshot()

	if snap.Phase.Kind != PhaseWork {
		t.Errorf("initial phase = %v, want Work", snap.Phase.Kind)
	}
	if snap.Cycle != 1 {
		t.Errorf("initial cycle = %d, want 1", snap.Cycle)
	}
	if snap.Remaining != 25*time.Minute {
		t.Errorf("initial remaining = %v, want 25m", snap.Remaining)
	}
	if snap.End != EndNone {
		t.Errorf("initial end state = %v, want none", snap.End)
	}
	if snap.Paused {
		t.Error("initial state should not be paused")
	}
}

func TestController_SingleCycleNoLate(t *testing.T) {
	c, _, rec := newTestController(1, false)

	// Single work phase runs to completion: no break is ever entered.
	end := c.Step(ActionNone, testBase.Add(25*time.Minute))

	if end != EndQuit {
		t.Errorf("end state = %v, want quit", end)
	}
	if got := c.Snapshot().Phase.Kind; got != PhaseWork {
		t.Errorf("final phase = %v, want Work (no break entered)", got)
	}
	if len(rec.calls) != 1 || rec.calls[0] != (cueCall{PhaseWork, true}) {
		t.Errorf("cue calls = %v, want one completed Work cue", rec.calls)
	}
}

func TestController_TwoCyclesNoLate(t *testing.T) {
	c, _, _ := newTestController(2, false)

	snaps := runToEnd(t, c)

	want := []string{"Work", "Break", "Work"}
	got := phaseLabels(snaps)
	if len(got) != len(want) {
		t.Fatalf("phase sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("phase sequence = %v, want %v", got, want)
		}
	}

	// Work(1), Break(1), Work(2); Break(2) never runs without late.
	wantCycles := []int{1, 1, 2}
	for i, s := range snaps {
		if s.Cycle != wantCycles[i] {
			t.Errorf("phase %d cycle = %d, want %d", i, s.Cycle, wantCycles[i])
		}
	}
}

func TestController_LateBreakRunsThroughFinalBreak(t *testing.T) {
	c, _, _ := newTestController(2, true)

	snaps := runToEnd(t, c)

	want := []string{"Work", "Break", "Work", "Break"}
	got := phaseLabels(snaps)
	if len(got) != len(want) {
		t.Fatalf("phase sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("phase sequence = %v, want %v", got, want)
		}
	}

	// The trailing break is still labeled cycle 2.
	if last := snaps[len(snaps)-1]; last.Cycle != 2 {
		t.Errorf("final break cycle = %d, want 2", last.Cycle)
	}
}

func TestController_PhaseCounts(t *testing.T) {
	tests := []struct {
		name       string
		cycles     int
		late       bool
		wantWorks  int
		wantBreaks int
	}{
		{"1 cycle", 1, false, 1, 0},
		{"1 cycle late", 1, true, 1, 1},
		{"3 cycles", 3, false, 3, 2},
		{"3 cycles late", 3, true, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(tt.cycles, tt.late)
			snaps := runToEnd(t, c)

			works, breaks := 0, 0
			for _, s := range snaps {
				switch s.Phase.Kind {
				case PhaseWork:
					works++
				case PhaseBreak:
					breaks++
				}
			}
			if works != tt.wantWorks || breaks != tt.wantBreaks {
				t.Errorf("got %d work / %d break phases, want %d / %d",
					works, breaks, tt.wantWorks, tt.wantBreaks)
			}
		})
	}
}

func TestController_SkipWorkEntersBreakSameCycle(t *testing.T) {
	c, _, rec := newTestController(3, false)

	end := c.Step(ActionSkip, testBase.Add(time.Minute))

	if end != EndNone {
		t.Errorf("end state = %v, want none (transition consumed the skip)", end)
	}
	snap := c.Snapshot()
	if snap.Phase.Kind != PhaseBreak {
		t.Errorf("phase after skip = %v, want Break", snap.Phase.Kind)
	}
	if snap.Phase.Duration != 5*time.Minute {
		t.Errorf("break duration = %v, want 5m", snap.Phase.Duration)
	}
	if snap.Cycle != 1 {
		t.Errorf("cycle after skip = %d, want 1 (unchanged)", snap.Cycle)
	}
	if len(rec.calls) != 1 || rec.calls[0] != (cueCall{PhaseWork, false}) {
		t.Errorf("cue calls = %v, want one skipped Work cue", rec.calls)
	}
}

func TestController_SkipFinalWorkNoLateQuits(t *testing.T) {
	c, _, _ := newTestController(1, false)

	if end := c.Step(ActionSkip, testBase.Add(time.Minute)); end != EndQuit {
		t.Errorf("end state = %v, want quit", end)
	}
}

func TestController_QuitActionClearsRunFlag(t *testing.T) {
	c, flag, _ := newTestController(4, false)

	end := c.Step(ActionQuit, testBase.Add(time.Second))

	if end != EndQuit {
		t.Errorf("end state = %v, want quit", end)
	}
	if flag.Running() {
		t.Error("run flag should be cleared by quit action")
	}
	if !c.Done() {
		t.Error("controller should be done after quit")
	}
}

func TestController_ExternalFlagClearQuits(t *testing.T) {
	c, flag, _ := newTestController(4, false)

	flag.Set(false)

	if end := c.Step(ActionNone, testBase.Add(time.Second)); end != EndQuit {
		t.Errorf("end state = %v, want quit after external flag clear", end)
	}
}

func TestController_QuitIsAbsorbing(t *testing.T) {
	c, _, _ := newTestController(4, false)
	c.Step(ActionQuit, testBase)

	// Further ticks, including ones that would otherwise expire the phase,
	// never leave quit.
	for _, a := range []Action{ActionNone, ActionToggle, ActionSkip, ActionQuit} {
		if end := c.Step(a, testBase.Add(time.Hour)); end != EndQuit {
			t.Errorf("Step(%v) after quit = %v, want quit", a, end)
		}
	}
}

func TestController_PauseFreezesCountdown(t *testing.T) {
	c, _, _ := newTestController(4, false)

	// Pause 10 minutes in, with 15m remaining.
	c.Step(ActionToggle, testBase.Add(10*time.Minute))
	if snap := c.Snapshot(); !snap.Paused {
		t.Fatal("should be paused after toggle")
	}

	// An hour later the remainder is unchanged and no completion fired.
	end := c.Step(ActionNone, testBase.Add(70*time.Minute))
	snap := c.Snapshot()
	if snap.Remaining != 15*time.Minute {
		t.Errorf("remaining while paused = %v, want 15m", snap.Remaining)
	}
	if end != EndNone {
		t.Errorf("end state while paused = %v, want none", end)
	}

	// Resume: the countdown picks up from the frozen remainder.
	c.Step(ActionToggle, testBase.Add(70*time.Minute))
	c.Step(ActionNone, testBase.Add(71*time.Minute))
	if got := c.Snapshot().Remaining; got != 14*time.Minute {
		t.Errorf("remaining 1m after resume = %v, want 14m", got)
	}
}

func TestController_CompletionFiresOncePerPhase(t *testing.T) {
	c, _, rec := newTestController(2, false)

	// Expire the first work phase, then tick again immediately: the fresh
	// break countdown must not re-complete.
	now := testBase.Add(25 * time.Minute)
	c.Step(ActionNone, now)
	c.Step(ActionNone, now.Add(100*time.Millisecond))

	if len(rec.calls) != 1 {
		t.Errorf("cue calls = %v, want exactly one", rec.calls)
	}
	if got := c.Snapshot().Phase.Kind; got != PhaseBreak {
		t.Errorf("phase = %v, want Break", got)
	}
}

func TestController_FailRecordsErrorAndStops(t *testing.T) {
	c, flag, _ := newTestController(4, false)
	inputErr := errors.New("read /dev/tty: input/output error")

	c.Fail(inputErr)

	if !c.Done() {
		t.Error("controller should be done after Fail")
	}
	if c.Snapshot().End != EndErred {
		t.Errorf("end state = %v, want erred", c.Snapshot().End)
	}
	if !errors.Is(c.Err(), inputErr) {
		t.Errorf("Err() = %v, want %v", c.Err(), inputErr)
	}
	if flag.Running() {
		t.Error("run flag should be cleared on failure")
	}

	// Erred is terminal like quit, but stays distinguishable.
	if end := c.Step(ActionNone, testBase.Add(time.Second)); end != EndErred {
		t.Errorf("Step after Fail = %v, want erred", end)
	}
}

func TestController_BellOnlyOnNaturalCompletion(t *testing.T) {
	c, _, rec := newTestController(3, false)

	// Skip the first work phase, then let the break expire naturally.
	c.Step(ActionSkip, testBase.Add(time.Minute))
	c.Step(ActionNone, testBase.Add(6*time.Minute))

	if len(rec.calls) != 2 {
		t.Fatalf("cue calls = %v, want 2", rec.calls)
	}
	if rec.calls[0].completed {
		t.Error("skip cue should not be marked completed")
	}
	if !rec.calls[1].completed {
		t.Error("natural expiry cue should be marked completed")
	}
}
