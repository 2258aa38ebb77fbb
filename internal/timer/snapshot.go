package timer

import "time"

// Snapshot is the read-only view of the controller handed to renderers once
// per tick. It carries everything needed to draw cycle progress, the phase
// label, a pause indicator, and the countdown.
type Snapshot struct {
	Cycle     int
	NumCycles int
	Phase     Phase
	Paused    bool
	Remaining time.Duration
	End       EndState
	Late      bool
}

// Snapshot returns the current render view.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Cycle:     c.currentCycle,
		NumCycles: c.numCycles,
		Phase:     c.phase,
		Paused:    c.state.Paused(),
		Remaining: c.remaining,
		End:       c.end,
		Late:      c.late,
	}
}

// Progress returns the elapsed/total ratio for the current phase, clamped to
// [0, 1]. A zero-length phase reports 0 (cannot occur with validated config).
func (s Snapshot) Progress() float64 {
	total := s.Phase.Duration.Seconds()
	if total <= 0 {
		return 0
	}
	elapsed := total - s.Remaining.Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	ratio := elapsed / total
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
