// Package timer implements the phase/timer state machine for opomo:
// alternating work/break countdowns with pause, skip, and quit.
package timer

import "time"

// PhaseKind identifies the current activity.
type PhaseKind int

const (
	// PhaseWork is a work countdown.
	PhaseWork PhaseKind = iota
	// PhaseBreak is a break countdown.
	PhaseBreak
)

// String returns the display label for the phase.
func (k PhaseKind) String() string {
	switch k {
	case PhaseWork:
		return "Work"
	case PhaseBreak:
		return "Break"
	default:
		return "unknown"
	}
}

// Phase is a labeled countdown interval with its total configured duration.
// Phases are immutable; transitions replace the whole value.
type Phase struct {
	Kind     PhaseKind
	Duration time.Duration
}

// TimerState is either counting down toward an end instant or paused with a
// frozen remaining duration. Exactly one of the two is active.
type TimerState struct {
	paused    bool
	end       time.Time     // countdown target while running
	remaining time.Duration // frozen remainder while paused
}

// RunningUntil returns a counting-down state that expires at end.
func RunningUntil(end time.Time) TimerState {
	return TimerState{end: end}
}

// PausedWith returns a paused state holding the given remainder.
func PausedWith(remaining time.Duration) TimerState {
	return TimerState{paused: true, remaining: remaining}
}

// Paused reports whether the countdown is frozen.
func (s TimerState) Paused() bool {
	return s.paused
}

// Remaining returns the time left at now. It is a pure query and saturates
// at zero once now passes the end instant.
func (s TimerState) Remaining(now time.Time) time.Duration {
	if s.paused {
		return s.remaining
	}
	d := s.end.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// TogglePause flips between running and paused at now. Running captures the
// saturated remainder; paused resumes with end = now + remainder. Repeated
// pause/resume preserves the remainder captured at the most recent pause.
func (s *TimerState) TogglePause(now time.Time) {
	if s.paused {
		*s = RunningUntil(now.Add(s.remaining))
		return
	}
	*s = PausedWith(s.Remaining(now))
}

// Action is a user intent decoded from one input poll.
type Action int

const (
	// ActionNone is the steady-state no-op (no input this tick).
	ActionNone Action = iota
	// ActionToggle flips pause/resume.
	ActionToggle
	// ActionSkip abandons the current phase early.
	ActionSkip
	// ActionQuit ends the run.
	ActionQuit
)

// EndState is the termination/transition signal produced by one tick.
type EndState int

const (
	// EndNone is the steady state during a normal countdown.
	EndNone EndState = iota
	// EndCompleted marks a countdown that expired naturally.
	EndCompleted
	// EndSkipped marks a phase abandoned by the skip action.
	EndSkipped
	// EndErred marks a fatal input-subsystem failure.
	EndErred
	// EndQuit is the absorbing terminal state.
	EndQuit
)

// Terminal reports whether the loop should stop. Erred terminates like Quit
// but stays distinguishable for post-loop reporting.
func (e EndState) Terminal() bool {
	return e == EndQuit || e == EndErred
}

// String returns a short name for logging.
func (e EndState) String() string {
	switch e {
	case EndNone:
		return "none"
	case EndCompleted:
		return "completed"
	case EndSkipped:
		return "skipped"
	case EndErred:
		return "erred"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}
