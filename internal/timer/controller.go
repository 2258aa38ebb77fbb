package timer

import (
	"io"
	"log/slog"
	"time"

	"github.com/npratt/opomo/internal/config"
	"github.com/npratt/opomo/internal/shutdown"
)

// Controller owns the full run state: phase, countdown, cycle counters, and
// the end-state signal. All mutation happens through Step on a single
// goroutine; the only cross-thread state is the shared run flag.
type Controller struct {
	currentCycle int
	numCycles    int
	workTime     time.Duration
	breakTime    time.Duration
	phase        Phase
	state        TimerState
	end          EndState
	remaining    time.Duration
	late         bool

	running  *shutdown.Flag
	notifier Notifier
	logger   *slog.Logger
	err      error
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the end-of-phase cue sink.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithBell is shorthand for a BellNotifier writing to w.
func WithBell(w io.Writer, delay time.Duration) Option {
	return WithNotifier(BellNotifier{W: w, Delay: delay})
}

// WithLogger sets the structured logger for phase transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New builds a Controller from validated configuration. The run starts in
// the first work phase, counting down from now.
func New(cfg config.TimerConfig, running *shutdown.Flag, now time.Time, opts ...Option) *Controller {
	c := &Controller{
		currentCycle: 1,
		numCycles:    cfg.Cycles,
		workTime:     cfg.Work,
		breakTime:    cfg.Break,
		phase:        Phase{Kind: PhaseWork, Duration: cfg.Work},
		state:        RunningUntil(now.Add(cfg.Work)),
		remaining:    cfg.Work,
		late:         cfg.Late,
		running:      running,
		notifier:     NopNotifier{},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step runs one loop tick at now: observe the shared run flag, refresh the
// cached remainder, apply the polled action, then evaluate the completion
// and transition policy. It returns the end state after the tick.
func (c *Controller) Step(action Action, now time.Time) EndState {
	if c.end.Terminal() {
		return c.end
	}
	if !c.running.Running() {
		c.end = EndQuit
		return c.end
	}
	c.remaining = c.state.Remaining(now)
	c.apply(action, now)
	c.advance(now)
	return c.end
}

// Fail records a fatal input-subsystem error. The loop exits on the next
// evaluation; Err distinguishes this from a normal quit afterwards.
func (c *Controller) Fail(err error) {
	c.err = err
	c.end = EndErred
	c.running.Set(false)
	c.logger.Error("terminal input failed", "error", err)
}

// Err returns the error recorded by Fail, or nil after a normal run.
func (c *Controller) Err() error {
	return c.err
}

// Done reports whether the loop should stop ticking.
func (c *Controller) Done() bool {
	return c.end.Terminal()
}

func (c *Controller) apply(action Action, now time.Time) {
	switch action {
	case ActionToggle:
		c.state.TogglePause(now)
	case ActionSkip:
		c.end = EndSkipped
	case ActionQuit:
		c.running.Set(false)
		c.end = EndQuit
	case ActionNone:
	}
}

// advance detects natural expiry and runs the transition policy for a
// completed or skipped phase. The expiry check fires at most once per phase
// because the transition installs a fresh non-zero countdown.
func (c *Controller) advance(now time.Time) {
	if !c.state.Paused() && c.remaining == 0 && c.end == EndNone {
		c.end = EndCompleted
	}

	switch c.end {
	case EndCompleted:
		c.notifier.PhaseEnd(c.phase.Kind, true)
		c.transition(now)
	case EndSkipped:
		c.notifier.PhaseEnd(c.phase.Kind, false)
		c.transition(now)
	}
}

// transition replaces the finished phase per the terminal-cycle policy.
// Sequence: Work(1), Break(1), ..., Work(N), then Break(N) only when late.
// The cycle counter increments on the Break -> Work rollover only, so cycle
// N's work and trailing break are both labeled N.
func (c *Controller) transition(now time.Time) {
	switch c.phase.Kind {
	case PhaseWork:
		if c.currentCycle == c.numCycles && !c.late {
			c.end = EndQuit
			return
		}
		c.end = EndNone
		c.phase = Phase{Kind: PhaseBreak, Duration: c.breakTime}
		c.state = RunningUntil(now.Add(c.breakTime))
		c.remaining = c.breakTime
		c.logger.Debug("phase transition", "phase", "break", "cycle", c.currentCycle)
	case PhaseBreak:
		if c.currentCycle == c.numCycles {
			c.end = EndQuit
			return
		}
		c.end = EndNone
		c.phase = Phase{Kind: PhaseWork, Duration: c.workTime}
		c.state = RunningUntil(now.Add(c.workTime))
		c.remaining = c.workTime
		c.currentCycle++
		c.logger.Debug("phase transition", "phase", "work", "cycle", c.currentCycle)
	}
}
