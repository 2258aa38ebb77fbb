// Package tui renders the opomo countdown using bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/opomo/internal/timer"
)

// TUI drives the timer controller and draws one frame per tick.
type TUI struct {
	ctrl         *timer.Controller
	pollInterval time.Duration
	bigDigits    bool
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI around an already-constructed controller.
func New(ctrl *timer.Controller, opts ...Option) *TUI {
	t := &TUI{
		ctrl:         ctrl,
		pollInterval: 100 * time.Millisecond,
		bigDigits:    true,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithPollInterval sets the loop heartbeat. The interval bounds how quickly
// input, signals, and countdown expiry are observed.
func WithPollInterval(d time.Duration) Option {
	return func(t *TUI) {
		if d > 0 {
			t.pollInterval = d
		}
	}
}

// WithBigDigits toggles the block-glyph countdown.
func WithBigDigits(enabled bool) Option {
	return func(t *TUI) {
		t.bigDigits = enabled
	}
}

// Run blocks until the timer run ends. Without a TTY it falls back to
// line-by-line output. A program failure is recorded on the controller as a
// fatal input error and returned.
func (t *TUI) Run() error {
	if !isTerminal() {
		return t.runSimple()
	}

	m := newModel(t.ctrl, t.pollInterval, t.bigDigits)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		t.ctrl.Fail(err)
		return err
	}
	return t.ctrl.Err()
}
