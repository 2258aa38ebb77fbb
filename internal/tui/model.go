package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/opomo/internal/timer"
)

// model is the bubbletea model for the countdown display. It owns the
// controller for the life of the program; every mutation goes through
// Controller.Step on the program goroutine.
type model struct {
	ctrl *timer.Controller
	snap timer.Snapshot

	pollInterval time.Duration
	bigDigits    bool

	gauge  progress.Model
	width  int
	height int
}

// newModel creates a model with a fresh snapshot of the controller.
func newModel(ctrl *timer.Controller, pollInterval time.Duration, bigDigits bool) model {
	return model{
		ctrl:         ctrl,
		snap:         ctrl.Snapshot(),
		pollInterval: pollInterval,
		bigDigits:    bigDigits,
		gauge:        progress.New(progress.WithDefaultGradient()),
	}
}

// step runs one controller tick and refreshes the render snapshot.
func (m *model) step(action timer.Action, now time.Time) {
	m.ctrl.Step(action, now)
	m.snap = m.ctrl.Snapshot()
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.doTick(),
		tea.EnterAltScreen,
	)
}

// Update and handleKey are implemented in update.go.
// View is implemented in view.go.
