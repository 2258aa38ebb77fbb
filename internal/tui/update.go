package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/opomo/internal/timer"
)

// tickMsg is the loop heartbeat. Every heartbeat is one controller tick even
// when no key arrived, so countdown expiry and the shared run flag are
// observed within one poll interval.
type tickMsg time.Time

// doTick schedules the next heartbeat.
func (m model) doTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// mapKey translates a key press into a timer action. Unmapped keys are
// ActionNone.
func mapKey(msg tea.KeyMsg) timer.Action {
	switch msg.String() {
	case "p":
		return timer.ActionToggle
	case "s":
		return timer.ActionSkip
	case "q", "ctrl+c":
		return timer.ActionQuit
	default:
		return timer.ActionNone
	}
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gauge.Width = gaugeWidth(msg.Width)
		return m, nil

	case tickMsg:
		m.step(timer.ActionNone, time.Time(msg))
		if m.ctrl.Done() {
			return m, tea.Quit
		}
		return m, m.doTick()

	default:
		return m, nil
	}
}

// handleKey applies a mapped action as a full controller tick. The frame
// reflecting a quit-causing key is still drawn once before the program exits.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := mapKey(msg)
	if action == timer.ActionNone {
		return m, nil
	}

	m.step(action, time.Now())
	if m.ctrl.Done() {
		return m, tea.Quit
	}
	return m, nil
}
