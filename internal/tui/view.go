package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/opomo/internal/timer"
)

const (
	minWidth  = 44
	minHeight = 12

	// fixedRows is everything except the timer panel: header, three
	// dividers, gauge bar, gauge label, footer.
	fixedRows = 7
)

// View implements tea.Model. Layout, top to bottom: status header, timer
// panel, progress gauge, key help.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	innerWidth := safeWidth(m.width - 2)
	timerRows := max(1, m.height-2-fixedRows)

	sections := []string{
		m.renderHeader(innerWidth),
		m.renderDivider(innerWidth),
		m.renderTimer(innerWidth, timerRows),
		m.renderDivider(innerWidth),
		m.renderGauge(innerWidth),
		m.renderDivider(innerWidth),
		m.renderFooter(innerWidth),
	}

	content := strings.Join(sections, "\n")

	rendered := styles.Container.
		Width(innerWidth).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, rendered)
}

// renderHeader renders app name, cycle progress, phase label, and the
// pause/late markers on one centered line.
func (m model) renderHeader(w int) string {
	parts := []string{
		styles.Title.Render(" opomo "),
		styles.Cycle.Render(fmt.Sprintf("Cycle %d/%d", m.snap.Cycle, m.snap.NumCycles)),
		m.renderPhaseLabel(),
	}

	if m.snap.Paused {
		parts = append(parts, styles.Paused.Render("(Paused)"))
	}
	if m.snap.Late {
		parts = append(parts, styles.LateTag.Render("w/ last break"))
	}

	line := strings.Join(parts, "  ")
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, line)
}

// renderPhaseLabel renders the phase name in its phase color.
func (m model) renderPhaseLabel() string {
	label := m.snap.Phase.Kind.String()
	if m.snap.Phase.Kind == timer.PhaseBreak {
		return styles.Break.Render(label)
	}
	return styles.Work.Render(label)
}

// renderTimer renders the countdown panel: block glyphs when enabled and the
// panel is tall enough, plain MM:SS otherwise. Content is centered both ways.
func (m model) renderTimer(w, rows int) string {
	timeStr := formatMMSS(m.snap.Remaining)

	var content []string
	if m.bigDigits && rows >= bigHeight {
		content = bigTimeLines(timeStr)
	} else {
		content = []string{styles.Timer.Render(timeStr)}
	}

	padTop := max(0, (rows-len(content))/2)

	lines := make([]string, 0, rows)
	for i := 0; i < padTop; i++ {
		lines = append(lines, "")
	}
	for _, line := range content {
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center, line))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	return strings.Join(lines[:rows], "\n")
}

// renderGauge renders the elapsed/total progress bar with its label line.
func (m model) renderGauge(w int) string {
	bar := m.gauge.ViewAs(m.snap.Progress())

	elapsed := m.snap.Phase.Duration - m.snap.Remaining
	label := fmt.Sprintf("%s / %s", formatMMSS(elapsed), formatMMSS(m.snap.Phase.Duration))

	return lipgloss.PlaceHorizontal(w, lipgloss.Center, bar) + "\n" +
		lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.GaugeLbl.Render(label))
}

// renderDivider renders a horizontal divider line.
func (m model) renderDivider(w int) string {
	return styles.Divider.Render(strings.Repeat("─", w))
}

// renderFooter renders keyboard shortcuts help text.
func (m model) renderFooter(w int) string {
	help := "p pause/resume   s skip   q quit"
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.Footer.Render(help))
}

// renderTooSmall renders a minimal message for terminals that are too small.
func (m model) renderTooSmall() string {
	return fmt.Sprintf("Terminal too small (%dx%d). Need %dx%d minimum.",
		m.width, m.height, minWidth, minHeight)
}

// gaugeWidth returns the progress bar width for a terminal width.
func gaugeWidth(termWidth int) int {
	return max(10, termWidth-8)
}

// safeWidth returns a width that is at least 1 to prevent negative values.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
