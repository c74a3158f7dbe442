package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/idswatch/internal/alert"
)

// headerHeight is the number of lines above the panel grid
const headerHeight = 3

// View renders the TUI interface
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch {
	case m.notice != nil:
		return m.renderNotice()
	case m.confirmClear:
		return m.renderConfirm()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFourPanelView(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// renderFourPanelView renders the four-panel grid layout
func (m Model) renderFourPanelView() string {
	leftWidth, rightWidth := m.columnWidths()
	topHeight, bottomHeight := m.rowHeights()

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderFeedPanel(leftWidth, topHeight),
		m.renderStatsPanel(rightWidth, topHeight),
	)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGraphPanel(leftWidth, bottomHeight),
		m.renderAttackPanel(rightWidth, bottomHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)
}

// renderNotice centres the blocking message box
func (m Model) renderNotice() string {
	var title string
	color := lipgloss.Color("#F38BA8")
	switch m.notice.kind {
	case alert.Success:
		title, color = "✓ Success", lipgloss.Color("#A6E3A1")
	case alert.Info:
		title, color = "ℹ Info", lipgloss.Color("#89B4FA")
	default:
		title = "✗ Error"
	}

	body := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title) + "\n\n" +
		m.notice.text + "\n\n" +
		helpStyle.Render("[enter] OK")

	box := noticeStyle.BorderForeground(color).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderConfirm asks before clearing the statistics
func (m Model) renderConfirm() string {
	body := titleStyle.Render("Clear all statistics?") + "\n\n" +
		helpStyle.Render("[y] yes  [n] no")

	box := noticeStyle.BorderForeground(lipgloss.Color("#FAB387")).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHeader shows the session status, the interface selector and the controls
func (m Model) renderHeader() string {
	status := idleStyle.Render("○ System Idle")
	if m.session.IsCapturing() {
		status = activeStyle.Render("● Monitoring Active")
	}

	top := strings.Join([]string{
		titleStyle.Render("🛡 IDS Monitor"),
		status,
		counterLabelStyle.Render("Uptime ") + counterValueStyle.Render(m.uptime),
	}, "   ")

	controls := strings.Join([]string{
		control("s", "Start", m.keys.Start.Enabled() && !m.pending),
		control("x", "Stop", m.keys.Stop.Enabled() && !m.pending),
		control("c", "Clear", !m.pending),
		control("a", "Test Alert", true),
	}, " ")

	bottom := m.renderSelector() + "   " + controls
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, "")
}

// renderSelector draws the interface options with the current one highlighted
func (m Model) renderSelector() string {
	parts := make([]string, len(m.options))
	for i, opt := range m.options {
		switch {
		case opt.Disabled:
			parts[i] = disabledStyle.Render(opt.Label)
		case i == m.selected:
			parts[i] = selectedStyle.Render(" " + opt.Label + " ")
		default:
			parts[i] = opt.Label
		}
	}

	// Selection is fixed while a session runs
	label := "Interface ◂ "
	if m.session.IsCapturing() {
		label = "Interface   "
	}
	return counterLabelStyle.Render(label) + strings.Join(parts, " ") + counterLabelStyle.Render(" ▸")
}

func control(k, label string, enabled bool) string {
	text := "[" + k + "] " + label
	if !enabled {
		return disabledStyle.Render(text)
	}
	return headerStyle.Render(" " + text + " ")
}
