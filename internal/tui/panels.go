package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rusenback/idswatch/internal/tui/views"
)

// renderFeedPanel renders the live packet feed
func (m Model) renderFeedPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("📡 Live Packets") + "\n\n")

	if m.feed.ShowsPlaceholder() {
		s.WriteString(stylePlaceholder(m.feed.Placeholder))
	} else {
		for _, e := range m.feed.Entries {
			s.WriteString(stylePacketEntry(e, width-6) + "\n")
		}
	}

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}

// renderStatsPanel renders the counters and the resource gauges
func (m Model) renderStatsPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("📊 Statistics") + "\n\n")

	s.WriteString(counterLine("Total Packets", counterValueStyle.Render(m.counters.Total)))
	s.WriteString(counterLine("Normal Traffic", counterValueStyle.Render(m.counters.Normal)))
	s.WriteString(counterLine("Attacks Detected", attackValueStyle.Render(m.counters.Attacks)))
	s.WriteString(counterLine("Uptime", counterValueStyle.Render(m.uptime)))
	s.WriteString("\n")

	barWidth := width - 8
	s.WriteString(views.RenderGauge("CPU", m.gauges.CPU, barWidth) + "\n\n")
	s.WriteString(views.RenderGauge("Memory", m.gauges.Memory, barWidth))

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}

func counterLine(label, value string) string {
	return fmt.Sprintf("%s %s\n", counterLabelStyle.Render(fmt.Sprintf("%-17s", label+":")), value)
}

// renderGraphPanel renders the resource history graph
func (m Model) renderGraphPanel(width, height int) string {
	var content string

	if m.storage == nil {
		content = graphTitleStyle.Render("📈 Backend Resources") + "\n\nHistory unavailable"
	} else {
		points, err := m.storage.Query(m.timeRange)
		if err != nil {
			content = graphTitleStyle.Render("📈 Backend Resources") + "\n\n" + truncate("Error: "+err.Error(), width-6)
		} else {
			content = renderResourceGraph(points, width-4, height-2, m.timeRange, time.Now())
		}
	}

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(content)
}

// renderAttackPanel renders the attack log, or the full history overlay
func (m Model) renderAttackPanel(width, height int) string {
	var s strings.Builder

	switch {
	case m.history != nil:
		s.WriteString(titleStyle.Render(fmt.Sprintf("🚨 Attack History (%d)", len(m.history.Entries))))
		s.WriteString(helpStyle.Render("  [h] back") + "\n\n")
	case m.historyLoading:
		s.WriteString(titleStyle.Render("🚨 Attack Log") + helpStyle.Render("  loading history...") + "\n\n")
	default:
		s.WriteString(titleStyle.Render("🚨 Attack Log") + "\n\n")
	}

	s.WriteString(m.attackView.View())

	if !m.attackView.AtTop() || !m.attackView.AtBottom() {
		s.WriteString(helpStyle.Render(fmt.Sprintf("\n%3.0f%% PgUp/PgDown:scroll", m.attackView.ScrollPercent()*100)))
	}

	return panelStyle.
		Width(width - 4).
		Height(height - 2).
		Render(s.String())
}
