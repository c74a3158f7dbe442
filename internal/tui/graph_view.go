package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/idswatch/internal/storage"
)

var (
	graphTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))
	graphAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	cpuGraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	memGraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	bothGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))
)

// renderResourceGraph renders backend CPU and memory over the selected range
func renderResourceGraph(points []storage.DataPoint, width, height int, timeRange storage.TimeRange, now time.Time) string {
	var s strings.Builder

	s.WriteString(graphTitleStyle.Render("📈 Backend Resources - "+timeRange.String()) + "\n")
	s.WriteString(graphAxisStyle.Render(rangeHint(timeRange)) + "\n\n")

	if len(points) == 0 {
		s.WriteString("Waiting for data...\n")
		s.WriteString(graphAxisStyle.Render("Samples are recorded while capturing."))
		return s.String()
	}

	graphHeight := height - 10
	if graphHeight < 4 {
		graphHeight = 4
	}
	s.WriteString(renderCombinedGraph(points, width-2, graphHeight, now))
	return s.String()
}

// rangeHint lists the range keys with the active one marked
func rangeHint(active storage.TimeRange) string {
	parts := make([]string, len(storage.Ranges))
	for i, r := range storage.Ranges {
		label := fmt.Sprintf("[%d]%s", i+1, r)
		if r == active {
			label = "*" + label
		}
		parts[i] = label
	}
	return strings.Join(parts, " ")
}

// renderCombinedGraph draws both series on one 0-100% grid, newest on the right
func renderCombinedGraph(points []storage.DataPoint, width, height int, now time.Time) string {
	var s strings.Builder

	last := points[len(points)-1]
	s.WriteString(cpuGraphStyle.Render("█") + " CPU: " + cpuGraphStyle.Render(fmt.Sprintf("%.1f%%", last.CPUPercent)) + "  ")
	s.WriteString(memGraphStyle.Render("█") + " Memory: " + memGraphStyle.Render(fmt.Sprintf("%.1f%%", last.MemoryPercent)) + "  ")
	s.WriteString(bothGraphStyle.Render("█") + " Both\n\n")

	// Room for the Y-axis labels
	columns := width - 6
	if columns < 10 {
		columns = 10
	}
	if len(points) > columns {
		points = points[len(points)-columns:]
	}

	for row := height; row >= 0; row-- {
		var line strings.Builder

		grid := row == height || row == height*3/4 || row == height/2 || row == height/4 || row == 0
		if grid {
			line.WriteString(graphAxisStyle.Render(fmt.Sprintf("%3d%% ", row*100/height)))
		} else {
			line.WriteString("     ")
		}
		line.WriteString(graphAxisStyle.Render("│"))

		threshold := float64(row) / float64(height) * 100
		for _, p := range points {
			cpuAbove := p.CPUPercent >= threshold
			memAbove := p.MemoryPercent >= threshold

			switch {
			case cpuAbove && memAbove:
				line.WriteString(bothGraphStyle.Render("█"))
			case cpuAbove:
				line.WriteString(cpuGraphStyle.Render("█"))
			case memAbove:
				line.WriteString(memGraphStyle.Render("█"))
			case grid:
				line.WriteString(graphAxisStyle.Render("·"))
			default:
				line.WriteString(" ")
			}
		}
		s.WriteString(line.String() + "\n")
	}

	s.WriteString("     " + graphAxisStyle.Render("└"+strings.Repeat("─", len(points))) + "\n")
	s.WriteString(graphAxisStyle.Render("     "+timeSpanLabel(points[0].Timestamp, now)+" → Now"))
	return s.String()
}

// timeSpanLabel describes how long ago the oldest plotted point was taken
func timeSpanLabel(oldest, now time.Time) string {
	ago := now.Sub(oldest)
	switch {
	case ago < time.Minute:
		return fmt.Sprintf("%ds ago", int(ago.Seconds()))
	case ago < time.Hour:
		return fmt.Sprintf("%dm ago", int(ago.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(ago.Hours()))
	}
}
