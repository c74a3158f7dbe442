// Package views holds small drawing helpers shared by the panels.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/idswatch/internal/render"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	midStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// RenderGauge draws one resource gauge: a title line with the percentage and an
// optional detail, then the bar. An unknown gauge shows "--".
func RenderGauge(title string, g render.Gauge, width int) string {
	var s strings.Builder

	label := "--"
	if g.Known {
		label = g.Label
	}
	s.WriteString(fmt.Sprintf("%s %s", labelStyle.Render(title+":"), label))
	if g.Detail != "" {
		s.WriteString("  " + detailStyle.Render(g.Detail))
	}
	s.WriteString("\n")

	s.WriteString(ProgressBar(g.BarWidth(), width))
	return s.String()
}

// ProgressBar renders percent (0-100) as a bar coloured by load
func ProgressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	inner := width - 2

	filled := int(percent / 100 * float64(inner))
	if filled > inner {
		filled = inner
	}
	if filled < 0 {
		filled = 0
	}

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", inner-filled) + "]"
	return loadStyle(percent).Render(bar)
}

func loadStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= 80:
		return highStyle
	case percent >= 50:
		return midStyle
	default:
		return lowStyle
	}
}
