package tui

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/idswatch/internal/render"
)

var (
	ipPattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b|[0-9a-fA-F]*:[0-9a-fA-F:]+`)

	timestampStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	ipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	unknownStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true)
	protoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB"))
	normalLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	attackLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	placeholderText = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true)

	normalIndicator = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Render("○")
	attackIndicator = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Render("●")
)

// stylePacketEntry renders one feed row
func stylePacketEntry(e render.PacketEntry, maxWidth int) string {
	indicator, label := normalIndicator, normalLabel.Render(e.Label)
	if e.Attack {
		indicator, label = attackIndicator, attackLabel.Render(e.Label)
	}

	line := fmt.Sprintf("%s %s %s %s → %s %s %s",
		timestampStyle.Render(e.Clock),
		indicator,
		label,
		styleAddress(e.Source),
		styleAddress(e.Destination),
		protoStyle.Render(e.Protocol),
		e.Confidence,
	)
	return clip(line, maxWidth)
}

// styleAttackEntry renders one attack log row
func styleAttackEntry(e render.AttackEntry, maxWidth int) string {
	line := fmt.Sprintf("%s %s %s → %s %s %s",
		timestampStyle.Render(e.Time),
		attackIndicator,
		styleAddress(e.Source),
		styleAddress(e.Destination),
		protoStyle.Render(e.Protocol),
		attackLabel.Render(e.Confidence),
	)
	return clip(line, maxWidth)
}

func stylePlaceholder(p render.Placeholder) string {
	return placeholderText.Render(p.Text())
}

// styleAddress highlights IP addresses and dims the unknown marker
func styleAddress(addr string) string {
	if addr == render.Unknown {
		return unknownStyle.Render(addr)
	}
	return ipPattern.ReplaceAllStringFunc(addr, func(match string) string {
		return ipStyle.Render(match)
	})
}

// clip truncates a styled line to maxWidth cells
func clip(line string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(line) <= maxWidth {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
}
