package tui

import "strings"

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// attackViewHeight is the number of log lines that fit in the attack log panel
func (m Model) attackViewHeight() int {
	_, bottom := m.rowHeights()
	// Borders, title and the scroll indicator
	h := bottom - 6
	if h < 3 {
		h = 3
	}
	return h
}

// resizeAttackView fits the viewport to the attack log panel
func (m *Model) resizeAttackView() {
	_, right := m.columnWidths()
	w := right - 6
	if w < 10 {
		w = 10
	}
	m.attackView.Width = w
	m.attackView.Height = m.attackViewHeight()
	m.refreshAttackView()
}

// refreshAttackView rewrites the viewport content from the live log or the
// history overlay
func (m *Model) refreshAttackView() {
	log := m.attacks
	if m.history != nil {
		log = *m.history
	}

	if len(log.Entries) == 0 {
		m.attackView.SetContent(stylePlaceholder(log.Placeholder))
		return
	}

	lines := make([]string, len(log.Entries))
	for i, e := range log.Entries {
		lines[i] = styleAttackEntry(e, m.attackView.Width)
	}
	m.attackView.SetContent(strings.Join(lines, "\n"))
}

// columnWidths splits the screen 60/40
func (m Model) columnWidths() (int, int) {
	left := int(float64(m.width) * 0.6)
	return left, m.width - left
}

// rowHeights splits the space below the header and above the help line 55/45
func (m Model) rowHeights() (int, int) {
	body := m.height - headerHeight - 1
	if body < 0 {
		body = 0
	}
	top := int(float64(body) * 0.55)
	return top, body - top
}
