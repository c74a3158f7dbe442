package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/idswatch/internal/alert"
	"github.com/rusenback/idswatch/internal/api"
	"github.com/rusenback/idswatch/internal/logging"
	"github.com/rusenback/idswatch/internal/model"
	"github.com/rusenback/idswatch/internal/render"
	"github.com/rusenback/idswatch/internal/session"
	"github.com/rusenback/idswatch/internal/storage"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeAttackView()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case interfacesMsg:
		if msg.err != nil {
			logging.Error("load interfaces: %v", msg.err)
		}
		m.options = render.InterfaceOptions(msg.names, msg.err)
		m.selected = 0

	case startMsg:
		m.pending = false
		if err := m.session.CompleteStart(msg.iface, msg.result, msg.err); err != nil {
			logging.Error("start capture on %s: %v", interfaceName(msg.iface), err)
			m.notice = actionFailure("starting capture", err)
			return m, nil
		}
		logging.Info("capture started on %s", interfaceName(msg.iface))
		m.syncControls()
		m.refreshUptime()
		return m, m.nextTick()

	case stopMsg:
		m.pending = false
		if err := m.session.CompleteStop(msg.result, msg.err); err != nil {
			logging.Error("stop capture: %v", err)
			m.notice = actionFailure("stopping capture", err)
			return m, nil
		}
		logging.Info("capture stopped")
		m.syncControls()

	case clearMsg:
		m.pending = false
		if err := m.session.CompleteClear(msg.result, msg.err); err != nil {
			logging.Error("clear stats: %v", err)
			m.notice = actionFailure("clearing statistics", err)
			return m, nil
		}
		if msg.result != nil && !msg.result.OK() {
			logging.Warn("clear stats answered %q: %s", msg.result.Status, msg.result.Message)
		}
		m.resetView()

	case tickMsg:
		// Ticks of a cancelled timer are dropped and not re-armed
		if !m.session.IsCurrent(msg.gen) {
			return m, nil
		}
		m.refreshUptime()
		return m, tea.Batch(
			fetchPackets(m.ctx, m.client),
			fetchSystemStats(m.ctx, m.client),
			m.nextTick(),
		)

	case packetsMsg:
		if msg.err != nil {
			logging.Error("fetch packets: %v", msg.err)
			return m, nil
		}
		m.applyPackets(msg.snapshot)

	case systemMsg:
		if msg.err != nil {
			logging.Error("fetch system stats: %v", msg.err)
			return m, nil
		}
		if msg.snapshot != nil && msg.snapshot.Error != "" {
			logging.Warn("backend system stats: %s", msg.snapshot.Error)
		}
		m.gauges = render.ApplySystem(m.gauges, msg.snapshot)
		m.recordSample()

	case alertMsg:
		if msg.notice.Kind == alert.Failure {
			logging.Warn("test alert: %s", msg.notice.Message)
		}
		m.notice = &notice{kind: msg.notice.Kind, text: msg.notice.Message}

	case historyMsg:
		m.historyLoading = false
		if msg.err != nil {
			logging.Error("fetch attack log: %v", msg.err)
			m.notice = &notice{kind: alert.Failure, text: "Error loading attack history. Check the log file."}
			return m, nil
		}
		log := render.Attacks(msg.attacks)
		m.history = &log
		m.refreshAttackView()
		m.attackView.GotoTop()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// A notice blocks everything until dismissed
	if m.notice != nil {
		switch msg.String() {
		case "enter", "esc", " ":
			m.notice = nil
		}
		return m, nil
	}

	if m.confirmClear {
		switch msg.String() {
		case "y", "Y":
			m.confirmClear = false
			m.pending = true
			return m, clearStats(m.ctx, m.client)
		case "n", "N", "esc":
			m.confirmClear = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Prev):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Next):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Start):
		if m.pending || !m.session.CanStart() {
			return m, nil
		}
		m.pending = true
		return m, startCapture(m.ctx, m.client, m.selectedInterface())

	case key.Matches(msg, m.keys.Stop):
		if m.pending || !m.session.CanStop() {
			return m, nil
		}
		m.pending = true
		return m, stopCapture(m.ctx, m.client)

	case key.Matches(msg, m.keys.Clear):
		if !m.pending {
			m.confirmClear = true
		}

	case key.Matches(msg, m.keys.Alert):
		return m, sendAlert(m.ctx, m.client)

	case key.Matches(msg, m.keys.History):
		if m.history != nil {
			m.history = nil
			m.refreshAttackView()
			return m, nil
		}
		if m.historyLoading {
			return m, nil
		}
		m.historyLoading = true
		return m, fetchAttackHistory(m.ctx, m.client)

	case key.Matches(msg, m.keys.Range):
		m.timeRange = rangeForKey(msg.String())

	case key.Matches(msg, m.keys.ScrollUp):
		m.attackView.HalfViewUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.attackView.HalfViewDown()
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Shutdown()
	return m, tea.Quit
}

// nextTick waits on the controller's current timer
func (m Model) nextTick() tea.Cmd {
	ticks, gen := m.session.Ticks()
	return waitForTick(ticks, gen)
}

// moveSelection steps through the interface options, skipping disabled entries
func (m *Model) moveSelection(delta int) {
	for i := m.selected + delta; i >= 0 && i < len(m.options); i += delta {
		if !m.options[i].Disabled {
			m.selected = i
			return
		}
	}
}

// applyPackets overwrites the counters, feed and attack log with a snapshot
func (m *Model) applyPackets(snap *model.PacketsSnapshot) {
	if snap == nil {
		return
	}
	if snap.Error != "" {
		logging.Warn("backend packets: %s", snap.Error)
	}

	if snap.Stats != nil {
		m.counters = render.CountersFrom(snap.Stats)
	}
	if feed, changed := render.PacketFeed(snap.Packets, m.feed, m.session.IsCapturing(), m.loc); changed {
		m.feed = feed
	}
	m.attacks = render.Attacks(snap.RecentAttacks)
	m.refreshAttackView()
}

// resetView returns counters, uptime, feed and attack log to their empty forms
func (m *Model) resetView() {
	m.counters = render.ZeroCounters()
	m.uptime = render.ZeroUptime
	m.feed = render.EmptyFeed()
	m.attacks = render.EmptyAttackLog()
	m.refreshAttackView()
}

func (m *Model) refreshUptime() {
	if d, ok := m.session.Elapsed(); ok {
		m.uptime = render.Uptime(d)
	}
}

// recordSample stores the current gauges for the resource graph
func (m *Model) recordSample() {
	if m.storage == nil {
		return
	}
	if sample, ok := sampleFrom(m.gauges, time.Now()); ok {
		m.storage.Write(sample)
	}
}

// sampleFrom builds a history sample. ok is false until both gauges have a value.
func sampleFrom(g render.Gauges, at time.Time) (*storage.Sample, bool) {
	if !g.CPU.Known || !g.Memory.Known {
		return nil, false
	}
	return &storage.Sample{
		Timestamp:     at,
		CPUPercent:    g.CPU.BarWidth(),
		MemoryPercent: g.Memory.BarWidth(),
	}, true
}

// actionFailure builds the notice for a failed start, stop or clear
func actionFailure(doing string, err error) *notice {
	var rejected *session.RejectedError
	if errors.As(err, &rejected) {
		text := "Error: " + rejected.Message
		if rejected.Message == "" {
			text = "Error: " + rejected.Error()
		}
		return &notice{kind: alert.Failure, text: text}
	}
	var status *api.StatusError
	if errors.As(err, &status) && status.Message != "" {
		return &notice{kind: alert.Failure, text: "Error: " + status.Message}
	}
	return &notice{kind: alert.Failure, text: "Error " + doing + ". Check the log file."}
}

func rangeForKey(k string) storage.TimeRange {
	switch k {
	case "2":
		return storage.Range15Min
	case "3":
		return storage.Range30Min
	case "4":
		return storage.Range1Hour
	default:
		return storage.Range5Min
	}
}

func interfaceName(iface string) string {
	if iface == "" {
		return "all interfaces"
	}
	return iface
}
