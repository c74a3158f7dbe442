package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/idswatch/internal/alert"
	"github.com/rusenback/idswatch/internal/api"
	"github.com/rusenback/idswatch/internal/model"
	"github.com/rusenback/idswatch/internal/render"
	"github.com/rusenback/idswatch/internal/session"
	"github.com/rusenback/idswatch/internal/storage"
)

// notice is a blocking message box; it must be dismissed before other keys work
type notice struct {
	kind alert.Kind
	text string
}

// Model represents the TUI application state
type Model struct {
	ctx     context.Context
	client  api.Backend
	session *session.Controller
	storage *storage.Storage
	loc     *time.Location

	options  []render.Option
	selected int

	// A start, stop or clear request is in flight
	pending bool

	counters render.Counters
	uptime   string
	gauges   render.Gauges
	feed     render.Feed
	attacks  render.AttackLog

	// history is the full attack log overlay; nil when the live log is shown
	history        *render.AttackLog
	historyLoading bool

	notice       *notice
	confirmClear bool

	attackView viewport.Model
	keys       keyMap
	help       help.Model
	timeRange  storage.TimeRange

	width  int
	height int
}

// Message types for Bubbletea update loop
type tickMsg struct {
	gen int
	at  time.Time
}

type interfacesMsg struct {
	names []string
	err   error
}

type startMsg struct {
	iface  string
	result *model.ActionResult
	err    error
}

type stopMsg struct {
	result *model.ActionResult
	err    error
}

type clearMsg struct {
	result *model.ActionResult
	err    error
}

type packetsMsg struct {
	snapshot *model.PacketsSnapshot
	err      error
}

type systemMsg struct {
	snapshot *model.SystemSnapshot
	err      error
}

type alertMsg struct {
	notice alert.Notice
}

type historyMsg struct {
	attacks []model.AttackRecord
	err     error
}

// NewModel creates a new TUI model. store may be nil, in which case the
// resource graph is not drawn. ctx bounds every backend request.
func NewModel(ctx context.Context, client api.Backend, ctrl *session.Controller, store *storage.Storage) Model {
	m := Model{
		ctx:        ctx,
		client:     client,
		session:    ctrl,
		storage:    store,
		loc:        time.Local,
		options:    render.LoadingOptions(),
		counters:   render.ZeroCounters(),
		uptime:     render.ZeroUptime,
		feed:       render.EmptyFeed(),
		attacks:    render.EmptyAttackLog(),
		attackView: viewport.New(0, 0),
		keys:       newKeyMap(),
		help:       help.New(),
		timeRange:  storage.Range5Min,
	}
	m.syncControls()
	m.refreshAttackView()
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return fetchInterfaces(m.ctx, m.client)
}

// selectedInterface returns the interface to capture on; "" means all
func (m Model) selectedInterface() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return ""
	}
	opt := m.options[m.selected]
	if opt.Disabled {
		return ""
	}
	return opt.Value
}

// syncControls enables exactly one of the start and stop bindings
func (m *Model) syncControls() {
	m.keys.Start.SetEnabled(m.session.CanStart())
	m.keys.Stop.SetEnabled(m.session.CanStop())
}
