// internal/session/controller.go
package session

import (
	"fmt"
	"time"

	"github.com/rusenback/idswatch/internal/model"
)

// State of the capture session
type State int

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// DefaultPollInterval is the poll period while capturing
const DefaultPollInterval = 2 * time.Second

// Controller owns the capture state machine and the poll timer.
// The poll timer is running if and only if the state is Capturing.
//
// It is not safe for concurrent use; the TUI update loop is its only caller.
type Controller struct {
	state     State
	iface     string
	startedAt time.Time

	interval   time.Duration
	timer      *Timer
	generation int

	now func() time.Time
}

// NewController creates a controller in the Idle state
func NewController(interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Controller{
		state:    Idle,
		interval: interval,
		now:      time.Now,
	}
}

// State returns the current state
func (c *Controller) State() State { return c.state }

// IsCapturing reports whether a session is running
func (c *Controller) IsCapturing() bool { return c.state == Capturing }

// CanStart reports whether the start control is enabled
func (c *Controller) CanStart() bool { return c.state == Idle }

// CanStop reports whether the stop control is enabled
func (c *Controller) CanStop() bool { return c.state == Capturing }

// Interface returns the interface of the last successful start ("" = all)
func (c *Controller) Interface() string { return c.iface }

// Interval returns the poll period
func (c *Controller) Interval() time.Duration { return c.interval }

// CompleteStart applies the backend's answer to a start request.
// Only a declared success moves the session to Capturing.
func (c *Controller) CompleteStart(iface string, res *model.ActionResult, err error) error {
	if err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	if !res.OK() {
		return &RejectedError{Op: "start", Message: message(res)}
	}

	c.state = Capturing
	c.iface = iface
	c.startedAt = c.now()
	c.armTimer()
	return nil
}

// CompleteStop applies the backend's answer to a stop request.
// On success the timer is cancelled; rendered data stays on screen.
func (c *Controller) CompleteStop(res *model.ActionResult, err error) error {
	if err != nil {
		return fmt.Errorf("stop capture: %w", err)
	}
	if !res.OK() {
		return &RejectedError{Op: "stop", Message: message(res)}
	}

	c.state = Idle
	c.cancelTimer()
	return nil
}

// CompleteClear applies the answer to a confirmed clear request. Any answer from
// the backend resets the session start instant, whatever status it declares; only
// a transport failure leaves everything as it was.
func (c *Controller) CompleteClear(res *model.ActionResult, err error) error {
	if err != nil {
		return fmt.Errorf("clear stats: %w", err)
	}
	c.startedAt = c.now()
	return nil
}

// Elapsed returns the time since the session start instant.
// ok is false when no session has been started yet.
func (c *Controller) Elapsed() (time.Duration, bool) {
	if c.startedAt.IsZero() {
		return 0, false
	}
	d := c.now().Sub(c.startedAt)
	if d < 0 {
		d = 0
	}
	return d, true
}

// Ticks returns the active timer channel and its generation, or nil when idle
func (c *Controller) Ticks() (<-chan time.Time, int) {
	if c.timer == nil {
		return nil, c.generation
	}
	return c.timer.C, c.generation
}

// IsCurrent reports whether a tick from generation gen belongs to the active timer
func (c *Controller) IsCurrent(gen int) bool {
	return c.timer != nil && gen == c.generation
}

// Shutdown cancels the poll timer without changing state
func (c *Controller) Shutdown() {
	c.cancelTimer()
}

// armTimer replaces any running timer so that at most one is ever active
func (c *Controller) armTimer() {
	c.cancelTimer()
	c.generation++
	c.timer = NewTimer(c.interval)
}

func (c *Controller) cancelTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func message(res *model.ActionResult) string {
	if res == nil {
		return ""
	}
	return res.Message
}
