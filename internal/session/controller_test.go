package session

import (
	"errors"
	"testing"
	"time"

	"github.com/rusenback/idswatch/internal/model"
)

var (
	success  = &model.ActionResult{Status: model.StatusSuccess}
	rejected = &model.ActionResult{Status: "error", Message: "Already capturing"}
)

// newTestController returns a controller with a controllable clock
func newTestController(t *testing.T) (*Controller, *time.Time) {
	t.Helper()
	c := NewController(time.Hour)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	t.Cleanup(c.Shutdown)
	return c, &now
}

func TestNewControllerIsIdle(t *testing.T) {
	c, _ := newTestController(t)

	if c.State() != Idle || c.IsCapturing() {
		t.Errorf("Expected idle, got %s", c.State())
	}
	if !c.CanStart() || c.CanStop() {
		t.Error("Idle controller must enable start and disable stop")
	}
	if ch, _ := c.Ticks(); ch != nil {
		t.Error("Idle controller must not have a timer")
	}
	if _, ok := c.Elapsed(); ok {
		t.Error("Elapsed must report no session before the first start")
	}
}

func TestStartSuccessTransitionsAndArmsTimer(t *testing.T) {
	c, now := newTestController(t)

	if err := c.CompleteStart("eth0", success, nil); err != nil {
		t.Fatalf("CompleteStart failed: %v", err)
	}
	if !c.IsCapturing() || c.CanStart() || !c.CanStop() {
		t.Errorf("Expected capturing with stop enabled, got %s", c.State())
	}
	if c.Interface() != "eth0" {
		t.Errorf("Expected eth0, got %q", c.Interface())
	}
	ch, gen := c.Ticks()
	if ch == nil || !c.IsCurrent(gen) {
		t.Fatal("Expected an active timer after start")
	}

	*now = now.Add(90 * time.Second)
	elapsed, ok := c.Elapsed()
	if !ok || elapsed != 90*time.Second {
		t.Errorf("Expected 90s elapsed, got %s (ok=%v)", elapsed, ok)
	}
}

func TestStartFailureLeavesStateUnchanged(t *testing.T) {
	c, _ := newTestController(t)

	err := c.CompleteStart("eth0", rejected, nil)
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("Expected RejectedError, got %v", err)
	}
	if rej.Message != "Already capturing" {
		t.Errorf("Expected backend message, got %q", rej.Message)
	}
	if c.IsCapturing() {
		t.Error("Rejected start must not transition")
	}
	if ch, _ := c.Ticks(); ch != nil {
		t.Error("Rejected start must not arm a timer")
	}

	netErr := errors.New("connection refused")
	err = c.CompleteStart("eth0", nil, netErr)
	if !errors.Is(err, netErr) {
		t.Errorf("Expected wrapped transport error, got %v", err)
	}
	if c.IsCapturing() {
		t.Error("Failed start must not transition")
	}
}

func TestDoubleStartKeepsSingleTimer(t *testing.T) {
	c, _ := newTestController(t)

	if err := c.CompleteStart("", success, nil); err != nil {
		t.Fatal(err)
	}
	first := c.timer
	_, firstGen := c.Ticks()

	if err := c.CompleteStart("", success, nil); err != nil {
		t.Fatal(err)
	}
	second := c.timer
	_, secondGen := c.Ticks()

	if first == second {
		t.Fatal("Expected the timer to be replaced")
	}
	if !first.Stopped() {
		t.Error("The first timer must be cancelled before a new one starts")
	}
	if second.Stopped() {
		t.Error("The replacement timer must be running")
	}
	if c.IsCurrent(firstGen) {
		t.Error("Ticks of the cancelled timer must be rejected")
	}
	if !c.IsCurrent(secondGen) {
		t.Error("Ticks of the new timer must be accepted")
	}
}

func TestStopCancelsTimer(t *testing.T) {
	c, _ := newTestController(t)
	c.CompleteStart("", success, nil)
	timer := c.timer
	_, gen := c.Ticks()

	if err := c.CompleteStop(success, nil); err != nil {
		t.Fatalf("CompleteStop failed: %v", err)
	}
	if c.IsCapturing() {
		t.Error("Expected idle after stop")
	}
	if !timer.Stopped() {
		t.Error("Timer still running after stop")
	}
	if c.IsCurrent(gen) {
		t.Error("No generation may be current while idle")
	}

	// Second stop is harmless.
	if err := c.CompleteStop(success, nil); err != nil {
		t.Errorf("Repeated stop failed: %v", err)
	}
}

func TestStopFailureKeepsCapturing(t *testing.T) {
	c, _ := newTestController(t)
	c.CompleteStart("", success, nil)

	if err := c.CompleteStop(&model.ActionResult{Status: "error"}, nil); err == nil {
		t.Error("Expected error for rejected stop")
	}
	if err := c.CompleteStop(nil, errors.New("timeout")); err == nil {
		t.Error("Expected error for failed stop")
	}
	if !c.IsCapturing() {
		t.Error("Failed stop must not transition to idle")
	}
	if ch, _ := c.Ticks(); ch == nil {
		t.Error("Failed stop must not cancel the timer")
	}
}

func TestClearResetsStartInstant(t *testing.T) {
	c, now := newTestController(t)
	c.CompleteStart("", success, nil)

	*now = now.Add(time.Hour)
	if err := c.CompleteClear(&model.ActionResult{Status: "whatever"}, nil); err != nil {
		t.Fatalf("CompleteClear failed: %v", err)
	}
	*now = now.Add(5 * time.Second)

	elapsed, ok := c.Elapsed()
	if !ok || elapsed != 5*time.Second {
		t.Errorf("Expected uptime to restart from clear, got %s", elapsed)
	}
	if !c.IsCapturing() {
		t.Error("Clear must not change capture state")
	}
}

func TestClearTransportFailureKeepsStartInstant(t *testing.T) {
	c, now := newTestController(t)
	c.CompleteStart("", success, nil)
	*now = now.Add(time.Minute)

	if err := c.CompleteClear(nil, errors.New("unreachable")); err == nil {
		t.Fatal("Expected error")
	}
	if elapsed, _ := c.Elapsed(); elapsed != time.Minute {
		t.Errorf("Expected untouched uptime, got %s", elapsed)
	}
}

func TestRejectedErrorMessage(t *testing.T) {
	err := &RejectedError{Op: "start"}
	if err.Error() != "start rejected by backend" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
