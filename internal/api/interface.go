// internal/api/interface.go
package api

import (
	"context"

	"github.com/rusenback/idswatch/internal/model"
)

// Backend is the capture/detection service as seen by the console.
// The TUI depends on this interface so tests can swap in a fake.
type Backend interface {
	GetInterfaces(ctx context.Context) ([]string, error)
	StartCapture(ctx context.Context, iface string) (*model.ActionResult, error)
	StopCapture(ctx context.Context) (*model.ActionResult, error)
	ClearStats(ctx context.Context) (*model.ActionResult, error)
	GetPackets(ctx context.Context) (*model.PacketsSnapshot, error)
	GetSystemStats(ctx context.Context) (*model.SystemSnapshot, error)
	GetAttackLog(ctx context.Context) ([]model.AttackRecord, error)
	SendTestAlert(ctx context.Context) (*model.ActionResult, error)
}

// Make sure Client satisfies Backend
var _ Backend = (*Client)(nil)
