// internal/api/snapshots.go
package api

import (
	"context"
	"net/http"

	"github.com/rusenback/idswatch/internal/model"
)

// GetPackets fetches the current counters and recent packet/attack windows
func (c *Client) GetPackets(ctx context.Context) (*model.PacketsSnapshot, error) {
	var snap model.PacketsSnapshot
	if err := c.do(ctx, http.MethodGet, pathPackets, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetSystemStats fetches the backend host's CPU and memory usage
func (c *Client) GetSystemStats(ctx context.Context) (*model.SystemSnapshot, error) {
	var snap model.SystemSnapshot
	if err := c.do(ctx, http.MethodGet, pathSystemStats, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetAttackLog fetches every attack the backend still retains, oldest first
func (c *Client) GetAttackLog(ctx context.Context) ([]model.AttackRecord, error) {
	var log model.AttackLog
	if err := c.do(ctx, http.MethodGet, pathAttackLog, nil, &log); err != nil {
		return nil, err
	}
	return log.Attacks, nil
}
