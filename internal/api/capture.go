// internal/api/capture.go
package api

import (
	"context"
	"net/http"

	"github.com/rusenback/idswatch/internal/model"
)

// GetInterfaces lists the capturable network interfaces in backend order
func (c *Client) GetInterfaces(ctx context.Context) ([]string, error) {
	var list model.InterfaceList
	if err := c.do(ctx, http.MethodGet, pathInterfaces, nil, &list); err != nil {
		return nil, err
	}
	return list.Interfaces, nil
}

// StartCapture asks the backend to start capturing. "" captures on all interfaces.
func (c *Client) StartCapture(ctx context.Context, iface string) (*model.ActionResult, error) {
	return c.command(ctx, pathStart, model.StartRequest{Interface: iface})
}

// StopCapture asks the backend to stop capturing
func (c *Client) StopCapture(ctx context.Context) (*model.ActionResult, error) {
	return c.command(ctx, pathStop, nil)
}

// ClearStats resets the backend counters and retained windows
func (c *Client) ClearStats(ctx context.Context) (*model.ActionResult, error) {
	return c.command(ctx, pathClear, nil)
}

// SendTestAlert asks the backend to notify its alert channel about the latest threat
func (c *Client) SendTestAlert(ctx context.Context) (*model.ActionResult, error) {
	return c.command(ctx, pathTestAlert, nil)
}

func (c *Client) command(ctx context.Context, path string, body interface{}) (*model.ActionResult, error) {
	var result model.ActionResult
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
