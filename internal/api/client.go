package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Backend endpoint paths
const (
	pathInterfaces  = "/api/get_interfaces"
	pathStart       = "/api/start_capture"
	pathStop        = "/api/stop_capture"
	pathClear       = "/api/clear_stats"
	pathPackets     = "/api/get_packets"
	pathSystemStats = "/api/get_system_stats"
	pathAttackLog   = "/api/get_attack_log"
	pathTestAlert   = "/api/alert/test"
)

// Config contains backend client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 = requests may hang forever
}

func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:5000",
	}
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	Code    int
	Message string // backend "message" field, if the body carried one
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d %s", e.Code, http.StatusText(e.Code))
}

// Client talks JSON to the backend
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient creates a new backend client
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", cfg.BaseURL)
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// BaseURL returns the backend address
func (c *Client) BaseURL() string {
	return c.base.String()
}

// do sends a request and decodes the JSON response into out.
// A nil body sends no payload; POSTs always carry the JSON content type.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&payload) == nil {
			statusErr.Message = payload.Message
			if statusErr.Message == "" {
				statusErr.Message = payload.Error
			}
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty response", path)
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
