package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrOffline is wrapped by every error caused by the analysis service being
// unreachable or answering with a non-2xx status.
var ErrOffline = errors.New("backend offline")

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Source produces telemetry readings.
type Source interface {
	Fetch(ctx context.Context, mode Mode) (Reading, error)
}

// Client talks to the analysis service over HTTP.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch polls the progress endpoint for the mode.
func (c *Client) Fetch(ctx context.Context, mode Mode) (Reading, error) {
	body, err := c.get(ctx, mode.Endpoint())
	if err != nil {
		return Reading{}, err
	}
	return DecodeReading(body)
}

// StopLive asks the service to stop the live camera feed.
func (c *Client) StopLive(ctx context.Context) error {
	_, err := c.get(ctx, "/stop_live")
	return err
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %v", path, ErrOffline, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, fmt.Errorf("GET %s: %w: status %d", path, ErrOffline, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return body, nil
}
