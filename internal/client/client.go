// Package client calls a running `bolan serve` instance.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theirongolddev/bolan/internal/mortgage"
	"github.com/theirongolddev/bolan/internal/server"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrRejected means the server refused the inputs (HTTP 400).
	ErrRejected = errors.New("client: inputs rejected")
	// ErrUnavailable means the server could not be reached or is unhealthy.
	ErrUnavailable = errors.New("client: server unavailable")
)

// Client talks to the bolan HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for a server address such as "127.0.0.1:8788" or
// "http://host:8788". Returns nil if the address is empty.
func New(addr string) *Client {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &Client{
		baseURL: strings.TrimRight(addr, "/"),
		http:    &http.Client{},
	}
}

// Calculate sends raw field text to /v1/calculate. Text is passed through
// untouched; the server normalizes it the same way the form does.
func (c *Client) Calculate(ctx context.Context, raw map[mortgage.Field]string) (server.CalculateResponse, error) {
	q := url.Values{}
	for _, f := range mortgage.Fields {
		q.Set(f.String(), raw[f])
	}

	var resp server.CalculateResponse
	body, err := c.get(ctx, "/v1/calculate?"+q.Encode())
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return resp, fmt.Errorf("client: parsing result: %w", err)
	}
	return resp, nil
}

// Status fetches the server's request counters.
func (c *Client) Status(ctx context.Context) (server.Status, error) {
	var st server.Status
	body, err := c.get(ctx, "/v1/status")
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(body, &st); err != nil {
		return st, fmt.Errorf("client: parsing status: %w", err)
	}
	return st, nil
}

// Healthy reports nil when /healthz answers ok.
func (c *Client) Healthy(ctx context.Context) error {
	_, err := c.get(ctx, "/healthz")
	return err
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("client: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/bolan/1.0")

	//nolint:gosec // URL is built from the user's --server flag
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("client: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRejected, e.Error)
		}
		return nil, ErrRejected
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("client: unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
