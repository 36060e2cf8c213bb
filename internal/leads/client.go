package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrLoad marks every failure to obtain a snapshot from the source.
var ErrLoad = errors.New("leads: load failed")

// Fetcher retrieves a snapshot from the remote source.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// Client reads the snapshot with a plain unauthenticated GET.
type Client struct {
	URL    string
	Client *http.Client
}

// NewClient builds a Client for the given endpoint.
func NewClient(url string, httpClient *http.Client) *Client {
	return &Client{URL: url, Client: httpClient}
}

// Fetch issues exactly one GET and decodes the body.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	if c == nil || c.URL == "" {
		return nil, fmt.Errorf("%w: source url missing", ErrLoad)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrLoad, err)
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrLoad, resp.StatusCode)
	}

	var snapshot *Snapshot
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrLoad, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: empty body", ErrLoad)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after snapshot", ErrLoad)
	}
	return snapshot, nil
}
