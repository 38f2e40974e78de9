// Package restapi implements the entity source interfaces against remote
// CRUD services speaking JSON over HTTP. It is used when an entity domain
// runs as a separately deployed service instead of sharing this process's
// database. Every call carries a bounded timeout so one unavailable source
// cannot stall aggregation; transport and server failures are wrapped in
// repository.ErrUpstreamUnavailable.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rentwise/rentwise/internal/domain/repository"
)

// errNotFound marks a 404 from the remote service. Get-by-id lookups
// translate it to an absent record; everything else propagates it.
var errNotFound = errors.New("remote resource not found")

// Client is a thin JSON HTTP client shared by the per-entity sources.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, method, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", repository.ErrUpstreamUnavailable, method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return errNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return fmt.Errorf("%w: %s %s: status %d", repository.ErrUpstreamUnavailable, method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", repository.ErrUpstreamUnavailable, method, path, err)
	}
	return nil
}
