// Package anttp talks to the local retrieval service, which serves content
// over plain HTTP at http://<host>:<port>/<address>.
package anttp

import (
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/errors"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const userAgent = "dweb-bridge"

// Options configures the backend client.
type Options struct {
	// BaseURL is the scheme and authority of the service, e.g. http://127.0.0.1:8082
	BaseURL string

	// Timeout bounds the whole fetch, body included.
	// Default: 60s
	Timeout time.Duration

	// MaxIdleConnsPerHost sets the maximum idle connections kept to the service.
	// Default: 16
	MaxIdleConnsPerHost int
}

type Client struct {
	log    *slog.Logger
	client *http.Client
	opts   Options
}

func NewClient(log *slog.Logger, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxIdleConnsPerHost <= 0 {
		opts.MaxIdleConnsPerHost = 16
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 2,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		log: log,
		// No client level timeout: the deadline lives in the request context.
		client: &http.Client{Transport: transport},
		opts:   opts,
	}
}

// Fetch downloads the whole content behind address.
// The request is aborted once the configured timeout elapses and reported as ErrFetchTimeout.
func (c *Client) Fetch(ctx context.Context, address domain.ContentAddress) (domain.FetchResult, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	url := c.URL(address)
	c.log.Debug("Fetching from backend", "url", url)

	result, err := c.get(fetchCtx, url)
	if err != nil {
		if stderrors.Is(fetchCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return domain.FetchResult{}, fmt.Errorf("%w after %s", errors.ErrFetchTimeout, c.opts.Timeout)
		}
		return domain.FetchResult{}, err
	}
	return result, nil
}

// URL builds the backend location of an address.
func (c *Client) URL(address domain.ContentAddress) string {
	return fmt.Sprintf("%s/%s", c.opts.BaseURL, address)
}

func (c *Client) get(ctx context.Context, url string) (domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.FetchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return domain.FetchResult{}, fmt.Errorf("%w %d", errors.ErrBackendStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("read body: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = domain.DefaultMimeType
	}
	return domain.FetchResult{MimeType: mimeType, Body: body}, nil
}
