package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/pkg/config"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

// Observer receives timing for each backend call, for metrics wiring.
type Observer func(method, path string, status int, duration time.Duration)

// Client provides typed, authenticated access to every backend resource.
// It is the single point where the session token is attached to outgoing
// calls. It never mutates session state and never retries.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	observe Observer
}

// Option customises client construction.
type Option func(*Client)

// WithObserver registers a per-call timing hook.
func WithObserver(obs Observer) Option {
	return func(c *Client) { c.observe = obs }
}

// New builds a Client for the configured backend. Every call is bounded by
// the backend request timeout; callers may impose tighter bounds through
// their context.
func New(cfg config.Backend, tokens TokenSource, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/api",
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: &authTransport{tokens: tokens},
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// backendError is the error body shape the school backend produces.
type backendError struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		if c.observe != nil {
			c.observe(method, path, 0, duration)
		}
		return c.transportError(method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if c.observe != nil {
		c.observe(method, path, resp.StatusCode, duration)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, "decode backend response")
	}
	return nil
}

// transportError buckets network failures. Timeouts and connection errors
// are all surfaced as "service unreachable" so callers fail closed instead
// of guessing; cancellation keeps its own identity so teardown is not
// reported as an outage.
func (c *Client) transportError(method, path string, err error) error {
	if errors.Is(err, context.Canceled) {
		return appErrors.Wrap(err, appErrors.ErrUnreachable.Code, appErrors.ErrUnreachable.Status, "request cancelled")
	}

	c.logger.Warn("backend unreachable",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(err),
	)

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return appErrors.Wrap(err, appErrors.ErrUnreachable.Code, appErrors.ErrUnreachable.Status, "the server is not responding")
	}
	return appErrors.Wrap(err, appErrors.ErrUnreachable.Code, appErrors.ErrUnreachable.Status, "cannot reach the server")
}

// statusError converts a non-success backend response into a typed error
// carrying the backend-provided message when available. The status passes
// through untouched; the client does not interpret it further.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	message := ""
	var parsed backendError
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&parsed); err == nil {
		message = parsed.Detail
	}
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	var base *appErrors.Error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		base = appErrors.ErrUnauthorized
	case http.StatusForbidden:
		base = appErrors.ErrForbidden
	case http.StatusNotFound:
		base = appErrors.ErrNotFound
	case http.StatusBadRequest:
		base = appErrors.ErrValidation
	case http.StatusConflict:
		base = appErrors.ErrConflict
	default:
		base = appErrors.ErrBackend
	}

	err := appErrors.Clone(base, message)
	err.Status = resp.StatusCode
	return err
}

func boolParam(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "true"
	}
	return "false"
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
