// Package stores holds the HTTP clients for the two remote record stores
// this service fronts: the user store and the project/file store. The
// clients are plumbing only; they fetch, decode, and map errors, and leave
// every derived computation (paging windows, links, trees) to the callers.
package stores

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// ErrNotFound is returned when the remote store reports that a record does
// not exist. Feature services map it to a resource-specific 404.
var ErrNotFound = errors.New("stores: record not found")

// ErrInvalidCredentials is returned by the user store when a credential
// check fails.
var ErrInvalidCredentials = errors.New("stores: invalid credentials")

// upstreamError marks non-2xx responses that aren't a plain miss.
type upstreamError struct {
	status int
	body   string
}

func (e *upstreamError) Error() string {
	return "stores: upstream returned " + strconv.Itoa(e.status) + ": " + e.body
}

// IsUpstreamError reports whether err is a non-2xx upstream response (other
// than a not-found or credential miss).
func IsUpstreamError(err error) bool {
	var ue *upstreamError
	return errors.As(err, &ue)
}

// client is the shared JSON/HTTP plumbing both store clients sit on.
type client struct {
	baseURL    *url.URL
	httpClient *http.Client
	retryCount int
}

func newClient(baseURL string, timeout time.Duration, retryCount int) (*client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse store url %s", baseURL)
	}
	return &client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		retryCount: retryCount,
	}, nil
}

// get issues a GET and decodes the response into out. GETs are idempotent,
// so transient failures are retried with backoff.
func (c *client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return retryWithBackoff(ctx, c.retryCount, func() error {
		return c.doOnce(ctx, http.MethodGet, path, query, nil, out)
	})
}

// send issues a mutating request exactly once.
func (c *client) send(ctx context.Context, method, path string, body, out interface{}) error {
	return c.doOnce(ctx, method, path, nil, body, out)
}

func (c *client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.baseURL
	u.Path, _ = url.JoinPath(u.Path, path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	// Correlation id so a store-side failure can be traced back to this call.
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transientError{cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case isTransientStatus(resp.StatusCode):
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &transientError{cause: &upstreamError{status: resp.StatusCode, body: string(raw)}}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &upstreamError{status: resp.StatusCode, body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode store response")
	}
	return nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}
