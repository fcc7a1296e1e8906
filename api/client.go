package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client talks to the BarberiApp backend. All calls go through the
// configured transport chain, so the bearer token and failure handling
// apply uniformly.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// Option modifies a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller is
// responsible for wiring the transport chain into it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client for the given base URL (including the /api context
// path).
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: http.DefaultClient,
		log:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.base
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do performs a request and decodes the response envelope into out.
// A failure status or an unsuccessful envelope yields an *Error carrying
// the server message; the session-level handling of 401s happens in the
// transport chain before the error reaches the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] read body %s %s", method, path)
	}

	var envelope Envelope
	if len(raw) > 0 {
		// The backend wraps error responses in the same envelope; decode
		// failures on an error status are ignored in favour of the status.
		if err := json.Unmarshal(raw, &envelope); err != nil && resp.StatusCode < 400 {
			return errors.Wrapf(err, "[Client.do] decode envelope %s %s", method, path)
		}
	}

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: envelope.Message}
	}

	if !envelope.Success {
		return &Error{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.Wrapf(err, "[Client.do] decode data %s %s", method, path)
		}
	}
	return nil
}

// download fetches a binary payload (PDF/Excel exports, comprobantes)
// which is served raw, outside the envelope.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.download] GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &Error{Status: resp.StatusCode}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.download] read body %s", path)
	}
	return raw, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.base + path
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "[Client.newRequest] marshal body %s %s", method, path)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.newRequest] %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")
	return req, nil
}

func pageQuery(page, size int) url.Values {
	return url.Values{
		"page": []string{fmt.Sprintf("%d", page)},
		"size": []string{fmt.Sprintf("%d", size)},
	}
}
