package amazon

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// Response is the raw outcome of one HTTP exchange. Status
// interpretation belongs to the callers, not the transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport is a minimal POST-JSON client shared by both backends. The
// default variant keeps a connection pool alive across requests; the
// transient variant dials fresh per call.
type Transport struct {
	client *http.Client
	logger zerolog.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(t *Transport) {
		t.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *Transport) {
		t.client = client
	}
}

// WithoutConnectionReuse switches to the transient variant: a new
// connection per call, nothing kept alive between requests.
func WithoutConnectionReuse() TransportOption {
	return func(t *Transport) {
		timeout := t.client.Timeout
		t.client = cleanhttp.DefaultClient()
		t.client.Timeout = timeout
	}
}

// NewTransport creates a pooled transport with the default timeout.
func NewTransport(logger zerolog.Logger, opts ...TransportOption) *Transport {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = DefaultTimeout

	t := &Transport{client: client, logger: logger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PostJSON sends body to url with the given headers and returns the raw
// response. Content-Type defaults to JSON when the caller did not set it.
func (t *Transport) PostJSON(ctx context.Context, url string, header http.Header, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	t.logger.Debug().
		Str("url", url).
		Int("body_bytes", len(body)).
		Msg("Sending request")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Close releases idle pooled connections.
func (t *Transport) Close() {
	t.client.CloseIdleConnections()
}
