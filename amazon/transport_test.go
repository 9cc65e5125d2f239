package amazon

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, "value", r.Header.Get("X-Custom"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"keywords":"laptop"}`, string(body))

		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer server.Close()

	tr := NewTransport(zerolog.Nop())
	defer tr.Close()

	header := http.Header{}
	header.Set("X-Custom", "value")
	resp, err := tr.PostJSON(context.Background(), server.URL, header, []byte(`{"keywords":"laptop"}`))
	require.NoError(t, err)

	// The transport surfaces status and body without interpreting them.
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", string(resp.Body))
}

func TestTransportOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		tr := NewTransport(zerolog.Nop(), WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, tr.client.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		tr := NewTransport(zerolog.Nop())
		assert.Equal(t, DefaultTimeout, tr.client.Timeout)
	})

	t.Run("transient variant keeps the timeout", func(t *testing.T) {
		tr := NewTransport(zerolog.Nop(), WithTimeout(5*time.Second), WithoutConnectionReuse())
		assert.Equal(t, 5*time.Second, tr.client.Timeout)
	})

	t.Run("custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		tr := NewTransport(zerolog.Nop(), WithHTTPClient(custom))
		assert.Equal(t, custom, tr.client)
	})
}
