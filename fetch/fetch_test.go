package fetch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{"version": "2.0", "class": "dataset", "value": [1]}`

func TestFetch_Success(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	doc, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotAccept)

	class, ok := doc.GetString("class")
	require.True(t, ok)
	require.Equal(t, "dataset", class)
}

func TestFetch_GzipPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, _ = gz.Write([]byte(sampleBody))
		_ = gz.Close()
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	doc, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.True(t, doc.Has("value"))
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), server.URL+"/missing")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Contains(t, httpErr.Error(), "404")
}

func TestFetch_InvalidURL(t *testing.T) {
	client, err := NewClient()
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "ftp://example.com/data.json")
	var urlErr *InvalidURLError
	require.ErrorAs(t, err, &urlErr)

	_, err = client.Fetch(context.Background(), "://broken")
	require.ErrorAs(t, err, &urlErr)
}

func TestFetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, err := NewClient()
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), server.URL)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.NotNil(t, errors.Unwrap(netErr))
}

func TestFetch_MalformedJSONPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken": `))
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	// Parse failures are not transport failures.
	var netErr *NetworkError
	require.False(t, errors.As(err, &netErr))
}

func TestFetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Fetch(ctx, server.URL)
	require.Error(t, err)
}

func TestFetch_Cache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client, err := NewClient(WithCache(8))
	require.NoError(t, err)

	first, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	require.Same(t, first, second)
	require.Equal(t, int32(1), hits.Load())
}

func TestNewClient_OptionValidation(t *testing.T) {
	_, err := NewClient(WithHTTPClient(nil))
	require.Error(t, err)

	_, err = NewClient(WithLogger(nil))
	require.Error(t, err)

	_, err = NewClient(WithCache(0))
	require.Error(t, err)
}
