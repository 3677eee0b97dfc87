package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/jsonstat/compress"
	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/internal/options"
)

// Fetcher retrieves and deserializes one JSON-stat document by URL.
//
// Implementations must be safe for concurrent use; collection traversal may
// fetch linked documents from multiple goroutines.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*document.Document, error)
}

// Client is the bundled HTTP Fetcher.
//
// It sends Accept: application/json, transparently decompresses gzip, zstd
// and lz4 response payloads, and optionally caches fetched documents in
// memory (documents are immutable snapshots, so cached entries never expire).
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string
	cache      *documentCache
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option = options.Option[*Client]

// WithHTTPClient replaces the underlying http.Client, e.g. to set timeouts or
// a proxy.
func WithHTTPClient(httpClient *http.Client) Option {
	return options.New(func(c *Client) error {
		if httpClient == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = httpClient

		return nil
	})
}

// WithLogger injects the structured log sink used for fetch failures.
// The default sink discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *Client) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(agent string) Option {
	return options.NoError(func(c *Client) {
		c.userAgent = agent
	})
}

// WithCache enables an in-memory document cache holding up to capacity
// fetched documents, keyed by URL hash.
func WithCache(capacity int) Option {
	return options.New(func(c *Client) error {
		if capacity <= 0 {
			return fmt.Errorf("cache capacity must be positive, got %d", capacity)
		}
		c.cache = newDocumentCache(capacity)

		return nil
	})
}

// NewClient creates an HTTP fetcher with the given options.
func NewClient(opts ...Option) (*Client, error) {
	client := &Client{
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(client, opts...); err != nil {
		return nil, err
	}

	return client, nil
}

// Fetch retrieves the document at rawURL.
//
// Error taxonomy: *InvalidURLError for unparsable URLs or schemes other than
// http/https, *HTTPError for non-2xx responses, *NetworkError for transport
// failures. JSON parse failures propagate unchanged from the parser.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*document.Document, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{URL: rawURL, Err: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &InvalidURLError{URL: rawURL, Err: fmt.Errorf("unsupported scheme %q", parsed.Scheme)}
	}

	if doc, ok := c.cache.get(rawURL); ok {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &InvalidURLError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("fetch failed", slog.String("url", rawURL), slog.Any("error", err))
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("fetch returned non-2xx status",
			slog.String("url", rawURL),
			slog.Int("status", resp.StatusCode),
		)

		return nil, &HTTPError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode), URL: rawURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("fetch body read failed", slog.String("url", rawURL), slog.Any("error", err))
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	data, err := compress.Sniff(body)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", rawURL, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	c.cache.put(rawURL, doc)

	return doc, nil
}

// documentCache is a bounded URL-keyed document cache. Entries never expire;
// when the cache is full new entries are simply not stored.
type documentCache struct {
	mu       sync.Mutex
	capacity int
	docs     map[uint64]*document.Document
}

func newDocumentCache(capacity int) *documentCache {
	return &documentCache{
		capacity: capacity,
		docs:     make(map[uint64]*document.Document, capacity),
	}
}

func (c *documentCache) get(url string) (*document.Document, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[xxhash.Sum64String(url)]

	return doc, ok
}

func (c *documentCache) put(url string, doc *document.Document) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	key := xxhash.Sum64String(url)
	if _, ok := c.docs[key]; !ok && len(c.docs) >= c.capacity {
		return
	}
	c.docs[key] = doc
}
