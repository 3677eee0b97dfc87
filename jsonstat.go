// Package jsonstat reads and writes JSON-stat, the lightweight JSON format
// for statistical data dissemination, converting between its cube-oriented
// wire form and flat row-oriented tables.
//
// Both wire format versions in circulation are supported: the flat 2.0
// dataset envelope and the legacy 1.3 bundle. Values may be dense or sparse
// (keyed by flat index), category order follows the declared index positions
// rather than source key order, and numeric precision survives round trips.
//
// # Basic Usage
//
// Reading a dataset and flattening it into a table:
//
//	ds, err := jsonstat.ReadDataset(ctx, "https://json-stat.org/samples/oecd-canada.json")
//	if err != nil {
//	    return err
//	}
//	tbl, err := ds.Table()
//
// Encoding a table back into JSON-stat:
//
//	ds, err := jsonstat.ReadDataset(ctx, tbl)
//	text, err := ds.JSON()
//
// Point queries address one cell by naming a category per dimension:
//
//	v, err := ds.Value(map[string]string{"region": "north", "year": "2024"})
//
// # Sources
//
// The Read functions accept several source kinds: an already parsed
// *document.Document, a *table.Table (datasets and dimensions only), a JSON
// text string, raw []byte, an io.Reader, or a URL string (recognized by an
// http://, https://, ftp:// or ftps:// prefix). Byte and reader sources pass
// through compression sniffing, so .json.gz, .json.zst and .json.lz4 payloads
// decode transparently. URL sources are retrieved through a fetch.Fetcher,
// replaceable with WithFetcher.
//
// # Package Structure
//
// This package provides the document classes (Dataset, Dimension, Collection)
// and their read/write surface. The codec itself lives in the cube package;
// document, table, fetch and compress carry the supporting pieces.
package jsonstat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arloliu/jsonstat/compress"
	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/fetch"
	"github.com/arloliu/jsonstat/internal/options"
)

var (
	// ErrUnsupportedFormat indicates a Write target this document class does
	// not support.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrUnsupportedSource indicates a Read source of an unhandled type.
	ErrUnsupportedSource = errors.New("unsupported source type")
)

// readConfig holds the settings shared by the Read functions.
type readConfig struct {
	fetcher fetch.Fetcher
}

// ReadOption configures the Read functions.
type ReadOption = options.Option[*readConfig]

// WithFetcher replaces the fetcher used for URL sources. The default is a
// plain fetch.Client with a discarding log sink.
func WithFetcher(fetcher fetch.Fetcher) ReadOption {
	return options.New(func(c *readConfig) error {
		if fetcher == nil {
			return errors.New("fetcher cannot be nil")
		}
		c.fetcher = fetcher

		return nil
	})
}

// defaultFetcher builds the fallback HTTP fetcher once.
var defaultFetcher = sync.OnceValue(func() fetch.Fetcher {
	client, err := fetch.NewClient()
	if err != nil {
		// NewClient without options cannot fail.
		panic(err)
	}

	return client
})

func newReadConfig(opts []ReadOption) (*readConfig, error) {
	cfg := &readConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.fetcher == nil {
		cfg.fetcher = defaultFetcher()
	}

	return cfg, nil
}

// IsURL reports whether s looks like a remote document reference: a string
// with an http://, https://, ftp:// or ftps:// scheme prefix.
func IsURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "ftp://", "ftps://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

// readDocument resolves the source kinds shared by all three document
// classes. Table sources are handled by the per-class Read functions.
func readDocument(ctx context.Context, cfg *readConfig, source any) (*document.Document, error) {
	switch src := source.(type) {
	case *document.Document:
		return src, nil
	case string:
		if IsURL(src) {
			return cfg.fetcher.Fetch(ctx, src)
		}

		return document.Parse([]byte(src))
	case []byte:
		data, err := compress.Sniff(src)
		if err != nil {
			return nil, err
		}

		return document.Parse(data)
	case io.Reader:
		r, err := compress.SniffReader(src)
		if err != nil {
			return nil, err
		}

		return document.ParseReader(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
}
