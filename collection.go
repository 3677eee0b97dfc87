package jsonstat

import (
	"context"
	"fmt"

	"github.com/arloliu/jsonstat/cube"
	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/fetch"
	"github.com/arloliu/jsonstat/format"
	"github.com/arloliu/jsonstat/table"
)

// Collection is a JSON-stat collection document: a list of links to datasets,
// dimensions and further collections under link.item.
//
// The fetcher used to read the collection is retained for dereferencing the
// linked documents.
type Collection struct {
	doc     *document.Document
	fetcher fetch.Fetcher
}

// ReadCollection constructs a Collection from a document, JSON text, bytes,
// reader or URL source.
func ReadCollection(ctx context.Context, source any, opts ...ReadOption) (*Collection, error) {
	cfg, err := newReadConfig(opts)
	if err != nil {
		return nil, err
	}

	doc, err := readDocument(ctx, cfg, source)
	if err != nil {
		return nil, err
	}

	return &Collection{doc: doc, fetcher: cfg.fetcher}, nil
}

// Document returns the collection's underlying ordered document.
func (c *Collection) Document() *document.Document {
	return c.doc
}

// JSON serializes the collection to JSON-stat text.
func (c *Collection) JSON() (string, error) {
	return c.doc.JSON()
}

// Len returns the number of linked items.
func (c *Collection) Len() int {
	items, err := c.items()
	if err != nil {
		return 0
	}

	return len(items)
}

// Item dereferences the i-th linked item into an object of its declared
// class: *Dataset, *Dimension or *Collection.
func (c *Collection) Item(ctx context.Context, i int) (any, error) {
	items, err := c.items()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("collection has %d items, requested %d", len(items), i)
	}

	class, href, err := itemLink(items[i])
	if err != nil {
		return nil, err
	}

	doc, err := c.fetcher.Fetch(ctx, href)
	if err != nil {
		return nil, err
	}

	switch class {
	case format.ClassDataset.String():
		return &Dataset{doc: doc}, nil
	case format.ClassCollection.String():
		return &Collection{doc: doc, fetcher: c.fetcher}, nil
	case format.ClassDimension.String():
		return &Dimension{doc: doc}, nil
	default:
		return nil, fmt.Errorf("item %d has class %q, expected dataset, collection or dimension", i, class)
	}
}

// Tables dereferences and decodes every dataset reachable from the
// collection, depth first, descending into nested collections. Decoding
// options pass through to cube.Decode. Items of other classes are skipped.
func (c *Collection) Tables(ctx context.Context, opts ...cube.DecodeOption) ([]*table.Table, error) {
	var tables []*table.Table
	if err := c.unnest(ctx, c.doc, &tables, opts); err != nil {
		return nil, err
	}

	return tables, nil
}

// Write serializes the collection to the requested target: JSON-stat text for
// format.OutputJSON, a []*table.Table for format.OutputTableList. Table
// output dereferences linked documents, hence the context.
func (c *Collection) Write(ctx context.Context, target format.OutputFormat) (any, error) {
	switch target {
	case format.OutputJSON:
		return c.JSON()
	case format.OutputTableList:
		return c.Tables(ctx)
	default:
		return nil, fmt.Errorf("%w: %s, collection targets are jsonstat or table_list", ErrUnsupportedFormat, target)
	}
}

func (c *Collection) unnest(ctx context.Context, doc *document.Document, acc *[]*table.Table, opts []cube.DecodeOption) error {
	items, err := collectionItems(doc)
	if err != nil {
		return err
	}

	for i, item := range items {
		class, href, err := itemLink(item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}

		switch class {
		case format.ClassDataset.String():
			fetched, err := c.fetcher.Fetch(ctx, href)
			if err != nil {
				return err
			}
			ds := &Dataset{doc: fetched}
			tbl, err := ds.Table(opts...)
			if err != nil {
				return err
			}
			*acc = append(*acc, tbl)
		case format.ClassCollection.String():
			fetched, err := c.fetcher.Fetch(ctx, href)
			if err != nil {
				return err
			}
			if err := c.unnest(ctx, fetched, acc, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Collection) items() ([]*document.Document, error) {
	return collectionItems(c.doc)
}

func collectionItems(doc *document.Document) ([]*document.Document, error) {
	link, ok := doc.GetDocument("link")
	if !ok {
		return nil, fmt.Errorf("collection has no link object")
	}
	arr, ok := link.GetArray("item")
	if !ok {
		return nil, fmt.Errorf("collection link has no item list")
	}

	items := make([]*document.Document, len(arr))
	for i, v := range arr {
		item, ok := v.(*document.Document)
		if !ok {
			return nil, fmt.Errorf("collection item %d is not an object", i)
		}
		items[i] = item
	}

	return items, nil
}

func itemLink(item *document.Document) (class, href string, err error) {
	class, ok := item.GetString("class")
	if !ok {
		return "", "", fmt.Errorf("linked item has no class")
	}
	href, ok = item.GetString("href")
	if !ok {
		return "", "", fmt.Errorf("linked item has no href")
	}

	return class, href, nil
}
