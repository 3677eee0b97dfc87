package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecompressor decompresses gzip payloads, the most common container for
// JSON-stat served over HTTP with Content-Encoding or stored as .json.gz.
type GzipDecompressor struct{}

var _ Decompressor = GzipDecompressor{}

// Decompress restores the original bytes of a gzip payload.
func (GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
