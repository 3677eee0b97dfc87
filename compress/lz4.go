package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Decompressor decompresses LZ4 frame payloads.
type LZ4Decompressor struct{}

var _ Decompressor = LZ4Decompressor{}

// Decompress restores the original bytes of an LZ4 frame payload.
func (LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}
