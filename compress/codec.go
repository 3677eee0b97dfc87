package compress

import (
	"bufio"
	"bytes"
	"io"
)

// Decompressor restores the original bytes of a compressed payload.
//
// Implementations must not modify the input slice; returned slices are newly
// allocated and owned by the caller.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Container format signatures, longest first where prefixes could overlap.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// detect returns the decompressor matching the payload's magic bytes, or nil
// when the payload matches no known container format.
func detect(data []byte) Decompressor {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return GzipDecompressor{}
	case bytes.HasPrefix(data, zstdMagic):
		return ZstdDecompressor{}
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4Decompressor{}
	default:
		return nil
	}
}

// Sniff inspects data for a known compression container and decompresses it,
// returning uncompressed data unchanged.
func Sniff(data []byte) ([]byte, error) {
	dec := detect(data)
	if dec == nil {
		return data, nil
	}

	return dec.Decompress(data)
}

// SniffReader is the streaming variant of Sniff: it peeks at the first bytes
// of r and, when a compression container is detected, returns a reader over
// the decompressed content. An uncompressed stream is returned buffered but
// otherwise untouched.
func SniffReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}

	dec := detect(head)
	if dec == nil {
		return br, nil
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	plain, err := dec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(plain), nil
}
