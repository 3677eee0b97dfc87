// Package compress provides transparent decompression of JSON-stat sources.
//
// Statistical agencies commonly serve large JSON-stat extracts compressed,
// either as gzip HTTP payloads or as .json.gz / .json.zst / .json.lz4 files.
// The read path does not want to care: it hands raw bytes to Sniff (or a
// stream to SniffReader) and gets plain JSON back.
//
// # Detection
//
// The container format is detected from magic bytes, never from file names:
//
//   - gzip: 1f 8b
//   - zstd: 28 b5 2f fd
//   - lz4 frame: 04 22 4d 18
//
// Data that matches none of the signatures is passed through unchanged, so
// uncompressed JSON costs nothing but the four-byte inspection.
//
// # Codecs
//
// Gzip and Zstd decompress with github.com/klauspost/compress; LZ4 frames
// decompress with github.com/pierrec/lz4/v4. The zstd decoder is pooled, it
// is designed for reuse and operates without allocations after warmup. All
// decompressors are safe for concurrent use.
package compress
