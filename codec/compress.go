// Package codec implements the byte-stream transformations applied around
// parsing: gzip compression, password-based encryption, and character set
// decoding. The formats are opaque to the parser core; the loader composes
// them into a pipeline (decrypt, decompress, decode) before the scan and the
// inverse pipeline after serialization.
//
// Unlike malformed content lines, codec failures are hard errors: a corrupt
// stream or wrong password surfaces to the caller.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compress gzips data.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress gunzips data.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return out, nil
}
