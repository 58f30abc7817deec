package reader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression format of an export file
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// Magic byte signatures for compression detection
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DetectCompression peeks at the head of r without consuming it.
func DetectCompression(r *bufio.Reader) CompressionType {
	// XZ has the longest magic (6 bytes); short reads just match less.
	header, _ := r.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ
	default:
		return CompressionNone
	}
}

// decompress wraps src in a decompressor matching its magic bytes. Plain
// text is passed through. The returned closer releases the decompressor, not
// src.
func decompress(src io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(src)

	switch ct := DetectCompression(br); ct {
	case CompressionGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gz, gz, nil
	case CompressionBzip2:
		return bzip2.NewReader(br), io.NopCloser(nil), nil
	case CompressionXZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xr, io.NopCloser(nil), nil
	default:
		return br, io.NopCloser(nil), nil
	}
}
