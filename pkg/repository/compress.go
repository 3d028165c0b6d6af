package repository

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// edge files ending in .zst are zstd streams.
const compressedSuffix = ".zst"

func isCompressed(path string) bool {
	return strings.HasSuffix(path, compressedSuffix)
}

// decompressReader wraps r when path is compressed. the returned func releases the decoder.
func decompressReader(path string, r io.Reader) (io.Reader, func(), error) {
	if !isCompressed(path) {
		return r, func() {}, nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return d, d.Close, nil
}

// compressWriter wraps w when path is compressed. Close flushes the encoder, not w.
func compressWriter(path string, w io.Writer) (io.WriteCloser, error) {
	if !isCompressed(path) {
		return nopWriteCloser{w}, nil
	}
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return encoder, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
