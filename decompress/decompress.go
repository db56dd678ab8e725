//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package decompress implements buffer decompression with explicit
// output bounds.
package decompress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// Errors returned by the decompressors.
var (
	ErrTooLarge = errors.New("output too large")
	ErrFormat   = errors.New("invalid compressed data")
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Lossless decompresses src and returns the decompressed data. The
// input is a zstd frame if it starts with the zstd magic number and
// raw DEFLATE data otherwise. The function fails with ErrTooLarge if
// the output would be longer than maxLen bytes.
func Lossless(src []byte, maxLen int) ([]byte, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("decompress.Lossless: maxLen=%d: %w",
			maxLen, ErrTooLarge)
	}
	var r io.ReadCloser
	if bytes.HasPrefix(src, zstdMagic) {
		dec, err := zstd.NewReader(bytes.NewReader(src),
			zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("decompress.Lossless: %v: %w", err,
				ErrFormat)
		}
		r = dec.IOReadCloser()
	} else {
		r = flate.NewReader(bytes.NewReader(src))
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, int64(maxLen)+1))
	if err != nil {
		return nil, fmt.Errorf("decompress.Lossless: %v: %w", err,
			ErrFormat)
	}
	if len(out) > maxLen {
		return nil, fmt.Errorf("decompress.Lossless: output exceeds %d bytes: %w",
			maxLen, ErrTooLarge)
	}
	return out, nil
}

// Lossy reconstructs a signal from its every-other-sample
// downsampling. The output keeps the samples of src at the even
// positions and fills each odd position with the rounded mean of its
// neighbours, so the output has 2*len(src)-1 bytes. The function fails
// with ErrTooLarge if the output would be longer than maxLen bytes.
func Lossy(src []byte, maxLen int) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	n := 2*len(src) - 1
	if n > maxLen {
		return nil, fmt.Errorf("decompress.Lossy: output %d exceeds %d bytes: %w",
			n, maxLen, ErrTooLarge)
	}
	out := make([]byte, n)
	for i, b := range src {
		out[2*i] = b
		if i+1 < len(src) {
			out[2*i+1] = byte((uint(b) + uint(src[i+1]) + 1) / 2)
		}
	}
	return out, nil
}
