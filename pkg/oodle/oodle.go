// Package oodle binds the OodleLZ decompressor.
package oodle

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxSize is the default ceiling for both the compressed and the decompressed buffer.
const MaxSize = 64 * 1024 * 1024

var (
	ErrDecompress  = errors.New("oodle decompression failed")
	ErrEmptyInput  = errors.New("input data is empty")
	ErrEmptyOutput = errors.New("output buffer is empty")
	ErrUnsupported = errors.New("built without Oodle support (rebuild with -tags oodle and CGO_ENABLED=1)")
)

// Error is a negative result returned by OodleLZ_Decompress.
type Error struct {
	Code int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("oodle decompression failed with code %d", e.Code)
}

// Is lets errors.Is(err, ErrDecompress) match any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrDecompress
}

// Decoder calls OodleLZ_Decompress with fixed flags:
// fuzz safe, no CRC check, no verbosity, no callback and no decoder memory.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decompress decompresses src into dst and returns the number of bytes the
// library reports as written. The call is made exactly once.
func (d *Decoder) Decompress(src, dst []byte) (int64, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if len(dst) == 0 {
		return 0, ErrEmptyOutput
	}
	n, err := decompress(src, dst)
	if err != nil {
		return n, errors.Wrap(err, "OodleLZ_Decompress")
	}
	if n < 0 {
		return n, errors.WithStack(&Error{Code: n})
	}
	return n, nil
}

// Available reports whether the binary was linked against the Oodle library.
func Available() bool {
	return available
}
