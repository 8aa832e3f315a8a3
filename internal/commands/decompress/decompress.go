// Package decompress contains the decompress command.
package decompress

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/blacktop/oodle-helper/pkg/oodle"
	"github.com/dustin/go-humanize"
)

var (
	ErrUsage        = errors.New("usage")
	ErrInvalidSize  = errors.New("invalid decompressed size")
	ErrInvalidMax   = errors.New("invalid max size")
	ErrOpenInput    = errors.New("failed to open input")
	ErrReadInput    = errors.New("failed to read input")
	ErrNoInput      = errors.New("no input data")
	ErrDecompress   = errors.New("decompression failed")
	ErrSizeMismatch = errors.New("size mismatch")
	ErrOpenOutput   = errors.New("failed to open output")
	ErrShortWrite   = errors.New("failed to write output")
)

// Decompressor decompresses src into dst and returns the number of bytes produced.
// A negative count or a non-nil error means failure.
type Decompressor interface {
	Decompress(src, dst []byte) (int64, error)
}

// Config is the decompress command configuration.
type Config struct {
	// expected size of the decompressed data
	Size int64 `json:"size,omitempty"`
	// path to read compressed data from (file mode)
	Input string `json:"input,omitempty"`
	// path to write decompressed data to (file mode)
	Output string `json:"output,omitempty"`
	// ceiling for both buffers
	MaxSize int64 `json:"max_size,omitempty"`
}

// FileMode reports whether input and output are filesystem paths rather than stdin/stdout.
func (c *Config) FileMode() bool {
	return c.Input != "" || c.Output != ""
}

// Verify checks the configuration before any I/O is done.
func (c *Config) Verify() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMax, c.MaxSize)
	}
	if (c.Input == "") != (c.Output == "") {
		return fmt.Errorf("%w: input and output paths must both be set", ErrUsage)
	}
	if c.Size <= 0 || c.Size > c.MaxSize {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	return nil
}

// Run decompresses one buffer. A zero MaxSize means oodle.MaxSize. In file mode
// the output path is only opened once decompression has succeeded.
func Run(c *Config, dec Decompressor, stdin io.Reader, stdout io.Writer) error {
	conf := *c
	if conf.MaxSize == 0 {
		conf.MaxSize = oodle.MaxSize
	}
	if err := conf.Verify(); err != nil {
		return err
	}

	var in io.Reader = stdin
	if conf.FileMode() {
		f, err := os.Open(conf.Input)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOpenInput, conf.Input, err)
		}
		defer f.Close()
		in = f
	}

	compressed, err := readAll(in, conf.MaxSize)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"compressed":   humanize.IBytes(uint64(len(compressed))),
		"decompressed": humanize.IBytes(uint64(conf.Size)),
	}).Debug("Decompressing")

	decompressed := make([]byte, conf.Size)
	n, err := dec.Decompress(compressed, decompressed)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	if n < 0 {
		return fmt.Errorf("%w: code %d", ErrDecompress, n)
	}
	if n != conf.Size {
		return fmt.Errorf("%w: expected %d, got %d", ErrSizeMismatch, conf.Size, n)
	}

	if !conf.FileMode() {
		return writeAll(stdout, decompressed)
	}

	f, err := os.OpenFile(conf.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpenOutput, conf.Output, err)
	}
	if err := writeAll(f, decompressed); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrShortWrite, conf.Output, err)
	}

	log.WithFields(log.Fields{
		"output": conf.Output,
		"size":   humanize.IBytes(uint64(n)),
	}).Debug("Decompressed")

	return nil
}

// readAll reads until EOF or max bytes, whichever comes first.
func readAll(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(data) == 0 {
		return nil, ErrNoInput
	}
	return data, nil
}

func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShortWrite, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(data))
	}
	return nil
}
