//go:build !cgo || !oodle

package oodle

const available = false

func decompress(src, dst []byte) (int64, error) {
	return 0, ErrUnsupported
}
