package bitfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"
)

// ErrInvalidBit is returned by WriteBits when given a character other than '0'
// or '1'.
var ErrInvalidBit = errors.New("invalid bit character")

// Writer packs bits into an underlying io.Writer.
type Writer struct {
	bw    *bitio.Writer
	owned io.Closer
}

// NewWriter returns a Writer that writes to w.  Closing the Writer flushes any
// partial byte but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// Create creates (or truncates) the named file and returns a Writer for it.
// Closing the Writer closes the file.
func Create(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &Writer{bw: bitio.NewWriter(f), owned: f}, nil
}

// WriteText writes the bytes of s.
func (w *Writer) WriteText(s string) error {
	_, err := w.bw.Write([]byte(s))
	return err
}

// WriteBits packs each '0' or '1' character of bits as a single bit.
func (w *Writer) WriteBits(bits string) error {
	var acc uint64
	var n uint8
	for i := 0; i < len(bits); i++ {
		acc <<= 1
		switch bits[i] {
		case '0':
		case '1':
			acc |= 1
		default:
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[i], i)
		}
		n++
		if n == 64 {
			if err := w.bw.WriteBits(acc, n); err != nil {
				return err
			}
			acc, n = 0, 0
		}
	}
	if n != 0 {
		return w.bw.WriteBits(acc, n)
	}
	return nil
}

// Close pads the last byte with zero bits and flushes it.  If the Writer was
// returned by Create, the file is closed as well.
func (w *Writer) Close() error {
	err := w.bw.Close()
	if w.owned != nil {
		if err2 := w.owned.Close(); err == nil {
			err = err2
		}
	}
	return err
}
