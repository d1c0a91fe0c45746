package bitfile

import (
	"io"
	"os"
	"strings"

	"github.com/icza/bitio"
)

// Reader reads a text header line and then individual bits.
type Reader struct {
	br    *bitio.Reader
	owned io.Closer
}

// NewReader returns a Reader that reads from r.  Closing the Reader does not
// close r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Open opens the named file for reading.  Closing the Reader closes the file.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Reader{br: bitio.NewReader(f), owned: f}, nil
}

// ReadText reads bytes up to the next '\n', which is consumed but not
// returned.  Reaching the end of the input also ends the line, so an empty
// input yields "".
func (r *Reader) ReadText() (string, error) {
	var buf strings.Builder
	for {
		b, err := r.br.ReadByte()
		if err == io.EOF {
			return buf.String(), nil
		}
		if err != nil {
			return buf.String(), err
		}
		if b == '\n' {
			return buf.String(), nil
		}
		buf.WriteByte(b)
	}
}

// ReadBit returns the next bit as 0 or 1, or io.EOF at the end of the input.
func (r *Reader) ReadBit() (byte, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	if bit {
		return 1, nil
	}
	return 0, nil
}

// Close closes the file if the Reader was returned by Open.
func (r *Reader) Close() error {
	if r.owned != nil {
		return r.owned.Close()
	}
	return nil
}
