package bytehuff

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronos-tachyon/bytehuff/bitfile"
)

var (
	_ BitWriter = (*bitfile.Writer)(nil)
	_ BitReader = (*bitfile.Reader)(nil)
)

// CompressedName returns the name of the packed output that EncodeFile
// writes alongside outFile: "_compressed" is inserted before the extension,
// so "out.txt" becomes "out_compressed.txt".
func CompressedName(outFile string) string {
	ext := filepath.Ext(outFile)
	return strings.TrimSuffix(outFile, ext) + "_compressed" + ext
}

// EncodeFile encodes inFile, writing the human-readable form (header line and
// '0'/'1' characters) to outFile and the packed form to
// CompressedName(outFile).
//
// A missing inFile yields ErrSourceNotFound and creates nothing.  If encoding
// fails after the outputs were created, they are removed.
func EncodeFile(inFile, outFile string) (err error) {
	src, err := openSource(inFile)
	if err != nil {
		return err
	}
	defer src.Close()

	packedFile := CompressedName(outFile)

	text, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer removeOnError(&err, outFile)
	defer closeInto(&err, text)

	packed, err := bitfile.Create(packedFile)
	if err != nil {
		return err
	}
	defer removeOnError(&err, packedFile)
	defer closeInto(&err, packed)

	if err := Encode(src, text, packed); err != nil {
		return fmt.Errorf("encoding %s: %w", inFile, err)
	}
	return nil
}

// DecodeFile decodes the packed file encodedFile and writes the original bytes
// to decodedFile.
//
// A missing encodedFile yields ErrSourceNotFound and creates nothing.  If
// decoding fails after decodedFile was created, it is removed.
func DecodeFile(encodedFile, decodedFile string) (err error) {
	packed, err := bitfile.Open(encodedFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	defer packed.Close()

	dst, err := os.Create(decodedFile)
	if err != nil {
		return err
	}
	defer removeOnError(&err, decodedFile)
	defer closeInto(&err, dst)

	if err := Decode(packed, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", encodedFile, err)
	}
	return nil
}

// closeInto closes c and records its error in *errp unless an earlier error
// is already there.
func closeInto(errp *error, c io.Closer) {
	if err := c.Close(); err != nil && *errp == nil {
		*errp = err
	}
}

func removeOnError(errp *error, name string) {
	if *errp == nil {
		return
	}
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		*errp = errors.Join(*errp, err)
	}
}
