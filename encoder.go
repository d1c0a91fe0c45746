package bytehuff

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BitWriter is the packed output device used by Encode.
type BitWriter interface {
	// WriteText writes s verbatim.
	WriteText(s string) error

	// WriteBits packs a string of '0' and '1' characters into bits.
	WriteBits(bits string) error

	Close() error
}

// Encoder maps bytes to their Huffman codes.
type Encoder struct {
	freqs FrequencyTable
	root  *Node
	codes CodeTable
}

// Init initializes this Encoder from a table of byte frequencies.  The tree
// and codes are derived from scratch every time.
func (e *Encoder) Init(freqs *FrequencyTable) {
	root := BuildTree(freqs)
	*e = Encoder{
		freqs: *freqs,
		root:  root,
		codes: NewCodeTable(root),
	}
}

// Encode returns the code for the given Symbol.  Symbols that had a frequency
// of zero have no code.
func (e *Encoder) Encode(symbol Symbol) string {
	return e.codes[symbol]
}

// Header returns the header line describing this Encoder's frequencies.
func (e *Encoder) Header() string {
	return CreateHeader(&e.freqs)
}

// Tree returns the root of the code tree, or nil if no symbols are coded.
func (e *Encoder) Tree() *Node {
	return e.root
}

// Codes returns the full code table.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// EncodeBytes returns the concatenated codes of each byte of p.
func (e *Encoder) EncodeBytes(p []byte) string {
	var buf strings.Builder
	for _, b := range p {
		buf.WriteString(e.codes[b])
	}
	return buf.String()
}

// Encode compresses src.  The header line (if any) and the code bits are
// written as text to text and in packed form to packed.
//
// src is read twice: once to count frequencies, and again, after seeking back
// to the start, to emit codes.  Encode does not close any of its arguments.
func Encode(src io.ReadSeeker, text io.Writer, packed BitWriter) error {
	freqs, err := CountFrequencies(src)
	if err != nil {
		return err
	}

	var e Encoder
	e.Init(&freqs)

	if header := e.Header(); header != "" {
		line := header + "\n"
		if _, err := io.WriteString(text, line); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := packed.WriteText(line); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding input: %w", err)
	}

	var bits strings.Builder
	bits.Grow(int(e.codes.EncodedSize(&freqs)))
	br := bufio.NewReader(src)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		code := e.codes[b]
		if code == "" {
			return fmt.Errorf("%w: byte %d was not counted on the first pass", ErrCorruptData, b)
		}
		bits.WriteString(code)
	}

	if _, err := io.WriteString(text, bits.String()); err != nil {
		return fmt.Errorf("writing code bits: %w", err)
	}
	if err := packed.WriteBits(bits.String()); err != nil {
		return fmt.Errorf("writing code bits: %w", err)
	}
	return nil
}
