package bytehuff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// BitReader is the packed input device used by Decode.
type BitReader interface {
	// ReadText reads the header line, without its trailing newline.
	ReadText() (string, error)

	// ReadBit returns the next bit, 0 or 1.  It returns io.EOF once the
	// input is exhausted.
	ReadBit() (byte, error)

	Close() error
}

// Decoder maps bit sequences back to bytes by walking a code tree.
type Decoder struct {
	root *Node
}

// Init initializes this Decoder from a table of byte frequencies.  The same
// table given to Encoder.Init yields the same tree.
func (d *Decoder) Init(freqs *FrequencyTable) {
	*d = Decoder{root: BuildTree(freqs)}
}

// Total is the number of symbols the encoded stream holds: the weight of the
// root, or 0 for an empty tree.
func (d *Decoder) Total() uint64 {
	if d.root == nil {
		return 0
	}
	return d.root.Weight
}

// Tree returns the root of the code tree, or nil if no symbols are coded.
func (d *Decoder) Tree() *Node {
	return d.root
}

// Decode reads bits from r, starting at the root, until it reaches a leaf, and
// returns that leaf's Symbol.
//
// A tree consisting of a single leaf consumes exactly one bit, which must be
// 1.  Running out of bits mid-symbol yields io.ErrUnexpectedEOF.
func (d *Decoder) Decode(r BitReader) (Symbol, error) {
	if d.root == nil {
		return 0, fmt.Errorf("%w: no symbols to decode", ErrCorruptData)
	}

	node := d.root
	if node.IsLeaf() {
		bit, err := readBit(r)
		if err != nil {
			return 0, err
		}
		if bit != 1 {
			return 0, fmt.Errorf("%w: expected a 1 bit for the only symbol %d", ErrCorruptData, node.Symbol)
		}
		return node.Symbol, nil
	}

	for !node.IsLeaf() {
		bit, err := readBit(r)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Symbol, nil
}

func readBit(r BitReader) (byte, error) {
	bit, err := r.ReadBit()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading code bits: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, fmt.Errorf("reading code bits: %w", err)
	}
	return bit, nil
}

// Decode decompresses packed and writes the original bytes to dst.  Exactly
// as many symbols are decoded as the header accounts for; trailing padding
// bits are ignored.  Decode does not close any of its arguments.
func Decode(packed BitReader, dst io.Writer) error {
	header, err := packed.ReadText()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	freqs, err := ParseHeader(header)
	if err != nil {
		return err
	}

	var d Decoder
	d.Init(&freqs)

	bw := bufio.NewWriter(dst)
	for i, n := uint64(0), d.Total(); i < n; i++ {
		symbol, err := d.Decode(packed)
		if err != nil {
			return fmt.Errorf("symbol %d of %d: %w", i, n, err)
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
