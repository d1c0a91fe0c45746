package bytehuff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its code, a string of '0' and '1' characters.
// Symbols that do not appear in the tree have an empty code.
type CodeTable [NumSymbols]string

// NewCodeTable derives the code of every leaf in the tree rooted at root.
// Descending to a left child appends '0'; descending to a right child appends
// '1'.
//
// A tree consisting of a single leaf has no edges to label, so that leaf is
// assigned the code "1".  This lets the decoder consume one bit per
// occurrence of the only symbol.
func NewCodeTable(root *Node) CodeTable {
	var table CodeTable
	switch {
	case root == nil:
		// empty input, no codes
	case root.IsLeaf():
		table[root.Symbol] = "1"
	default:
		fillCodes(&table, root, nil)
	}
	return table
}

func fillCodes(table *CodeTable, node *Node, path []byte) {
	if node.IsLeaf() {
		assert.Assertf(table[node.Symbol] == "", "symbol %d appears twice in the tree", node.Symbol)
		table[node.Symbol] = string(path)
		return
	}
	fillCodes(table, node.Left, append(path, '0'))
	fillCodes(table, node.Right, append(path, '1'))
}

// Code returns the code for the given Symbol.
func (table *CodeTable) Code(symbol Symbol) string {
	return table[symbol]
}

// MinSize is the bit length of the shortest code, or 0 if there are none.
func (table *CodeTable) MinSize() int {
	var size int
	for _, code := range table {
		if code != "" && (size == 0 || len(code) < size) {
			size = len(code)
		}
	}
	return size
}

// MaxSize is the bit length of the longest code.
func (table *CodeTable) MaxSize() int {
	var size int
	for _, code := range table {
		if len(code) > size {
			size = len(code)
		}
	}
	return size
}

// EncodedSize returns the number of bits produced by encoding an input with
// the given frequencies.
func (table *CodeTable) EncodedSize(freqs *FrequencyTable) uint64 {
	var bits uint64
	for symbol, freq := range freqs {
		bits += freq * uint64(len(table[symbol]))
	}
	return bits
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols without a code are omitted.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol, code := range table {
		if code == "" {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, strconv.Quote(code))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
