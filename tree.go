package bytehuff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bytehuff/internal/orderedlist"
)

// Node is a node of a Huffman code tree.
//
// A leaf carries the Symbol it encodes.  An internal node carries the smallest
// Symbol found anywhere in its subtree; that value only participates in
// ordering and is never emitted.
//
// A Node has either both children or neither.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	assert.Assertf((n.Left == nil) == (n.Right == nil), "node %d/%d has exactly one child", n.Symbol, n.Weight)
	return n.Left == nil
}

// Leaves returns the number of leaves in the subtree rooted at n.  A nil tree
// has no leaves.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Equal returns true iff both trees have the same shape, weights and symbols.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Symbol != other.Symbol || n.Weight != other.Weight {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, labelled with the bit path from the root.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var walk func(node *Node, path string)
	walk = func(node *Node, path string) {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\t%s = leaf {%d, %d}\n", strconv.Quote(path), node.Symbol, node.Weight)
			return
		}
		fmt.Fprintf(&buf, "\t%s = node {%d, %d}\n", strconv.Quote(path), node.Symbol, node.Weight)
		walk(node.Left, path+"0")
		walk(node.Right, path+"1")
	}
	if n != nil {
		walk(n, "")
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// CompareNodes orders nodes by Weight, then by Symbol.  This is the tie-break
// that makes BuildTree deterministic.
func CompareNodes(a, b *Node) int {
	switch {
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	case a.Symbol < b.Symbol:
		return -1
	case a.Symbol > b.Symbol:
		return 1
	default:
		return 0
	}
}

// BuildTree builds the Huffman code tree for the given frequencies.  It
// returns nil if every frequency is zero.  The frequencies must not sum to
// more than math.MaxUint64.
//
// Leaves are kept in an ordered list sorted by CompareNodes.  The two lowest
// nodes are repeatedly removed and merged, the first becoming the left child
// and the second the right child, until a single node (the root) remains.
func BuildTree(freqs *FrequencyTable) *Node {
	list := orderedlist.New(CompareNodes)
	for symbol, freq := range freqs {
		if freq != 0 {
			list.Add(&Node{Symbol: Symbol(symbol), Weight: freq})
		}
	}

	if list.IsEmpty() {
		return nil
	}

	for {
		first := mustRemoveFirst(list)
		if list.IsEmpty() {
			return first
		}
		second := mustRemoveFirst(list)

		merged := &Node{
			Symbol: min(first.Symbol, second.Symbol),
			Weight: first.Weight + second.Weight,
			Left:   first,
			Right:  second,
		}
		assert.Assertf(merged.Weight >= first.Weight, "weight of merged node overflows: %d + %d", first.Weight, second.Weight)

		// Subtrees in the list are disjoint, so no two of them can share a
		// minimum symbol.
		ok := list.Add(merged)
		assert.Assertf(ok, "merged node {%d, %d} collides with an existing node", merged.Symbol, merged.Weight)
	}
}

func mustRemoveFirst(list *orderedlist.List[*Node]) *Node {
	node, err := list.RemoveAt(0)
	assert.Assertf(err == nil, "BuildTree: %v", err)
	return node
}
