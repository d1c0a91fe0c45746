// Package bytehuff implements a byte-oriented Huffman compressor and
// decompressor.
//
// Encoding counts the occurrences of each of the 256 byte values, builds a
// Huffman tree with a fixed tie-break rule, and rewrites the input as a
// header line listing the non-zero frequencies followed by the packed bit
// codes.  Decoding parses the header, rebuilds the identical tree, and walks
// it one bit at a time.
//
// The tree is deterministic: nodes are ordered by weight, then by the
// smallest byte value in their subtree, so independent implementations
// produce bit-identical output.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package bytehuff
