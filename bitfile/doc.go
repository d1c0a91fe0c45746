// Package bitfile provides the packed bit device used by bytehuff: a Writer
// that stores a text header followed by bits given as '0' and '1'
// characters, and a Reader that reads the header line back and then returns
// one bit at a time.
//
// Bits are packed most significant bit first.  The final byte is padded with
// zero bits.
package bitfile
