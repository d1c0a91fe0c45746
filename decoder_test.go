package bytehuff

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/chronos-tachyon/bytehuff/bitfile"
)

// stringBitReader serves a header and then the bits of a '0'/'1' string.
type stringBitReader struct {
	header string
	bits   string
	pos    int
}

func (r *stringBitReader) ReadText() (string, error) {
	return r.header, nil
}

func (r *stringBitReader) ReadBit() (byte, error) {
	if r.pos >= len(r.bits) {
		return 0, io.EOF
	}
	bit := r.bits[r.pos] - '0'
	r.pos++
	return bit, nil
}

func (r *stringBitReader) Close() error {
	return nil
}

var _ BitReader = (*stringBitReader)(nil)

func decodeForTest(packed []byte) ([]byte, error) {
	var out bytes.Buffer
	err := Decode(bitfile.NewReader(bytes.NewReader(packed)), &out)
	return out.Bytes(), err
}

func TestDecoder_Decode(t *testing.T) {
	freqs := makeTestFrequencies()
	var d Decoder
	d.Init(&freqs)

	if total := d.Total(); total != 32 {
		t.Errorf("wrong total:\n\texpect: 32\n\tactual: %d", total)
	}

	type testRow struct {
		bits     string
		symbol   Symbol
		consumed int
	}

	testData := [...]testRow{
		{bits: "1", symbol: 'd', consumed: 1},
		{bits: "01", symbol: 'c', consumed: 2},
		{bits: "001", symbol: 'b', consumed: 3},
		{bits: "0000", symbol: 'a', consumed: 4},
		{bits: "0001", symbol: 'f', consumed: 4},
		{bits: "1111", symbol: 'd', consumed: 1},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			r := &stringBitReader{bits: row.bits}
			symbol, err := d.Decode(r)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if symbol != row.symbol {
				t.Errorf("expected symbol %d, got %d", row.symbol, symbol)
			}
			if r.pos != row.consumed {
				t.Errorf("expected %d bits consumed, got %d", row.consumed, r.pos)
			}
		})
	}

	_, err := d.Decode(&stringBitReader{bits: "000"})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs['a'] = 3
	var d Decoder
	d.Init(&freqs)

	r := &stringBitReader{bits: "110"}
	for i := 0; i < 2; i++ {
		symbol, err := d.Decode(r)
		if err != nil || symbol != 'a' {
			t.Fatalf("Decode #%d:\n\texpect: 97, nil\n\tactual: %d, %v", i, symbol, err)
		}
	}
	if r.pos != 2 {
		t.Errorf("expected one bit per symbol, consumed %d", r.pos)
	}
	if _, err := d.Decode(r); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData on a 0 bit, got %v", err)
	}
}

func TestDecoder_Empty(t *testing.T) {
	var freqs FrequencyTable
	var d Decoder
	d.Init(&freqs)
	if d.Tree() != nil || d.Total() != 0 {
		t.Errorf("expected empty decoder")
	}
	if _, err := d.Decode(&stringBitReader{bits: "1"}); !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	type testRow struct {
		name   string
		packed []byte
		output string
	}

	testData := [...]testRow{
		{name: "empty", packed: nil, output: ""},
		{name: "single-symbol", packed: []byte("97 4\n\xf0"), output: "aaaa"},
		{name: "three-symbols", packed: []byte("97 3 98 4 99 2\n\xfc\x28"), output: "aaabbbbcc"},
		{name: "trailing-garbage-ignored", packed: []byte("97 3 98 4 99 2\n\xfc\x2b\xff"), output: "aaabbbbcc"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			output, err := decodeForTest(row.packed)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if string(output) != row.output {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.output, output)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	type testRow struct {
		name   string
		packed []byte
		err    error
	}

	testData := [...]testRow{
		{name: "malformed-header", packed: []byte("97 3 98\n\xff"), err: ErrMalformedHeader},
		{name: "non-numeric-header", packed: []byte("a b\n\xff"), err: ErrMalformedHeader},
		{name: "overflowing-header", packed: []byte("0 18446744073709551615 1 1\n\xff\xff"), err: ErrMalformedHeader},
		{name: "truncated", packed: []byte("97 3 98 4 99 2\n\xfc"), err: io.ErrUnexpectedEOF},
		{name: "missing-bits", packed: []byte("97 4\n"), err: io.ErrUnexpectedEOF},
		{name: "single-symbol-zero-bit", packed: []byte("97 2\n\x80"), err: ErrCorruptData},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := decodeForTest(row.packed)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	random := make([]byte, 10*1024)
	rng.Read(random)

	allBytes := make([]byte, NumSymbols)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	skewed := append(bytes.Repeat([]byte{'A'}, 1000), bytes.Repeat([]byte{'B'}, 10)...)
	skewed = append(skewed, 'C', 'C')

	testData := map[string][]byte{
		"empty":       nil,
		"one-byte":    {0x42},
		"two-bytes":   {0x00, 0xff},
		"repeated":    bytes.Repeat([]byte{'A'}, 4097),
		"all-bytes":   allBytes,
		"random":      random,
		"skewed":      skewed,
		"text":        []byte("a man a plan a canal panama\nmultiple\nlines\r\n"),
		"fibonacci":   fibonacciInput(),
		"nul-and-eol": []byte("\x00\n\x00\n\n"),
	}
	for name, input := range testData {
		t.Run(name, func(t *testing.T) {
			_, packed := encodeForTest(t, input)
			output, err := decodeForTest(packed)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(output, input) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(input), len(output))
			}
		})
	}
}

// fibonacciInput produces symbol frequencies following the Fibonacci sequence,
// the worst case for code length.
func fibonacciInput() []byte {
	var out []byte
	a, b := 1, 1
	for symbol := byte('a'); symbol <= 'p'; symbol++ {
		out = append(out, bytes.Repeat([]byte{symbol}, a)...)
		a, b = b, a+b
	}
	return out
}
