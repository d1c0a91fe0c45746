package bytehuff

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads r to EOF and counts every byte it returns.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return freqs, fmt.Errorf("counting frequencies: %w", err)
		}
		freqs[b]++
	}
}

// CountFileFrequencies counts the bytes of the named file.
func CountFileFrequencies(name string) (FrequencyTable, error) {
	f, err := openSource(name)
	if err != nil {
		return FrequencyTable{}, err
	}
	defer f.Close()
	return CountFrequencies(f)
}

// Add counts each byte of p.
func (freqs *FrequencyTable) Add(p []byte) {
	for _, b := range p {
		freqs[b]++
	}
}

// Total returns the number of bytes counted.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// NumDistinct returns the number of Symbols with a non-zero frequency.
func (freqs *FrequencyTable) NumDistinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

func openSource(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	return f, nil
}
