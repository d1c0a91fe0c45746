package bytehuff

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/bytehuff/internal/orderedlist"
)

// CreateHeader serializes the non-zero entries of freqs as space-separated
// "symbol frequency" pairs in ascending Symbol order, e.g. "97 3 98 4 99 2".
// An all-zero table yields the empty string.
func CreateHeader(freqs *FrequencyTable) string {
	var buf strings.Builder
	for symbol, freq := range freqs {
		if freq == 0 {
			continue
		}
		if buf.Len() != 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.Itoa(symbol))
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatUint(freq, 10))
	}
	return buf.String()
}

// ParseHeader is the inverse of CreateHeader.  Symbols not listed have a
// frequency of 0.
//
// The header is rejected with ErrMalformedHeader if it has an odd number of
// fields, if a field is not a non-negative integer, if a symbol is outside
// [0, 255], if a symbol is listed more than once, or if the frequencies sum
// to more than math.MaxUint64.
func ParseHeader(header string) (FrequencyTable, error) {
	var freqs FrequencyTable
	fields := strings.Fields(header)
	if len(fields)%2 != 0 {
		return FrequencyTable{}, fmt.Errorf("%w: odd number of fields (%d)", ErrMalformedHeader, len(fields))
	}

	seen := orderedlist.NewOrdered[Symbol]()
	var total uint64
	for i := 0; i < len(fields); i += 2 {
		symbol, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("%w: field %d: invalid symbol %q", ErrMalformedHeader, i, fields[i])
		}
		freq, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("%w: field %d: invalid frequency %q", ErrMalformedHeader, i+1, fields[i+1])
		}
		if !seen.Add(Symbol(symbol)) {
			return FrequencyTable{}, fmt.Errorf("%w: field %d: symbol %d listed twice", ErrMalformedHeader, i, symbol)
		}
		var carry uint64
		total, carry = bits.Add64(total, freq, 0)
		if carry != 0 {
			return FrequencyTable{}, fmt.Errorf("%w: field %d: total frequency overflows", ErrMalformedHeader, i+1)
		}
		freqs[symbol] = freq
	}
	return freqs, nil
}
