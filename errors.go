package bytehuff

import (
	"errors"

	"github.com/chronos-tachyon/bytehuff/internal/orderedlist"
)

// ErrSourceNotFound is returned when an input or encoded file cannot be
// opened.
var ErrSourceNotFound = errors.New("source not found")

// ErrMalformedHeader is returned when a header line cannot be parsed back into
// a FrequencyTable.
var ErrMalformedHeader = errors.New("malformed header")

// ErrCorruptData is returned when the packed bits do not describe a valid path
// through the code tree.
var ErrCorruptData = errors.New("corrupt data")

// ErrIndexOutOfRange is returned when an ordered list is asked to remove an
// item at a position it does not have.
var ErrIndexOutOfRange = orderedlist.ErrIndexOutOfRange
