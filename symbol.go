package bytehuff

// Symbol represents one byte value of the input alphabet.
type Symbol uint8

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the largest valid Symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
