package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Symbol represents a symbol in the byte alphabet: one of the 256 raw byte
// values, or PseudoEOF.  Values above MaxSymbol are not valid.
type Symbol uint16

const (
	// PseudoEOF is the synthetic end-of-stream symbol.  It is added to
	// every FrequencyTable and its code is always the last one written.
	PseudoEOF = Symbol(256)

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = PseudoEOF

	// NumSymbols is the number of symbols in the alphabet.
	NumSymbols = int(MaxSymbol) + 1
)

// ByteSymbol returns the Symbol for a raw byte value.
func ByteSymbol(b byte) Symbol {
	return Symbol(b)
}

// Valid returns true iff this Symbol is a byte value or PseudoEOF.
func (s Symbol) Valid() bool {
	return s <= MaxSymbol
}

// IsByte returns true iff this Symbol stands for a raw byte value.
func (s Symbol) IsByte() bool {
	return s < PseudoEOF
}

// Byte returns the raw byte value of this Symbol.  It must not be called on
// PseudoEOF.
func (s Symbol) Byte() byte {
	assert.Assertf(s.IsByte(), "Symbol %d is not a byte", uint16(s))
	return byte(s)
}

// String returns a programmer-readable representation of this Symbol.
func (s Symbol) String() string {
	switch {
	case s == PseudoEOF:
		return "EOF"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	case s.IsByte():
		return fmt.Sprintf("0x%02x", uint16(s))
	default:
		return fmt.Sprintf("Symbol(%d)", uint16(s))
	}
}

var _ fmt.Stringer = Symbol(0)
