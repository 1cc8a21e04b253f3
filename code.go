package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a tree over NumSymbols leaves can
// produce: a completely skewed tree has depth NumSymbols-1.
const maxBitsPerCode = NumSymbols - 1

const codeWords = (maxBitsPerCode + 63) / 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit, the least significant bit of Bits[1] is
	// the 65th bit, and so on.
	Bits [codeWords]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters,
// first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code too long: got %d bits, max %d", len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc.push(0)
		case '1':
			hc.push(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from 0.  Bits at or past
// Size are always 0.
func (hc Code) Bit(i int) uint8 {
	return uint8(hc.Bits[i>>6]>>(uint(i)&63)) & 1
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	n := int(prefix.Size)
	full := n >> 6
	for i := 0; i < full; i++ {
		if hc.Bits[i] != prefix.Bits[i] {
			return false
		}
	}
	if rem := uint(n) & 63; rem != 0 {
		mask := (uint64(1) << rem) - 1
		if hc.Bits[full]&mask != prefix.Bits[full]&mask {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

// MarshalText renders this Code as '0' and '1' characters.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.bitString()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (hc *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

func (hc Code) bitString() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return sb.String()
}

// push appends one bit to the end of this Code.
func (hc *Code) push(bit uint8) {
	assert.Assertf(int(hc.Size) < maxBitsPerCode, "code overflow: %d bits", hc.Size)
	i := uint(hc.Size)
	word := &hc.Bits[i>>6]
	mask := uint64(1) << (i & 63)
	if bit != 0 {
		*word |= mask
	} else {
		*word &^= mask
	}
	hc.Size++
}

// pop removes the last bit from this Code.
func (hc *Code) pop() {
	assert.Assertf(hc.Size != 0, "pop from empty code")
	hc.Size--
	i := uint(hc.Size)
	hc.Bits[i>>6] &^= uint64(1) << (i & 63)
}

var (
	_ fmt.Stringer             = Code{}
	_ encoding.TextMarshaler   = Code{}
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// CodeTable maps each Symbol of a Tree to its Code.  The codes are
// prefix-free because they are the root-to-leaf paths of a single tree.
type CodeTable struct {
	codes   [NumSymbols]Code
	symbols []Symbol
	minSize uint16
	maxSize uint16
}

// BuildCodeTable walks the tree depth-first and assigns each leaf the path
// used to reach it, with 0 for a left edge and 1 for a right edge.  A tree
// whose root is a leaf gets the single code "0".
func BuildCodeTable(t *Tree) *CodeTable {
	ct := &CodeTable{symbols: make([]Symbol, 0, t.Leaves())}
	t.walk(func(leaf *Leaf, path *Code) {
		size := path.Size
		ct.codes[leaf.Symbol] = *path
		if len(ct.symbols) == 0 {
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
		ct.symbols = append(ct.symbols, leaf.Symbol)
	})
	return ct
}

// Lookup returns the Code for the given Symbol.  The second result is false
// if the Symbol has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.Valid() {
		return Code{}, false
	}
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.symbols)
}

// Symbols returns the symbols with a code, in tree order (left to right).
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.symbols))
	copy(out, ct.symbols)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() uint16 {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() uint16 {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.  Symbols are listed in ascending
// order.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc := ct.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
