package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// FrequencyMap is a Symbol → count mapping with a reproducible iteration
// order.  Keys must return the symbols in insertion order.
type FrequencyMap interface {
	Get(symbol Symbol) uint64
	Put(symbol Symbol, count uint64)
	ContainsKey(symbol Symbol) bool
	Keys() []Symbol
}

// FrequencyTable is the standard implementation of FrequencyMap.
//
// The zero value is an empty table, ready to use.
type FrequencyTable struct {
	counts  [NumSymbols]uint64
	present [NumSymbols]bool
	order   []Symbol
}

// NewFrequencyTable returns a new, empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{}
}

// Get returns the count for the given Symbol, or 0 if it is absent.
func (ft *FrequencyTable) Get(symbol Symbol) uint64 {
	if !symbol.Valid() {
		return 0
	}
	return ft.counts[symbol]
}

// Put sets the count for the given Symbol.  A Symbol seen for the first
// time is appended to the iteration order.
func (ft *FrequencyTable) Put(symbol Symbol, count uint64) {
	assert.Assertf(symbol.Valid(), "Symbol %d > MaxSymbol %d", uint16(symbol), uint16(MaxSymbol))
	if !ft.present[symbol] {
		ft.present[symbol] = true
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol] = count
}

// ContainsKey returns true iff the given Symbol has an entry.
func (ft *FrequencyTable) ContainsKey(symbol Symbol) bool {
	return symbol.Valid() && ft.present[symbol]
}

// Keys returns a copy of the symbols in insertion order.
func (ft *FrequencyTable) Keys() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Len returns the number of entries.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Equal returns true iff both tables hold the same set of (Symbol, count)
// entries.  Iteration order is not compared.
func (ft *FrequencyTable) Equal(other FrequencyMap) bool {
	keys := other.Keys()
	if len(keys) != len(ft.order) {
		return false
	}
	for _, symbol := range keys {
		if !ft.ContainsKey(symbol) || ft.Get(symbol) != other.Get(symbol) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer, in iteration order.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(ft.order))
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tGet(%s) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ FrequencyMap = (*FrequencyTable)(nil)

// CountBytes computes the FrequencyTable for an in-memory byte slice.  The
// result holds one entry per distinct byte, in order of first occurrence,
// followed by PseudoEOF with a count of 1.
func CountBytes(data []byte) *FrequencyTable {
	var c byteCounter
	_, _ = c.Write(data)
	return c.table()
}

// FrequencyTableFromString is CountBytes for a string.
func FrequencyTableFromString(s string) *FrequencyTable {
	var c byteCounter
	_, _ = io.WriteString(&c, s)
	return c.table()
}

// CountFrequencies computes the FrequencyTable for everything that can be
// read from r.  Only errors from r itself are reported.
func CountFrequencies(r io.Reader) (*FrequencyTable, error) {
	var c byteCounter
	if _, err := io.Copy(&c, r); err != nil {
		return nil, err
	}
	return c.table(), nil
}

// byteCounter is an io.Writer that tallies the bytes written to it.
type byteCounter struct {
	counts [256]uint64
	order  []byte
}

func (c *byteCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if c.counts[b] == 0 {
			c.order = append(c.order, b)
		}
		c.counts[b]++
	}
	return len(p), nil
}

func (c *byteCounter) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if c.counts[b] == 0 {
			c.order = append(c.order, b)
		}
		c.counts[b]++
	}
	return len(s), nil
}

func (c *byteCounter) table() *FrequencyTable {
	ft := &FrequencyTable{order: make([]Symbol, 0, len(c.order)+1)}
	for _, b := range c.order {
		ft.Put(ByteSymbol(b), c.counts[b])
	}
	ft.Put(PseudoEOF, 1)
	return ft
}

var (
	_ io.Writer       = (*byteCounter)(nil)
	_ io.StringWriter = (*byteCounter)(nil)
)
