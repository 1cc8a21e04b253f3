package huffman

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// The header is a single CBOR array.  Its length is the entry count, and
// each element is a two-element array [symbol, count].  Entries are
// written in ascending symbol order using Core Deterministic Encoding, so
// equal tables always produce identical headers.

// headerEntry is one (symbol, count) pair on the wire.
type headerEntry struct {
	_      struct{} `cbor:",toarray"`
	Symbol uint64
	Count  uint64
}

var (
	headerEncMode cbor.EncMode
	headerDecMode cbor.DecMode
)

func init() {
	var err error

	headerEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("huffman: CBOR encoder initialization failed: " + err.Error())
	}

	headerDecMode, err = cbor.DecOptions{
		// At most one entry per symbol.
		MaxArrayElements: NumSymbols,
		MaxNestedLevels:  4,
	}.DecMode()
	if err != nil {
		panic("huffman: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalHeader serializes freq as an artifact header.
func MarshalHeader(freq FrequencyMap) ([]byte, error) {
	keys := bySymbol(freq.Keys())
	keys.Sort()

	entries := make([]headerEntry, len(keys))
	for index, symbol := range keys {
		entries[index] = headerEntry{Symbol: uint64(symbol), Count: freq.Get(symbol)}
	}

	raw, err := headerEncMode.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	return raw, nil
}

// WriteHeader writes the header for freq to w and returns the number of
// bytes written.
func WriteHeader(w io.Writer, freq FrequencyMap) (int, error) {
	raw, err := MarshalHeader(freq)
	if err != nil {
		return 0, err
	}
	return w.Write(raw)
}

// ReadHeader parses the header at the start of data.  It returns the
// reconstructed FrequencyTable, in wire order, and the bytes that follow
// the header.
//
// A header that is truncated, is not a list of (symbol, count) pairs,
// names a symbol above MaxSymbol, names a symbol twice, or lacks a
// PseudoEOF entry with a count of at least 1 is ErrMalformedHeader.
//
func ReadHeader(data []byte) (*FrequencyTable, []byte, error) {
	var entries []headerEntry
	rest, err := headerDecMode.UnmarshalFirst(data, &entries)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	ft := NewFrequencyTable()
	for index, entry := range entries {
		if entry.Symbol > uint64(MaxSymbol) {
			return nil, nil, fmt.Errorf("%w: entry %d: symbol %d > MaxSymbol %d", ErrMalformedHeader, index, entry.Symbol, uint16(MaxSymbol))
		}
		symbol := Symbol(entry.Symbol)
		if ft.ContainsKey(symbol) {
			return nil, nil, fmt.Errorf("%w: entry %d: duplicate symbol %s", ErrMalformedHeader, index, symbol)
		}
		ft.Put(symbol, entry.Count)
	}
	if !ft.ContainsKey(PseudoEOF) {
		return nil, nil, fmt.Errorf("%w: no entry for %s", ErrMalformedHeader, PseudoEOF)
	}
	if ft.Get(PseudoEOF) == 0 {
		return nil, nil, fmt.Errorf("%w: zero count for %s", ErrMalformedHeader, PseudoEOF)
	}
	return ft, rest, nil
}

// HeaderSize returns the encoded size of the header for freq, in bytes.
func HeaderSize(freq FrequencyMap) (int, error) {
	raw, err := MarshalHeader(freq)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}
