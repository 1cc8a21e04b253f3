package huffman

import (
	"fmt"
)

// Encode writes the code of every byte in data to w, followed by the code
// for PseudoEOF, and returns the number of bits written.
//
// Every byte of data must have a code in ct; a byte without one is
// ErrMissingCode.  The output is a pure function of data and ct.
//
func Encode(w BitSink, data []byte, ct *CodeTable) (int64, error) {
	var total int64
	for _, b := range data {
		hc, found := ct.Lookup(ByteSymbol(b))
		if !found {
			return total, fmt.Errorf("%w: no code for byte %s", ErrMissingCode, ByteSymbol(b))
		}
		if err := writeCode(w, hc); err != nil {
			return total, err
		}
		total += int64(hc.Size)
	}

	hc, found := ct.Lookup(PseudoEOF)
	if !found {
		return total, fmt.Errorf("%w: no code for %s", ErrMissingCode, PseudoEOF)
	}
	if err := writeCode(w, hc); err != nil {
		return total, err
	}
	total += int64(hc.Size)
	return total, nil
}

// EncodeString is like Encode, but returns the bits as a string of '0' and
// '1' characters instead of packing them.
func EncodeString(data []byte, ct *CodeTable) (string, error) {
	var sink stringBitSink
	if _, err := Encode(&sink, data, ct); err != nil {
		return "", err
	}
	return sink.sb.String(), nil
}

func writeCode(w BitSink, hc Code) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := w.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}
