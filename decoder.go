package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decode walks t one bit at a time, starting from the root, and writes
// every symbol it reaches to w until it reaches PseudoEOF.  It returns the
// number of bytes written.
//
// Running out of bits before PseudoEOF is ErrTruncatedPayload.  When the
// root of t is a leaf, its only valid code is "0", and a 1 bit is
// ErrCorruptPayload.  Bits after the PseudoEOF code are not read.
//
func Decode(r BitSource, t *Tree, w io.ByteWriter) (int64, error) {
	root := t.Root()
	if root == nil {
		return 0, fmt.Errorf("%w: empty tree", ErrCorruptPayload)
	}

	var written int64
	cursor := root
	for {
		bit, err := r.ReadBit()
		if errors.Is(err, io.EOF) {
			return written, fmt.Errorf("%w: bit stream ended after %d bytes without an end-of-stream code", ErrTruncatedPayload, written)
		}
		if err != nil {
			return written, err
		}

		switch node := cursor.(type) {
		case *Internal:
			if bit == 0 {
				cursor = node.Left
			} else {
				cursor = node.Right
			}
		case *Leaf:
			if bit != 0 {
				return written, fmt.Errorf("%w: unexpected 1 bit for single-symbol code", ErrCorruptPayload)
			}
		default:
			assert.Assertf(false, "unexpected node type %T", cursor)
		}

		leaf, ok := cursor.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Symbol == PseudoEOF {
			return written, nil
		}
		if err := w.WriteByte(leaf.Symbol.Byte()); err != nil {
			return written, err
		}
		written++
		cursor = root
	}
}

// DecodeString is like Decode, but reads bits from a string of '0' and '1'
// characters and returns the decoded bytes.
func DecodeString(bits string, t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(&stringBitSource{str: bits}, t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
