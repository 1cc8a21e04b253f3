package huffman

import "errors"

var (
	// ErrMalformedHeader is returned when an artifact header cannot be
	// parsed, is truncated, or names a symbol outside the alphabet.
	ErrMalformedHeader = errors.New("huffman: malformed header")

	// ErrTruncatedPayload is returned when the bit stream runs out before
	// the PseudoEOF code is reached.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")

	// ErrCorruptPayload is returned when the bit stream contains a bit
	// sequence that does not belong to the code.
	ErrCorruptPayload = errors.New("huffman: corrupt payload")

	// ErrMissingCode is returned when the encoder is asked to encode a
	// symbol that has no code in the CodeTable.
	ErrMissingCode = errors.New("huffman: missing code")
)
