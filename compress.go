package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Compress compresses data into a self-contained artifact: the header
// followed by the bit-packed payload.  It also returns the number of
// payload bits written, not counting padding.
//
// Empty input is valid and compresses to a header plus the PseudoEOF code.
//
func Compress(data []byte) ([]byte, int64, error) {
	var buf bytes.Buffer
	n, err := compressTo(&buf, data)
	if err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), n, nil
}

// CompressTo reads all of r, compresses it, and writes the artifact to w.
// It returns the number of payload bits written.
func CompressTo(w io.Writer, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return compressTo(w, data)
}

func compressTo(w io.Writer, data []byte) (int64, error) {
	freq := CountBytes(data)
	tree := BuildTree(freq)
	defer tree.Release()
	codes := BuildCodeTable(tree)

	if _, err := WriteHeader(w, freq); err != nil {
		return 0, err
	}

	bw := NewBitWriter(w)
	n, err := Encode(bw, data, codes)
	if err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to write payload: %w", err)
	}
	return n, nil
}

// Decompress reverses Compress.  A failed call returns no data.
func Decompress(artifact []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := decompressTo(&buf, artifact); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressTo reads an artifact from r and writes the decompressed bytes
// to w.  It returns the number of bytes written.  The output is buffered
// and nothing is written to w unless decoding succeeds.
func DecompressTo(w io.Writer, r io.Reader) (int64, error) {
	artifact, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if _, err := decompressTo(&buf, artifact); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func decompressTo(buf *bytes.Buffer, artifact []byte) (int64, error) {
	freq, payload, err := ReadHeader(artifact)
	if err != nil {
		return 0, err
	}

	tree := BuildTree(freq)
	defer tree.Release()

	return Decode(NewBitReader(bytes.NewReader(payload)), tree, buf)
}
