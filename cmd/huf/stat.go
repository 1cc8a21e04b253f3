package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	huffman "github.com/chronos-tachyon/hufftree"
)

// fileStats compares the Huffman artifact for one file against general
// purpose compressors.
type fileStats struct {
	Name        string
	Size        int
	HeaderBytes int
	PayloadBits int64
	Huffman     int
	Zstd        int
	LZ4         int
	Digest      string
	RoundTrip   bool
}

func computeStats(name string, data []byte) (fileStats, error) {
	stats := fileStats{Name: name, Size: len(data)}

	artifact, bits, err := huffman.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", name, err)
	}
	_, payload, err := huffman.ReadHeader(artifact)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", name, err)
	}
	headerBytes := len(artifact) - len(payload)
	stats.Huffman = len(artifact)
	stats.HeaderBytes = headerBytes
	stats.PayloadBits = bits
	stats.RoundTrip = verifyArtifact(data, artifact) == nil

	digest := blake3.Sum256(data)
	stats.Digest = hex.EncodeToString(digest[:])

	if stats.Zstd, err = zstdSize(data); err != nil {
		return stats, fmt.Errorf("%s: %w", name, err)
	}
	if stats.LZ4, err = lz4Size(data); err != nil {
		return stats, fmt.Errorf("%s: %w", name, err)
	}
	return stats, nil
}

func zstdSize(data []byte) (int, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("zstd encoder: %w", err)
	}
	defer encoder.Close()
	return len(encoder.EncodeAll(data, nil)), nil
}

// lz4Size returns the LZ4 block size of data, or len(data) when LZ4 finds
// it incompressible.
func lz4Size(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}
	if written == 0 {
		return len(data), nil
	}
	return written, nil
}

func runStat(w io.Writer, paths []string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSIZE\tHUFFMAN\tHEADER\tBITS\tZSTD\tLZ4\tROUNDTRIP\tBLAKE3")
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		stats, err := computeStats(path, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%v\t%s\n",
			stats.Name, stats.Size, stats.Huffman, stats.HeaderBytes, stats.PayloadBits,
			stats.Zstd, stats.LZ4, stats.RoundTrip, stats.Digest[:16])
	}
	return tw.Flush()
}
