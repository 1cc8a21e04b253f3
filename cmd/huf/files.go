package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/zeebo/blake3"

	huffman "github.com/chronos-tachyon/hufftree"
)

// compressFile compresses path into path+suffix and returns the name
// written.
func compressFile(logger *slog.Logger, cfg Config, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	artifact, bits, err := huffman.Compress(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Verify {
		if err := verifyArtifact(data, artifact); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
	}

	output := compressedName(path, cfg.Suffix)
	if err := os.WriteFile(output, artifact, 0o644); err != nil {
		return "", err
	}

	logger.Info("compressed",
		"input", path,
		"output", output,
		"input_bytes", len(data),
		"output_bytes", len(artifact),
		"payload_bits", bits,
		"verified", cfg.Verify,
	)
	return output, nil
}

// decompressFile decompresses an artifact into its "_unc" name and returns
// the name written.  Nothing is written if the artifact is corrupt.
func decompressFile(logger *slog.Logger, cfg Config, path string) (string, error) {
	output, err := decompressedName(path, cfg.Suffix, cfg.UncSuffix)
	if err != nil {
		return "", err
	}

	artifact, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	data, err := huffman.Decompress(artifact)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return "", err
	}

	logger.Info("decompressed",
		"input", path,
		"output", output,
		"input_bytes", len(artifact),
		"output_bytes", len(data),
	)
	return output, nil
}

// verifyArtifact decompresses artifact and checks that its BLAKE3 digest
// matches the digest of data.
func verifyArtifact(data, artifact []byte) error {
	roundTrip, err := huffman.Decompress(artifact)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	expect := blake3.Sum256(data)
	actual := blake3.Sum256(roundTrip)
	if !bytes.Equal(expect[:], actual[:]) {
		return fmt.Errorf("verification failed: digest %x, expected %x", actual, expect)
	}
	return nil
}
