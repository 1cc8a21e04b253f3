package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// compressedName returns the artifact name for a file.
func compressedName(name, suffix string) string {
	return name + suffix
}

// decompressedName returns the output name for an artifact: the suffix is
// removed and uncSuffix is inserted before the remaining extension.
//
//	notes.txt.huf → notes_unc.txt
//	dir/archive.huf → dir/archive_unc
func decompressedName(name, suffix, uncSuffix string) (string, error) {
	if !strings.HasSuffix(name, suffix) || len(name) == len(suffix) {
		return "", fmt.Errorf("%s: name does not end in %q", name, suffix)
	}
	trimmed := strings.TrimSuffix(name, suffix)
	dir, base := filepath.Split(trimmed)
	if base == "" {
		return "", fmt.Errorf("%s: no file name before %q", name, suffix)
	}
	ext := filepath.Ext(base)
	if ext == base {
		// Dot files such as ".profile" have no extension.
		ext = ""
	}
	return dir + strings.TrimSuffix(base, ext) + uncSuffix + ext, nil
}
