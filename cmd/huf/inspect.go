package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	huffman "github.com/chronos-tachyon/hufftree"
)

type inspectEntry struct {
	Symbol int    `json:"symbol"`
	Name   string `json:"name"`
	Count  uint64 `json:"count"`
	Code   string `json:"code"`
}

type inspectReport struct {
	File         string         `json:"file"`
	Entries      []inspectEntry `json:"entries"`
	PayloadBytes int            `json:"payload_bytes"`
}

// runInspect prints the header of each artifact and the code derived from
// it.
func runInspect(w io.Writer, format string, paths []string) error {
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	for _, path := range paths {
		artifact, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		freq, payload, err := huffman.ReadHeader(artifact)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := inspectOne(w, format, path, freq, len(payload)); err != nil {
			return err
		}
	}
	return nil
}

func inspectOne(w io.Writer, format string, path string, freq *huffman.FrequencyTable, payloadBytes int) error {
	tree := huffman.BuildTree(freq)
	defer tree.Release()
	codes := huffman.BuildCodeTable(tree)

	if format == "text" {
		fmt.Fprintf(w, "%s: %d payload bytes\n", path, payloadBytes)
		if _, err := freq.Dump(w); err != nil {
			return err
		}
		_, err := codes.Dump(w)
		return err
	}

	report := inspectReport{File: path, PayloadBytes: payloadBytes}
	for _, symbol := range freq.Keys() {
		hc, _ := codes.Lookup(symbol)
		str, _ := hc.MarshalText()
		report.Entries = append(report.Entries, inspectEntry{
			Symbol: int(symbol),
			Name:   symbol.String(),
			Count:  freq.Get(symbol),
			Code:   string(str),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
