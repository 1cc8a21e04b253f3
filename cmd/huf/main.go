// huf compresses and decompresses files with static Huffman coding.
//
//	huf compress notes.txt          → notes.txt.huf
//	huf decompress notes.txt.huf    → notes_unc.txt
//	huf stat notes.txt              → size comparison with zstd and lz4
//	huf inspect notes.txt.huf       → header and code table
//
// Settings come from an optional YAML file (--config or $HUF_CONFIG),
// overridden by flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath string
	var format string
	flagCfg := DefaultConfig()

	flagSet := pflag.NewFlagSet("huf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+configEnvVar+")")
	flagSet.StringVar(&flagCfg.Suffix, "suffix", flagCfg.Suffix, "suffix for compressed files")
	flagSet.StringVar(&flagCfg.UncSuffix, "unc-suffix", flagCfg.UncSuffix, "marker inserted into decompressed file names")
	flagSet.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level (debug, info, warn, error)")
	flagSet.BoolVar(&flagCfg.Verify, "verify", flagCfg.Verify, "check each artifact by decompressing it before writing")
	flagSet.StringVar(&format, "format", "text", "inspect output format (text, json)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(&cfg, flagCfg, flagSet)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	positional := flagSet.Args()
	if len(positional) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("missing command")
	}
	command, paths := positional[0], positional[1:]
	if len(paths) == 0 {
		return fmt.Errorf("%s: no files given", command)
	}

	switch command {
	case "compress":
		for _, path := range paths {
			if _, err := compressFile(logger, cfg, path); err != nil {
				return err
			}
		}
		return nil
	case "decompress":
		for _, path := range paths {
			if _, err := decompressFile(logger, cfg, path); err != nil {
				return err
			}
		}
		return nil
	case "stat":
		return runStat(stdout, paths)
	case "inspect":
		return runInspect(stdout, format, paths)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// applyFlags copies every flag the user set explicitly into cfg.
func applyFlags(cfg *Config, flagCfg Config, flagSet *pflag.FlagSet) {
	if flagSet.Changed("suffix") {
		cfg.Suffix = flagCfg.Suffix
	}
	if flagSet.Changed("unc-suffix") {
		cfg.UncSuffix = flagCfg.UncSuffix
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
	if flagSet.Changed("verify") {
		cfg.Verify = flagCfg.Verify
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `huf: static Huffman file compression.

Usage:
  huf [flags] compress FILE...
  huf [flags] decompress FILE%[1]s...
  huf [flags] stat FILE...
  huf [flags] inspect FILE%[1]s...

Flags:
`, DefaultConfig().Suffix)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
