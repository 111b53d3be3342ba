package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line options.
type cliFlags struct {
	target      string
	chatSyntax  bool
	smartQuotes bool
	configPath  string
	outPath     string
	htmlPath    string
	workers     int
	verbose     bool
	version     bool
}

const usageText = `Usage: md2post [flags] [input.md ...]

Converts chat-styled markdown for a publishing target. With no inputs,
reads from stdin and writes to stdout. With multiple inputs, output files
are written next to each source.

Flags:
`

// parseFlags parses command-line arguments and returns the flags plus the
// remaining positional input paths.
func parseFlags(args []string) (cliFlags, []string, error) {
	var f cliFlags

	fs := flag.NewFlagSet("md2post", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&f.target, "target", "t", "", "preset target: styled-text, reverse-chat-syntax, or document-wrapper")
	fs.BoolVar(&f.chatSyntax, "chat-syntax", false, "normalize informal chat emphasis before converting")
	fs.BoolVar(&f.smartQuotes, "smart-quotes", false, "typographic quotes in document-wrapper output")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file (flags override config values)")
	fs.StringVarP(&f.outPath, "out", "o", "", "output file for single-input mode (default stdout)")
	fs.StringVar(&f.htmlPath, "html", "", "also write the HTML counterpart to this file (single-input mode)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch mode (0 = auto)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return cliFlags{}, nil, err
	}
	return f, fs.Args(), nil
}
