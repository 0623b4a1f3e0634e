package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	config  string
	verbose bool
}

// usageText describes the command. The target list and output layout
// come from the built-in defaults or the optional config file; there
// are deliberately no per-feature flags.
const usageText = `web2pdf - render a list of web pages to PDF and merge them

Usage:
  web2pdf [flags]

Flags:
`

// parseFlags parses command-line arguments.
// Returns the parsed flags, whether help was printed, and any parse error.
func parseFlags(args []string) (*cliFlags, bool, error) {
	fs := flag.NewFlagSet("web2pdf", flag.ContinueOnError)
	fs.SortFlags = false

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file (path or name)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output on stderr")
	help := fs.BoolP("help", "h", false, "show this help")
	version := fs.Bool("version", false, "print version")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprintln(os.Stderr, fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, false, err
	}

	if *help {
		fs.Usage()
		return f, true, nil
	}
	if *version {
		fmt.Println("web2pdf " + Version)
		return f, true, nil
	}

	return f, false, nil
}
