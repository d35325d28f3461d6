// internal/cmpcli/options.go
package cmpcli

import (
	"errors"
	"flag"
	"fmt"

	"genalyze/internal/cliutil"
	"genalyze/internal/version"
)

// Options holds all CLI flags and arguments for the comparator tool.
type Options struct {
	SeqA string
	SeqB string
	Text string // free text to mine for two sequence runs

	Output string // text | json
	Pretty bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise sequence comparison

License: MIT
Version: %s

Diffs two sequences position by position (no alignment) and reports
similarity and point mutations. Give the sequences as two positional
arguments, or mine them out of free text with --text.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Text, "text", "", "free text containing two sequence runs [*]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII diff block (text) [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress non-essential warnings (shorthand) [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.Text != "" && len(posArgs) > 0:
		return opt, errors.New("--text conflicts with positional sequences")
	case opt.Text == "" && len(posArgs) != 2:
		return opt, errors.New("provide exactly two sequences or --text")
	}
	if len(posArgs) == 2 {
		opt.SeqA, opt.SeqB = posArgs[0], posArgs[1]
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
