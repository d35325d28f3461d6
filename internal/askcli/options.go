// internal/askcli/options.go
package askcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"genalyze/internal/cliutil"
	"genalyze/internal/version"
)

// Options holds all CLI flags and arguments for the query tool.
type Options struct {
	Question string

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
			`%s: route a free-form question

License: MIT
Version: %s

Dispatches the question to the comparator (COMPARE/COMPARA keyword), the
sequence analyzer (pure sequence input), a canned explanation, or a
configured answering service, in that order.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are joined into the question.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII block for structured answers (text) [false]")

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

	opt.Question = strings.TrimSpace(strings.Join(posArgs, " "))
	if opt.Question == "" {
		return opt, errors.New("provide a question as positional arguments")
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
