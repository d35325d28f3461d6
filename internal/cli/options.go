// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"genalyze/internal/cliutil"
	"genalyze/internal/version"
)

// Options holds all CLI flags and arguments for the analyzer tool.
type Options struct {
	// Input
	Seqs   []string // inline sequences (repeatable)
	Files  []string // FASTA/GenBank files (repeatable or '-')
	Format string   // file format hint: auto | fasta | genbank

	// Output
	Output string // text | json | jsonl
	Pretty bool
	Header bool // true unless --no-header

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: biological sequence analysis

License: MIT
Version: %s

Classifies DNA/RNA/protein sequences and reports transcription,
translation, GC content, molecular weight, and isoelectric point.
Input is inline (--seq) or FASTA/GenBank files (positional or --input).

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are sequence files (globs expanded).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seqs stringSlice
	fs.Var(&seqs, "seq", "inline sequence to analyze (repeatable) [*]")
	var files stringSlice
	fs.Var(&files, "input", "FASTA/GenBank file (repeatable or '-') [*]")
	fs.StringVar(&opt.Format, "format", "auto", "input file format: auto | fasta | genbank [auto]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII report block (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

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
	opt.Seqs = seqs
	opt.Files = files
	opt.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.Files = append(opt.Files, exp...)
	}

	// Validation
	if len(opt.Seqs) == 0 && len(opt.Files) == 0 {
		return opt, errors.New("provide --seq or at least one sequence file")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch strings.ToLower(opt.Format) {
	case "auto", "", "fasta", "genbank", "gb", "gbk":
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
