// internal/cmpapp/app.go
package cmpapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"genalyze-core/compare"
	"genalyze-core/seq"
	"genalyze/internal/cmpcli"
	"genalyze/internal/output"
	"genalyze/internal/pretty"
	"genalyze/internal/version"
	"genalyze/internal/writers"
)

// RunContext ignores parent: comparison is synchronous and fast, so there is
// no point to interrupt.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cmpcli.NewFlagSet("genalyze-compare")
	fs.SetOutput(io.Discard)

	opts, err := cmpcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genalyze-compare version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	a, b := seq.Normalize(opts.SeqA), seq.Normalize(opts.SeqB)
	if opts.Text != "" {
		runs := compare.ExtractRuns(opts.Text)
		if len(runs) < 2 {
			_, _ = fmt.Fprintln(stderr, compare.ErrInsufficientInput)
			return 1
		}
		a, b = runs[0], runs[1]
	}
	res := compare.Compare(a, b)

	var werr error
	switch opts.Output {
	case "json":
		werr = output.WriteComparisonJSON(outw, a, b, res)
	default:
		if opts.Pretty {
			_, werr = io.WriteString(outw, pretty.RenderComparison(a, b, res))
		}
		if werr == nil {
			werr = output.WriteComparisonText(outw, res)
		}
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
