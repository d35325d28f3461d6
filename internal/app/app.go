// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"genalyze-core/analysis"
	"genalyze-core/fasta"
	"genalyze-core/seq"
	"genalyze/internal/cli"
	"genalyze/internal/cmdutil"
	"genalyze/internal/version"
	"genalyze/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("genalyze")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "genalyze version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	in, errCh := writers.StartReportWriter(outw, opts.Output, opts.Header, opts.Pretty, 64)

	send := func(r analysis.Report) bool {
		select {
		case in <- r:
			return true
		case <-parent.Done():
			return false
		}
	}

	runErr := func() error {
		for _, s := range opts.Seqs {
			rep := analysis.Analyze(s)
			if rep.Alphabet == seq.Unknown {
				cmdutil.Warnf(stderr, opts.Quiet, "unclassifiable sequence %q", truncArg(s))
			}
			if !send(rep) {
				return parent.Err()
			}
		}
		for _, path := range opts.Files {
			rc, err := fasta.Open(path)
			if err != nil {
				return err
			}
			// "auto" means: take the format from the filename, or sniff stdin.
			hint := opts.Format
			if hint == "auto" || hint == "" {
				if path == "-" {
					hint = ""
				} else {
					hint = path
				}
			}
			recs, err := fasta.ParseFile(rc, hint)
			_ = rc.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, rec := range recs {
				rep := analysis.AnalyzeRecord(rec.ID, rec.Description, rec.Seq)
				if rep.Alphabet == seq.Unknown {
					cmdutil.Warnf(stderr, opts.Quiet, "unclassifiable record %q in %s", rec.ID, path)
				}
				if !send(rep) {
					return parent.Err()
				}
			}
		}
		return nil
	}()

	close(in)
	werr := <-errCh

	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 1
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

func truncArg(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
