// internal/askapp/app.go
package askapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"genalyze-core/query"
	"genalyze/internal/askcli"
	"genalyze/internal/jsonutil"
	"genalyze/internal/output"
	"genalyze/internal/pretty"
	"genalyze/internal/version"
	"genalyze/internal/writers"
	"genalyze/pkg/api"
)

// RunContext routes the question with no answering service configured;
// free-text questions that reach the fallback stage fail with exit 1.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunContextWith(parent, argv, stdout, stderr, nil)
}

// RunContextWith injects the external answering collaborator used for the
// fallback stage. nil means none is configured.
func RunContextWith(parent context.Context, argv []string, stdout, stderr io.Writer, fallback query.Answerer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := askcli.NewFlagSet("genalyze-ask")
	fs.SetOutput(io.Discard)

	opts, err := askcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "genalyze-ask version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	router := query.Router{Fallback: fallback}
	resp, err := router.Route(parent, opts.Question)
	if err != nil {
		// ErrInsufficientInput and ErrNoFallback are expected terminal
		// outcomes, reported the same way as collaborator failures.
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	var werr error
	switch opts.Output {
	case "json":
		werr = jsonutil.EncodePretty(outw, toAPIAnswer(resp))
	default:
		werr = writeText(outw, resp, opts.Pretty)
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

func toAPIAnswer(resp query.Response) api.AnswerV1 {
	v := api.AnswerV1{Stage: string(resp.Stage), Text: resp.Text}
	if resp.Report != nil {
		r := output.ToAPIReport(*resp.Report)
		v.Report = &r
	}
	if resp.Comparison != nil {
		c := output.ToAPIComparison("", "", *resp.Comparison)
		v.Comparison = &c
	}
	return v
}

func writeText(w io.Writer, resp query.Response, prettyMode bool) error {
	switch {
	case resp.Report != nil:
		if prettyMode {
			if _, err := io.WriteString(w, pretty.RenderReport(*resp.Report)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, output.TextHeader); err != nil {
			return err
		}
		return output.WriteReportText(w, *resp.Report)
	case resp.Comparison != nil:
		return output.WriteComparisonText(w, *resp.Comparison)
	default:
		_, err := fmt.Fprintln(w, resp.Text)
		return err
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
