// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"genalyze-core/analysis"
	"genalyze/internal/output"
	"genalyze/internal/pretty"
)

// StartReportWriter spins up a writer goroutine for analysis.Report items.
// (Backward-compatible wrapper using pretty.DefaultOptions)
func StartReportWriter(out io.Writer, format string, header bool, prettyMode bool, bufSize int) (chan<- analysis.Report, <-chan error) {
	return StartReportWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartReportWriterWithPrettyOptions allows customizing the pretty renderer.
// Close the returned channel to finish; the error channel yields the first
// write error (nil on success).
func StartReportWriterWithPrettyOptions(out io.Writer, format string, header bool, prettyMode bool, popt pretty.Options, bufSize int) (chan<- analysis.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan analysis.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []analysis.Report
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteReportsJSON(out, buf)

		case "jsonl":
			for r := range in {
				if err = output.WriteReportJSONL(out, r); err != nil {
					break
				}
			}
			// drain so senders never block after a write error
			for range in {
			}

		case "text":
			var render func(analysis.Report) string
			if prettyMode {
				render = func(r analysis.Report) string { return pretty.RenderReportWithOptions(r, popt) }
			}
			err = output.StreamReportsText(out, in, header, render)
			for range in {
			}

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
