// internal/output/report.go
package output

import (
	"fmt"
	"io"

	"genalyze-core/analysis"
	"genalyze-core/metrics"
	"genalyze-core/seq"
	"genalyze/internal/jsonutil"
	"genalyze/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r analysis.Report) api.ReportV1 {
	v := api.ReportV1{
		ID:          r.ID,
		Description: r.Description,
		Alphabet:    string(r.Alphabet),
		Length:      r.Length,
		Sequence:    r.Sequence,
		RNA:         r.RNA,
		DNA:         r.DNA,
		Protein:     r.Protein,
		Stopped:     r.Stopped,
		Weight:      r.Weight,
		Error:       r.Error,
	}
	switch r.Alphabet {
	case seq.DNA, seq.RNA:
		gc := r.GCPercent
		v.GCPercent = &gc
	case seq.Protein:
		if r.PIComputable {
			pi := r.PI
			v.PI = &pi
		} else {
			v.PINote = metrics.ErrNotComputable.Error()
		}
	}
	return v
}

func toAPIReports(list []analysis.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteReportsJSON writes a single pretty-indented JSON array of v1 reports.
func WriteReportsJSON(w io.Writer, list []analysis.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

// WriteReportJSONL writes one compact v1 report per line.
func WriteReportJSONL(w io.Writer, r analysis.Report) error {
	return jsonutil.EncodeLine(w, ToAPIReport(r))
}

// TextHeader is the TSV column header for report rows.
const TextHeader = "id\talphabet\tlength\tgc_pct\tweight\tprotein\tstopped\tpi\tnote"

const displayCap = 60

// WriteReportText writes one TSV row. Display strings are capped; the JSON
// formats carry the full values.
func WriteReportText(w io.Writer, r analysis.Report) error {
	gc, weight, protein, stopped, pi := "-", "-", "-", "-", "-"
	note := r.Error

	switch r.Alphabet {
	case seq.DNA, seq.RNA:
		gc = fmt.Sprintf("%.2f", r.GCPercent)
		weight = fmt.Sprintf("%.2f", r.Weight)
		protein = Truncate(r.Protein, displayCap)
		if r.Stopped {
			stopped = "yes"
		} else {
			stopped = "no"
		}
	case seq.Protein:
		weight = fmt.Sprintf("%.2f", r.Weight)
		if r.PIComputable {
			pi = fmt.Sprintf("%.2f", r.PI)
		} else {
			pi = "NC"
		}
	}

	id := r.ID
	if id == "" {
		id = "-"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		id, r.Alphabet, r.Length, gc, weight, protein, stopped, pi, note)
	return err
}

// StreamReportsText consumes reports from in and writes TSV rows, with an
// optional header and an optional per-report pretty block from render.
func StreamReportsText(w io.Writer, in <-chan analysis.Report, header bool, render func(analysis.Report) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				return err
			}
		}
		if err := WriteReportText(w, r); err != nil {
			return err
		}
	}
	return nil
}
