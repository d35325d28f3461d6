// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"genalyze-core/analysis"
	"genalyze-core/compare"
	"genalyze/pkg/api"
)

func TestToAPIReportDNA(t *testing.T) {
	v := ToAPIReport(analysis.Analyze("ATGTAA"))
	if v.Alphabet != "DNA" {
		t.Fatalf("alphabet = %q", v.Alphabet)
	}
	if v.GCPercent == nil {
		t.Fatalf("gc_percent missing for DNA")
	}
	if v.RNA != "AUGUAA" || v.Protein != "M" || !v.Stopped {
		t.Fatalf("report = %+v", v)
	}
	if v.PI != nil || v.PINote != "" {
		t.Errorf("pI fields must stay empty for nucleotides")
	}
}

func TestToAPIReportProteinNotComputable(t *testing.T) {
	// GSGS: uncharged peptide, and the S keeps it off the DNA branch of the
	// classifier precedence.
	v := ToAPIReport(analysis.Analyze("GSGS"))
	if v.Alphabet != "Protein" {
		t.Fatalf("alphabet = %q", v.Alphabet)
	}
	if v.PI != nil {
		t.Errorf("pI should be absent")
	}
	if v.PINote == "" {
		t.Errorf("pi_note should explain the absence")
	}
	if v.GCPercent != nil {
		t.Errorf("gc_percent must stay empty for protein")
	}
}

func TestWriteReportsJSONShape(t *testing.T) {
	var buf bytes.Buffer
	reps := []analysis.Report{analysis.Analyze("ATGTAA"), analysis.Analyze("MKDE")}
	if err := WriteReportsJSON(&buf, reps); err != nil {
		t.Fatalf("WriteReportsJSON: %v", err)
	}
	var got []api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[1].Alphabet != "Protein" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestWriteReportJSONLOneLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportJSONL(&buf, analysis.Analyze("ATGTAA")); err != nil {
		t.Fatalf("WriteReportJSONL: %v", err)
	}
	s := buf.String()
	if strings.Count(s, "\n") != 1 || !strings.HasSuffix(s, "\n") {
		t.Fatalf("not one line: %q", s)
	}
}

func TestWriteReportTextColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportText(&buf, analysis.AnalyzeRecord("s1", "", "ATGTAA")); err != nil {
		t.Fatalf("WriteReportText: %v", err)
	}
	cols := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	want := strings.Split(TextHeader, "\t")
	if len(cols) != len(want) {
		t.Fatalf("columns = %d, want %d: %q", len(cols), len(want), buf.String())
	}
	if cols[0] != "s1" || cols[1] != "DNA" || cols[2] != "6" {
		t.Fatalf("row = %v", cols)
	}
}

func TestWriteReportTextUnknown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportText(&buf, analysis.Analyze("BZJX")); err != nil {
		t.Fatalf("WriteReportText: %v", err)
	}
	if !strings.Contains(buf.String(), "Unknown") {
		t.Fatalf("row = %q", buf.String())
	}
}

func TestToAPIComparison(t *testing.T) {
	res := compare.Compare("ATCGATCG", "ATCGATGG")
	v := ToAPIComparison("ATCGATCG", "ATCGATGG", res)
	if v.Identical || len(v.Mutations) != 1 {
		t.Fatalf("comparison = %+v", v)
	}
	m := v.Mutations[0]
	if m.Position != 7 || m.From != "C" || m.To != "G" {
		t.Fatalf("mutation = %+v", m)
	}
}

func TestWriteComparisonText(t *testing.T) {
	var buf bytes.Buffer
	res := compare.Compare("ATCGATCG", "ATCGATGG")
	if err := WriteComparisonText(&buf, res); err != nil {
		t.Fatalf("WriteComparisonText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "similarity\t87.50") || !strings.Contains(out, "mutation\t7\tC>G") {
		t.Fatalf("out = %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("MKTAYIAKQR", 8); got != "MKTAY..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("MK", 8); got != "MK" {
		t.Errorf("short string changed: %q", got)
	}
}
