// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"genalyze/internal/app"
	"genalyze/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fn)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return path
}

func TestEndToEndInline(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--seq", "ATG TAA"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "DNA") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestEndToEndFastaJSON(t *testing.T) {
	fa := write(t, "itest.fa", ">s1 first\nATGTAA\n>s2\nMKDE\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "json", fa}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	var reps []api.ReportV1
	if err := json.Unmarshal(out.Bytes(), &reps); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(reps) != 2 || reps[0].ID != "s1" || reps[0].Alphabet != "DNA" {
		t.Fatalf("reports = %+v", reps)
	}
	if reps[1].Alphabet != "Protein" {
		t.Fatalf("reports = %+v", reps)
	}
}

func TestEndToEndGenBank(t *testing.T) {
	gb := write(t, "itest.gb", `LOCUS       CONSTRUCT            6 bp    DNA     linear   SYN 01-JAN-2024
DEFINITION  Test construct.
ORIGIN
        1 atgtaa
//
`)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "jsonl", gb}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errBuf.String())
	}
	var rep api.ReportV1
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("invalid JSONL: %v\n%s", err, out.String())
	}
	if rep.ID != "CONSTRUCT" || rep.Alphabet != "DNA" || rep.Length != 6 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestEndToEndUnknownWarnsButSucceeds(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--seq", "BZJX"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "Unknown") {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "WARN") {
		t.Fatalf("expected warning, got %q", errBuf.String())
	}
}

func TestEndToEndQuietSuppressesWarnings(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", "--seq", "BZJX"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if errBuf.Len() != 0 {
		t.Fatalf("stderr = %q", errBuf.String())
	}
}

func TestEndToEndMissingFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"no-such-file.fasta"}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestEndToEndUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "xml", "--seq", "ATCG"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestEndToEndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--version"}, &out, &errBuf)
	if code != 0 || !strings.Contains(out.String(), "genalyze version") {
		t.Fatalf("exit %d out=%q", code, out.String())
	}
}
