// core/query/router_test.go
package query

import (
	"context"
	"errors"
	"testing"

	"genalyze-core/compare"
	"genalyze-core/seq"
)

// recordingAnswerer counts calls so tests can assert short-circuiting.
type recordingAnswerer struct {
	calls  int
	answer string
	err    error
}

func (a *recordingAnswerer) Answer(_ context.Context, _ string) (string, error) {
	a.calls++
	return a.answer, a.err
}

func TestRouteComparison(t *testing.T) {
	fb := &recordingAnswerer{answer: "never"}
	r := Router{Fallback: fb}

	resp, err := r.Route(context.Background(), "compare: ATCGATCG vs ATCGATGG")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if resp.Stage != StageComparison || resp.Comparison == nil {
		t.Fatalf("stage = %s, want comparison: %+v", resp.Stage, resp)
	}
	if len(resp.Comparison.Mutations) != 1 {
		t.Fatalf("mutations = %d, want 1", len(resp.Comparison.Mutations))
	}
	if fb.calls != 0 {
		t.Fatalf("fallback called %d times, want 0", fb.calls)
	}
}

func TestRouteComparisonInsufficient(t *testing.T) {
	r := Router{Fallback: &recordingAnswerer{}}
	_, err := r.Route(context.Background(), "compare these two things")
	if !errors.Is(err, compare.ErrInsufficientInput) {
		t.Fatalf("err = %v, want ErrInsufficientInput", err)
	}
}

func TestRouteAnalysis(t *testing.T) {
	fb := &recordingAnswerer{}
	r := Router{Fallback: fb}

	resp, err := r.Route(context.Background(), "ATG TAA")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if resp.Stage != StageAnalysis || resp.Report == nil {
		t.Fatalf("stage = %s, want analysis: %+v", resp.Stage, resp)
	}
	if resp.Report.Alphabet != seq.DNA {
		t.Fatalf("alphabet = %s, want DNA", resp.Report.Alphabet)
	}
	if fb.calls != 0 {
		t.Fatalf("fallback called %d times, want 0", fb.calls)
	}
}

func TestRouteExplanation(t *testing.T) {
	fb := &recordingAnswerer{}
	r := Router{Fallback: fb}

	resp, err := r.Route(context.Background(), "what is CRISPR?")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if resp.Stage != StageExplanation || resp.Text == "" {
		t.Fatalf("stage = %s, want explanation with text", resp.Stage)
	}
	if fb.calls != 0 {
		t.Fatalf("fallback called %d times, want 0", fb.calls)
	}
}

func TestRouteFallback(t *testing.T) {
	fb := &recordingAnswerer{answer: "generated text"}
	r := Router{Fallback: fb}

	resp, err := r.Route(context.Background(), "how do ribosomes assemble?")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if resp.Stage != StageFallback || resp.Text != "generated text" {
		t.Fatalf("response = %+v, want fallback text", resp)
	}
	if fb.calls != 1 {
		t.Fatalf("fallback called %d times, want 1", fb.calls)
	}
}

func TestRouteFallbackError(t *testing.T) {
	fb := &recordingAnswerer{err: errors.New("service down")}
	r := Router{Fallback: fb}
	if _, err := r.Route(context.Background(), "how do ribosomes assemble?"); err == nil {
		t.Fatalf("expected collaborator error to propagate")
	}
}

func TestRouteNoFallbackConfigured(t *testing.T) {
	r := Router{}
	_, err := r.Route(context.Background(), "how do ribosomes assemble?")
	if !errors.Is(err, ErrNoFallback) {
		t.Fatalf("err = %v, want ErrNoFallback", err)
	}
}

func TestRouteUnknownSequenceFallsThrough(t *testing.T) {
	// Alphabetic but unclassifiable letters must not stop at the analysis
	// stage.
	fb := &recordingAnswerer{answer: "fallback"}
	r := Router{Fallback: fb}

	resp, err := r.Route(context.Background(), "BZJXBZJX")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if resp.Stage != StageFallback {
		t.Fatalf("stage = %s, want fallback", resp.Stage)
	}
}

func TestAnswererFunc(t *testing.T) {
	fn := AnswererFunc(func(_ context.Context, p string) (string, error) {
		return "echo: " + p, nil
	})
	got, err := fn.Answer(context.Background(), "hi")
	if err != nil || got != "echo: hi" {
		t.Fatalf("AnswererFunc = (%q, %v)", got, err)
	}
}

func TestExplain(t *testing.T) {
	if _, ok := Explain("TELL ME ABOUT GENBANK FILES"); !ok {
		t.Errorf("GENBANK keyword not recognized")
	}
	if _, ok := Explain("NOTHING RELEVANT HERE"); ok {
		t.Errorf("unexpected canned match")
	}
}
