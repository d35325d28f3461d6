// core/query/router.go
package query

import (
	"context"
	"errors"
	"strings"

	"genalyze-core/analysis"
	"genalyze-core/compare"
	"genalyze-core/seq"
)

// Answerer is the external free-text answering collaborator. The router
// treats it as opaque and synchronous; it is invoked only when no structured
// rule matches. The surrounding service constructs it once and passes it in;
// the router never owns its lifecycle.
type Answerer interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// AnswererFunc adapts a plain function to the Answerer interface.
type AnswererFunc func(ctx context.Context, prompt string) (string, error)

// Answer calls f.
func (f AnswererFunc) Answer(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrNoFallback reports that no structured rule matched and no answering
// collaborator was configured.
var ErrNoFallback = errors.New("query: no answering service configured")

// Stage identifies which dispatch rule produced a response.
type Stage string

const (
	StageComparison  Stage = "comparison"
	StageAnalysis    Stage = "analysis"
	StageExplanation Stage = "explanation"
	StageFallback    Stage = "fallback"
)

// Response carries the payload of whichever stage matched. Exactly one of
// Comparison, Report, or Text is set.
type Response struct {
	Stage      Stage
	Comparison *compare.Result
	Report     *analysis.Report
	Text       string
}

// Router dispatches free-form text to the comparator, the analysis
// pipeline, a canned explanation, or the fallback collaborator, in that
// precedence order, short-circuiting on the first rule that applies.
type Router struct {
	Fallback Answerer
}

// Comparison trigger keywords, matched against the normalized text.
var compareKeywords = []string{"COMPARE", "COMPARA"}

// Route applies the dispatch rules to text.
func (r Router) Route(ctx context.Context, text string) (Response, error) {
	norm := seq.Normalize(text)

	// (a) Comparison keyword: extract two sequences and diff them. The
	// extraction failure (ErrInsufficientInput) is terminal for the query,
	// surfaced to the caller as data rather than falling through.
	if containsAny(norm, compareKeywords) {
		res, err := compare.FromText(text)
		if err != nil {
			return Response{}, err
		}
		return Response{Stage: StageComparison, Comparison: &res}, nil
	}

	// (b) Pure sequence: classify and analyze.
	if norm != "" && isAlphabetic(norm) {
		if rep := analysis.Analyze(norm); rep.Alphabet != seq.Unknown {
			return Response{Stage: StageAnalysis, Report: &rep}, nil
		}
	}

	// (c) Canned keyword explanations.
	if expl, ok := Explain(norm); ok {
		return Response{Stage: StageExplanation, Text: expl}, nil
	}

	// (d) Last resort: the external collaborator.
	if r.Fallback == nil {
		return Response{}, ErrNoFallback
	}
	ans, err := r.Fallback.Answer(ctx, text)
	if err != nil {
		return Response{}, err
	}
	return Response{Stage: StageFallback, Text: ans}, nil
}

func containsAny(s string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
