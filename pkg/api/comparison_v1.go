// pkg/api/comparison_v1.go
package api

// MutationV1 is a single point difference. Position is 1-based.
type MutationV1 struct {
	Position int    `json:"position"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// ComparisonV1 is the stable schema for pairwise comparison results.
type ComparisonV1 struct {
	SeqA       string       `json:"seq_a,omitempty"`
	SeqB       string       `json:"seq_b,omitempty"`
	Similarity float64      `json:"similarity"`
	Identical  bool         `json:"identical"`
	Mutations  []MutationV1 `json:"mutations,omitempty"`
}

// AnswerV1 is the stable envelope for routed query responses. Stage names
// which dispatch rule answered; exactly one payload field is set.
type AnswerV1 struct {
	Stage      string        `json:"stage"`
	Report     *ReportV1     `json:"report,omitempty"`
	Comparison *ComparisonV1 `json:"comparison,omitempty"`
	Text       string        `json:"text,omitempty"`
}
