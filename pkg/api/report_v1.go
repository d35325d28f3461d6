// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for sequence analysis reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// The alphabet tag selects which optional fields are present.
type ReportV1 struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
	Alphabet    string `json:"alphabet"`
	Length      int    `json:"length"`
	Sequence    string `json:"sequence,omitempty"`

	// Nucleotide variants
	RNA       string   `json:"rna,omitempty"`     // transcript (DNA input)
	DNA       string   `json:"dna,omitempty"`     // back-transcript (RNA input)
	Protein   string   `json:"protein,omitempty"` // translation product
	Stopped   bool     `json:"stopped,omitempty"`
	GCPercent *float64 `json:"gc_percent,omitempty"`
	Weight    float64  `json:"weight,omitempty"` // Daltons

	// Protein variant. PI is absent (not null-valued) when the isoelectric
	// point is not computable; PINote says why.
	PI     *float64 `json:"pi,omitempty"`
	PINote string   `json:"pi_note,omitempty"`

	// Unknown variant
	Error string `json:"error,omitempty"`
}
