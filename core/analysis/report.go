// core/analysis/report.go
package analysis

import (
	"genalyze-core/codon"
	"genalyze-core/metrics"
	"genalyze-core/seq"
)

// Report is the structured result of one sequence analysis. The Alphabet tag
// selects which fields are meaningful; only that variant's fields are
// populated. Unknown carries only Error.
type Report struct {
	ID          string
	Description string
	Alphabet    seq.Alphabet
	Length      int
	Sequence    string // normalized input

	// Nucleotide variants
	RNA       string // transcript (DNA input)
	DNA       string // back-transcript (RNA input)
	Protein   string // translation product
	Stopped   bool   // translation hit an in-frame stop codon
	GCPercent float64
	Weight    float64 // Daltons

	// Protein variant
	PI           float64
	PIComputable bool

	// Unknown variant
	Error string
}

// Analyze classifies caller-supplied text and derives the alphabet's
// products and metrics. It never fails: an unclassifiable input produces an
// Unknown report carrying an error descriptor as data.
func Analyze(text string) Report {
	return analyze(seq.New(text))
}

// AnalyzeRecord analyzes an already-extracted (identifier, description,
// raw sequence) triple from a sequence-file reader.
func AnalyzeRecord(id, description, raw string) Report {
	return analyze(seq.NewRecord(id, description, raw))
}

func analyze(s seq.Sequence) Report {
	r := Report{
		ID:          s.ID,
		Description: s.Description,
		Alphabet:    s.Alphabet,
		Length:      s.Len(),
		Sequence:    s.Norm,
	}
	switch s.Alphabet {
	case seq.DNA:
		r.RNA = codon.Transcribe(s.Norm)
		r.Protein, r.Stopped = codon.Translate(r.RNA)
		r.GCPercent = metrics.GCFraction(s.Norm) * 100
		r.Weight = metrics.MolecularWeight(s.Norm, seq.DNA)
	case seq.RNA:
		r.DNA = codon.BackTranscribe(s.Norm)
		r.Protein, r.Stopped = codon.Translate(s.Norm)
		// GC is reported for the back-transcript, matching the upstream
		// convention of quoting DNA-frame GC for RNA input.
		r.GCPercent = metrics.GCFraction(r.DNA) * 100
		r.Weight = metrics.MolecularWeight(s.Norm, seq.RNA)
	case seq.Protein:
		r.Weight = metrics.MolecularWeight(s.Norm, seq.Protein)
		if pi, err := metrics.Isoelectric(s.Norm); err == nil {
			r.PI = pi
			r.PIComputable = true
		}
	default:
		r.Error = "unable to identify the sequence alphabet"
	}
	return r
}
