// core/compare/extract.go
package compare

import (
	"errors"

	"genalyze-core/seq"
)

// minRunLen is the noise threshold for pulling sequences out of free text:
// only runs of unmodified DNA letters longer than 5 characters qualify.
// RNA and protein runs are deliberately not recognized.
const minRunLen = 6

// ErrInsufficientInput reports that free text held fewer than two
// qualifying sequence runs.
var ErrInsufficientInput = errors.New("compare: fewer than two sequences of length > 5 found in text")

// ExtractRuns returns the maximal runs of {A,T,C,G} of length ≥ 6 in
// normalized free text, in order of appearance.
func ExtractRuns(text string) []string {
	s := seq.Normalize(text)
	var runs []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= minRunLen {
			runs = append(runs, s[start:end])
		}
		start = -1
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'T', 'C', 'G':
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}
	}
	flush(len(s))
	return runs
}

// FromText extracts the first two qualifying runs from free text and
// compares them. Fewer than two runs yields ErrInsufficientInput.
func FromText(text string) (Result, error) {
	runs := ExtractRuns(text)
	if len(runs) < 2 {
		return Result{}, ErrInsufficientInput
	}
	return Compare(runs[0], runs[1]), nil
}
