// core/compare/compare.go
package compare

// Mutation is a point difference at a 1-based position.
type Mutation struct {
	Position int
	From     byte
	To       byte
}

// Result reports position-wise similarity between two sequences.
// Similarity = 100·(1 − mutations / max(lenA, lenB)).
type Result struct {
	Similarity float64
	Mutations  []Mutation
}

// Identical reports whether no mutations were found.
func (r Result) Identical() bool { return len(r.Mutations) == 0 }

// Compare diffs a against b position by position with no alignment or gap
// insertion. Positions beyond the shorter sequence are not scored as
// mismatches but still count in the similarity denominator, so length
// mismatch lowers similarity.
func Compare(a, b string) Result {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	var muts []Mutation
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			muts = append(muts, Mutation{Position: i + 1, From: a[i], To: b[i]})
		}
	}

	sim := 100.0
	if longest > 0 {
		sim = (1 - float64(len(muts))/float64(longest)) * 100
	}
	return Result{Similarity: sim, Mutations: muts}
}
