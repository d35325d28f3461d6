// internal/output/compare.go
package output

import (
	"fmt"
	"io"

	"genalyze-core/compare"
	"genalyze/internal/jsonutil"
	"genalyze/pkg/api"
)

// ToAPIComparison converts a comparison to the stable wire schema (v1).
// The compared sequences are attached so consumers can re-render the diff.
func ToAPIComparison(a, b string, res compare.Result) api.ComparisonV1 {
	v := api.ComparisonV1{
		SeqA:       a,
		SeqB:       b,
		Similarity: res.Similarity,
		Identical:  res.Identical(),
	}
	for _, m := range res.Mutations {
		v.Mutations = append(v.Mutations, api.MutationV1{
			Position: m.Position,
			From:     string(m.From),
			To:       string(m.To),
		})
	}
	return v
}

// WriteComparisonJSON writes a pretty-indented v1 comparison.
func WriteComparisonJSON(w io.Writer, a, b string, res compare.Result) error {
	return jsonutil.EncodePretty(w, ToAPIComparison(a, b, res))
}

// WriteComparisonText writes the similarity summary and one row per mutation.
func WriteComparisonText(w io.Writer, res compare.Result) error {
	if _, err := fmt.Fprintf(w, "similarity\t%.2f\nmutations\t%d\n", res.Similarity, len(res.Mutations)); err != nil {
		return err
	}
	for _, m := range res.Mutations {
		if _, err := fmt.Fprintf(w, "mutation\t%d\t%c>%c\n", m.Position, m.From, m.To); err != nil {
			return err
		}
	}
	return nil
}
