// core/query/canned.go
package query

import "strings"

// Canned explanations, checked in order against normalized text. A small
// fixed set keeps common teaching questions off the fallback service.
var canned = []struct {
	keywords []string
	text     string
}{
	{
		[]string{"CRISPR"},
		"CRISPR-Cas9 is a genome-editing system that uses a guide RNA to direct the Cas9 nuclease to a target DNA site.",
	},
	{
		[]string{"MUTATION", "MUTACION"},
		"A genetic mutation is a change in the DNA sequence that can alter the resulting protein.",
	},
	{
		[]string{"RNA", "ARN"},
		"The main RNA classes are mRNA (messenger), tRNA (transfer) and rRNA (ribosomal).",
	},
	{
		[]string{"FASTA", "GENBANK"},
		"FASTA and GenBank files can be analyzed by passing them to the sequence loader.",
	},
}

// Explain returns the canned explanation matching a keyword in the
// normalized text, if any.
func Explain(norm string) (string, bool) {
	for _, c := range canned {
		for _, kw := range c.keywords {
			if strings.Contains(norm, kw) {
				return c.text, true
			}
		}
	}
	return "", false
}
