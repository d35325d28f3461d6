// core/seq/alphabet.go
package seq

// Alphabet tags a sequence as DNA, RNA, protein, or unknown.
type Alphabet string

const (
	DNA     Alphabet = "DNA"
	RNA     Alphabet = "RNA"
	Protein Alphabet = "Protein"
	Unknown Alphabet = "Unknown"
)

// Fixed membership sets, one table per alphabet.
var (
	dnaSet     [256]bool
	rnaSet     [256]bool
	proteinSet [256]bool
)

func init() {
	for _, b := range []byte("ATCGN") {
		dnaSet[b] = true
	}
	for _, b := range []byte("AUCGN") {
		rnaSet[b] = true
	}
	// The 20 standard amino-acid letters.
	for _, b := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		proteinSet[b] = true
	}
}

// Classify normalizes text and maps it to an Alphabet. Test order is
// significant and first match wins: DNA is checked before RNA, so input over
// {A,C,G,N} only (no T, no U) classifies as DNA even though it is
// RNA-compatible. That precedence is deliberate and must not be reordered.
// Empty input is Unknown.
func Classify(text string) Alphabet {
	s := Normalize(text)
	if s == "" {
		return Unknown
	}
	switch {
	case all(s, &dnaSet):
		return DNA
	case all(s, &rnaSet):
		return RNA
	case all(s, &proteinSet):
		return Protein
	}
	return Unknown
}

func all(s string, set *[256]bool) bool {
	for i := 0; i < len(s); i++ {
		if !set[s[i]] {
			return false
		}
	}
	return true
}
