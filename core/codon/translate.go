// core/codon/translate.go
package codon

import "strings"

// Transcribe converts DNA to RNA by T→U substitution. Length-preserving,
// character for character.
func Transcribe(dna string) string {
	out := []byte(dna)
	for i := range out {
		if out[i] == 'T' {
			out[i] = 'U'
		}
	}
	return string(out)
}

// BackTranscribe is the inverse substitution, U→T.
func BackTranscribe(rna string) string {
	out := []byte(rna)
	for i := range out {
		if out[i] == 'U' {
			out[i] = 'T'
		}
	}
	return string(out)
}

// Translate reads rna in consecutive non-overlapping triplets from offset 0.
// Translation halts at the first in-frame stop codon, which is excluded from
// the output; a trailing partial codon is discarded silently. Codons missing
// from the table become Placeholder rather than an error.
func Translate(rna string) (protein string, stopped bool) {
	var b strings.Builder
	b.Grow(len(rna) / 3)
	for i := 0; i+3 <= len(rna); i += 3 {
		aa := Lookup(rna[i : i+3])
		if aa == Stop {
			return b.String(), true
		}
		b.WriteByte(aa)
	}
	return b.String(), false
}

// TranslateDNA transcribes dna to RNA and translates the result.
func TranslateDNA(dna string) (string, bool) {
	return Translate(Transcribe(dna))
}
