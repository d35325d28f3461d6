// core/codon/table.go
// Standard genetic code keyed by RNA codon. The table is initialized once at
// process start and never mutated; concurrent reads are unrestricted.
package codon

const (
	// Stop marks a translation-stop codon.
	Stop = '*'
	// Placeholder stands in for codons absent from the table
	// (e.g. triplets containing N).
	Placeholder = 'X'
)

var table = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

func init() {
	// An incomplete code table is a programming error, not bad input.
	if len(table) != 64 {
		panic("codon: standard genetic code table must hold 64 codons")
	}
}

// Lookup returns the amino acid for a 3-character RNA codon, Stop for a stop
// codon, or Placeholder when the codon is not in the table.
func Lookup(c string) byte {
	if aa, ok := table[c]; ok {
		return aa
	}
	return Placeholder
}
