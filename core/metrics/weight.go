// core/metrics/weight.go
package metrics

import "genalyze-core/seq"

// Monomer masses in Daltons (average isotopic composition), one table per
// alphabet. Nucleotide values are the monophosphate masses; protein values
// are free amino-acid masses. Polymerization releases one water per bond, so
// the chain weight is the monomer sum minus (n−1)·water.
var (
	dnaMass = map[byte]float64{
		'A': 331.2218, 'C': 307.1971, 'G': 347.2212, 'T': 322.2085,
	}
	rnaMass = map[byte]float64{
		'A': 347.2212, 'C': 323.1965, 'G': 363.2206, 'U': 324.1813,
	}
	proteinMass = map[byte]float64{
		'A': 89.0932, 'C': 121.1582, 'D': 133.1027, 'E': 147.1293,
		'F': 165.1891, 'G': 75.0666, 'H': 155.1546, 'I': 131.1729,
		'K': 146.1876, 'L': 131.1729, 'M': 149.2113, 'N': 132.1179,
		'P': 115.1305, 'Q': 146.1445, 'R': 174.2010, 'S': 105.0926,
		'T': 119.1197, 'V': 117.1463, 'W': 204.2252, 'Y': 181.1885,
	}
)

const waterMass = 18.0153

var (
	dnaMeanMass     = mean(dnaMass)
	rnaMeanMass     = mean(rnaMass)
	proteinMeanMass = mean(proteinMass)
)

func mean(tbl map[byte]float64) float64 {
	sum := 0.0
	for _, m := range tbl {
		sum += m
	}
	return sum / float64(len(tbl))
}

// MolecularWeight sums per-monomer masses for the given alphabet and
// subtracts one water per polymerization bond. A length-1 sequence weighs a
// single monomer; empty input and Unknown alphabets weigh 0. Monomers absent
// from the table (e.g. N in nucleotide input) contribute the table's mean
// mass, keeping the function total over classified sequences.
func MolecularWeight(s string, a seq.Alphabet) float64 {
	var tbl map[byte]float64
	var fallback float64
	switch a {
	case seq.DNA:
		tbl, fallback = dnaMass, dnaMeanMass
	case seq.RNA:
		tbl, fallback = rnaMass, rnaMeanMass
	case seq.Protein:
		tbl, fallback = proteinMass, proteinMeanMass
	default:
		return 0
	}
	if len(s) == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(s); i++ {
		m, ok := tbl[s[i]]
		if !ok {
			m = fallback
		}
		total += m
	}
	return total - waterMass*float64(len(s)-1)
}
