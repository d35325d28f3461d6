// core/metrics/pi.go
// Isoelectric point by charge-balance bisection against the EMBOSS pKa set.
// Net charge at a given pH is the sum of Henderson-Hasselbalch titration
// terms: +1/(1+10^(pH−pKa)) for basic groups, −1/(1+10^(pKa−pH)) for acidic
// ones, over the titratable side chains plus both termini.
package metrics

import (
	"errors"
	"math"
)

// ErrNotComputable reports that a sequence has no isoelectric point under
// this model. It is an expected, reportable outcome, never a program fault.
var ErrNotComputable = errors.New("metrics: isoelectric point not computable")

// EMBOSS pKa values.
const (
	pkaNTerm = 8.6
	pkaCTerm = 3.6
	pkaCys   = 8.5
	pkaAsp   = 3.9
	pkaGlu   = 4.1
	pkaHis   = 6.5
	pkaLys   = 10.8
	pkaArg   = 12.5
	pkaTyr   = 10.1
)

// Bisection bounds: stop when |charge| < piTolerance or after piMaxIter
// halvings of [0,14].
const (
	piTolerance = 1e-3
	piMaxIter   = 50
)

type residueCounts struct {
	asp, glu, cys, tyr, his, lys, arg int
}

func countTitratable(protein string) (residueCounts, int) {
	var c residueCounts
	for i := 0; i < len(protein); i++ {
		switch protein[i] {
		case 'D':
			c.asp++
		case 'E':
			c.glu++
		case 'C':
			c.cys++
		case 'Y':
			c.tyr++
		case 'H':
			c.his++
		case 'K':
			c.lys++
		case 'R':
			c.arg++
		}
	}
	return c, c.asp + c.glu + c.cys + c.tyr + c.his + c.lys + c.arg
}

func positive(pH, pKa float64) float64 { return 1.0 / (1.0 + math.Pow(10, pH-pKa)) }
func negative(pH, pKa float64) float64 { return -1.0 / (1.0 + math.Pow(10, pKa-pH)) }

func netCharge(c residueCounts, pH float64) float64 {
	q := positive(pH, pkaNTerm) + negative(pH, pkaCTerm)
	q += float64(c.his) * positive(pH, pkaHis)
	q += float64(c.lys) * positive(pH, pkaLys)
	q += float64(c.arg) * positive(pH, pkaArg)
	q += float64(c.asp) * negative(pH, pkaAsp)
	q += float64(c.glu) * negative(pH, pkaGlu)
	q += float64(c.cys) * negative(pH, pkaCys)
	q += float64(c.tyr) * negative(pH, pkaTyr)
	return q
}

// Isoelectric finds the pH in [0,14] at which the protein's net charge
// crosses zero. A sequence with no titratable side chains (the termini alone
// do not count) yields ErrNotComputable, as does a charge curve that fails to
// bracket a zero-crossing. Callers surface that as data, not as a fault.
func Isoelectric(protein string) (float64, error) {
	if len(protein) == 0 {
		return 0, ErrNotComputable
	}
	counts, titratable := countTitratable(protein)
	if titratable == 0 {
		return 0, ErrNotComputable
	}

	lo, hi := 0.0, 14.0
	if netCharge(counts, lo) < 0 || netCharge(counts, hi) > 0 {
		return 0, ErrNotComputable
	}

	pH := (lo + hi) / 2
	for i := 0; i < piMaxIter; i++ {
		pH = (lo + hi) / 2
		q := netCharge(counts, pH)
		if math.Abs(q) < piTolerance {
			break
		}
		if q > 0 {
			lo = pH
		} else {
			hi = pH
		}
	}
	return pH, nil
}
