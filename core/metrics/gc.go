// core/metrics/gc.go
package metrics

// GCFraction returns the fraction of bases that are G or C, in [0,1].
// Defined as 0 for empty input.
func GCFraction(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			n++
		}
	}
	return float64(n) / float64(len(s))
}
