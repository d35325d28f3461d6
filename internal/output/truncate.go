// internal/output/truncate.go
package output

// Truncate caps s at n bytes, marking the cut with "...". Sequences and
// translation products are plain ASCII, so byte slicing is safe.
func Truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
