// core/seq/sequence.go
package seq

import "strings"

// Sequence is an immutable classified sequence value. Norm is the uppercased,
// whitespace-stripped form every downstream operation consumes; Raw is kept
// for callers that want to echo the original input.
type Sequence struct {
	ID          string
	Description string
	Raw         string
	Norm        string
	Alphabet    Alphabet
}

// Normalize uppercases text and strips all whitespace. All entry points
// funnel through here so classification, metrics and comparison see the same
// form.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// New builds a Sequence from caller-supplied text.
func New(text string) Sequence {
	n := Normalize(text)
	return Sequence{Raw: text, Norm: n, Alphabet: Classify(n)}
}

// NewRecord builds a Sequence from an already-extracted file record
// (identifier, description, raw sequence).
func NewRecord(id, description, raw string) Sequence {
	s := New(raw)
	s.ID = id
	s.Description = description
	return s
}

// Len is the normalized length.
func (s Sequence) Len() int { return len(s.Norm) }
