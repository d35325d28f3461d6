// core/seq/seq_test.go
package seq

import "testing"

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		in   string
		want Alphabet
	}{
		{"ATCG", DNA},
		{"AUGC", RNA},
		{"MKV", Protein},
		{"", Unknown},
		{"1234", Unknown},
		{"ATCGB", Unknown},
		// No T and no U: DNA wins by test order even though the input is
		// RNA-compatible.
		{"ACGN", DNA},
		{"ACGGGCA", DNA},
		// All-glycine reads as a G homopolymer first.
		{"GGGG", DNA},
		// U forces RNA.
		{"ACGU", RNA},
		// T in an otherwise protein-looking string is still DNA-compatible
		// only if every letter is; here L is not.
		{"ATL", Protein},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestClassifyNormalizes(t *testing.T) {
	if got := Classify(" at cg\n"); got != DNA {
		t.Errorf("Classify with whitespace/lowercase = %s, want DNA", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"atcg", "ATCG"},
		{" A T\tC\nG ", "ATCG"},
		{"", ""},
		{"AuG c", "AUGC"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewSequence(t *testing.T) {
	s := New(" atcg ")
	if s.Raw != " atcg " {
		t.Errorf("Raw = %q, want original text", s.Raw)
	}
	if s.Norm != "ATCG" {
		t.Errorf("Norm = %q, want ATCG", s.Norm)
	}
	if s.Alphabet != DNA {
		t.Errorf("Alphabet = %s, want DNA", s.Alphabet)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestNewRecord(t *testing.T) {
	s := NewRecord("seq1", "test record", "augc")
	if s.ID != "seq1" || s.Description != "test record" {
		t.Errorf("record metadata not carried: %+v", s)
	}
	if s.Alphabet != RNA {
		t.Errorf("Alphabet = %s, want RNA", s.Alphabet)
	}
}
