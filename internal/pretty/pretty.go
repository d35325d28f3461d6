// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"genalyze-core/analysis"
	"genalyze-core/compare"
	"genalyze-core/seq"
)

// Options control the ASCII rendering.
type Options struct {
	// Cap on printed sequence width. If <=0, use default (60).
	MaxWidth int

	// Glyphs for the comparison match track.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "*"
}

// DefaultOptions keeps the standard look.
var DefaultOptions = Options{
	MaxWidth:      60,
	MatchGlyph:    "|",
	MismatchGlyph: "*",
}

const linePrefix = "# "

func (o Options) width() int {
	if o.MaxWidth > 0 {
		return o.MaxWidth
	}
	return DefaultOptions.MaxWidth
}

func (o Options) matchGlyph() string {
	if o.MatchGlyph != "" {
		return o.MatchGlyph
	}
	return DefaultOptions.MatchGlyph
}

func (o Options) mismatchGlyph() string {
	if o.MismatchGlyph != "" {
		return o.MismatchGlyph
	}
	return DefaultOptions.MismatchGlyph
}

func clip(s string, w int) string {
	if len(s) <= w {
		return s
	}
	// Too narrow for a cut marker: hard-truncate instead of slicing negative.
	if w <= 3 {
		return s[:w]
	}
	return s[:w-3] + "..."
}

// RenderReportWithOptions prints a '#'-prefixed summary block for one report.
func RenderReportWithOptions(r analysis.Report, opt Options) string {
	w := opt.width()
	var b strings.Builder

	name := r.ID
	if name == "" {
		name = "(stdin)"
	}
	unit := "nt"
	if r.Alphabet == seq.Protein {
		unit = "aa"
	}
	fmt.Fprintf(&b, "%s%s  %s, %d %s\n", linePrefix, name, r.Alphabet, r.Length, unit)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s%s\n", linePrefix, clip(r.Description, w))
	}
	fmt.Fprintf(&b, "%sseq:     %s\n", linePrefix, clip(r.Sequence, w))

	switch r.Alphabet {
	case seq.DNA:
		fmt.Fprintf(&b, "%srna:     %s\n", linePrefix, clip(r.RNA, w))
		fmt.Fprintf(&b, "%sprotein: %s (stop: %s)\n", linePrefix, clip(r.Protein, w), yesNo(r.Stopped))
		fmt.Fprintf(&b, "%sgc: %.2f%%  weight: %.2f Da\n", linePrefix, r.GCPercent, r.Weight)
	case seq.RNA:
		fmt.Fprintf(&b, "%sdna:     %s\n", linePrefix, clip(r.DNA, w))
		fmt.Fprintf(&b, "%sprotein: %s (stop: %s)\n", linePrefix, clip(r.Protein, w), yesNo(r.Stopped))
		fmt.Fprintf(&b, "%sgc: %.2f%%  weight: %.2f Da\n", linePrefix, r.GCPercent, r.Weight)
	case seq.Protein:
		if r.PIComputable {
			fmt.Fprintf(&b, "%sweight: %.2f Da  pI: %.2f\n", linePrefix, r.Weight, r.PI)
		} else {
			fmt.Fprintf(&b, "%sweight: %.2f Da  pI: not computable\n", linePrefix, r.Weight)
		}
	default:
		fmt.Fprintf(&b, "%s%s\n", linePrefix, r.Error)
	}
	b.WriteString("#\n")
	return b.String()
}

// RenderReport renders with DefaultOptions.
func RenderReport(r analysis.Report) string {
	return RenderReportWithOptions(r, DefaultOptions)
}

// RenderComparisonWithOptions prints the two sequences with a match track
// between them. Mutated columns carry the mismatch glyph; columns past the
// shorter sequence are blank.
func RenderComparisonWithOptions(a, b string, res compare.Result, opt Options) string {
	w := opt.width()
	shown := len(a)
	if len(b) > shown {
		shown = len(b)
	}
	clipped := shown > w
	if clipped {
		shown = w
	}

	mism := make(map[int]struct{}, len(res.Mutations))
	for _, m := range res.Mutations {
		mism[m.Position-1] = struct{}{}
	}

	track := make([]byte, 0, shown)
	for i := 0; i < shown; i++ {
		switch {
		case i >= len(a) || i >= len(b):
			track = append(track, ' ')
		default:
			if _, bad := mism[i]; bad {
				track = append(track, opt.mismatchGlyph()[0])
			} else {
				track = append(track, opt.matchGlyph()[0])
			}
		}
	}

	pad := func(s string) string {
		if len(s) > shown {
			return s[:shown]
		}
		return s
	}
	suffix := ""
	if clipped {
		suffix = " ..."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%sa: %s%s\n", linePrefix, pad(a), suffix)
	fmt.Fprintf(&sb, "%s   %s\n", linePrefix, string(track))
	fmt.Fprintf(&sb, "%sb: %s%s\n", linePrefix, pad(b), suffix)
	fmt.Fprintf(&sb, "%ssimilarity: %.2f%%  mutations: %d\n", linePrefix, res.Similarity, len(res.Mutations))
	for _, m := range res.Mutations {
		fmt.Fprintf(&sb, "%spos %d: %c>%c\n", linePrefix, m.Position, m.From, m.To)
	}
	sb.WriteString("#\n")
	return sb.String()
}

// RenderComparison renders with DefaultOptions.
func RenderComparison(a, b string, res compare.Result) string {
	return RenderComparisonWithOptions(a, b, res, DefaultOptions)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
