// core/fasta/genbank.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseGenBank reads flat-file GenBank records from r. Only the fields the
// analysis core consumes are extracted: LOCUS name, DEFINITION text, and the
// ORIGIN sequence block (digits and spaces stripped). Records end at "//".
func ParseGenBank(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		recs     []Record
		cur      Record
		seq      strings.Builder
		inOrigin bool
		started  bool
	)

	flush := func() {
		if !started {
			return
		}
		cur.Seq = seq.String()
		recs = append(recs, cur)
		cur = Record{}
		seq.Reset()
		inOrigin = false
		started = false
	}

	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "LOCUS"):
			flush()
			started = true
			fields := strings.Fields(line)
			if len(fields) > 1 {
				cur.ID = fields[1]
			}
		case strings.HasPrefix(line, "DEFINITION"):
			cur.Description = strings.TrimSuffix(strings.TrimSpace(line[len("DEFINITION"):]), ".")
		case strings.HasPrefix(line, "ORIGIN"):
			inOrigin = true
		case strings.HasPrefix(line, "//"):
			flush()
		case inOrigin:
			for i := 0; i < len(line); i++ {
				c := line[i]
				if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
					seq.WriteByte(c)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("genbank scan: %w", err)
	}
	flush()
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no LOCUS record found", ErrUnsupportedFormat)
	}
	return recs, nil
}
