// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed sequence: an (identifier, description, raw sequence)
// triple as handed to the analysis core.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// ErrUnsupportedFormat reports a file that is neither FASTA nor GenBank.
var ErrUnsupportedFormat = errors.New("fasta: unsupported sequence file format")

// Parse reads all FASTA records from r. A stream that starts directly with
// sequence data (no '>' header) yields a single record with an empty ID.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs    []Record
		cur     Record
		seq     = make([]byte, 0, 1<<16)
		started bool
	)

	flush := func() {
		if !started && len(seq) == 0 {
			return
		}
		cur.Seq = string(seq)
		recs = append(recs, cur)
		cur = Record{}
		seq = seq[:0]
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started || len(seq) > 0 {
				flush()
			}
			cur.ID, cur.Description = parseHeader(line[1:])
			started = true
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	h := strings.TrimSpace(string(hdr))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		return h[:i], strings.TrimSpace(h[i+1:])
	}
	return h, ""
}

// ParseFile parses FASTA or GenBank content. formatHint may be a format name
// ("fasta", "genbank") or a filename whose extension selects the format;
// empty means sniff the stream ('>' opens FASTA, a LOCUS line opens
// GenBank). Anything else is ErrUnsupportedFormat.
func ParseFile(r io.Reader, formatHint string) ([]Record, error) {
	switch normalizeHint(formatHint) {
	case "fasta":
		return Parse(r)
	case "genbank":
		return ParseGenBank(r)
	case "":
		br := bufio.NewReader(r)
		head, err := br.Peek(5)
		if err != nil && len(head) == 0 {
			return nil, fmt.Errorf("fasta: %w", err)
		}
		if len(head) > 0 && head[0] == '>' {
			return Parse(br)
		}
		if bytes.HasPrefix(head, []byte("LOCUS")) {
			return ParseGenBank(br)
		}
		return nil, ErrUnsupportedFormat
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatHint)
	}
}

func normalizeHint(hint string) string {
	h := strings.ToLower(strings.TrimSpace(hint))
	switch h {
	case "fasta", "genbank", "":
		return h
	case "gb", "gbk":
		return "genbank"
	}
	// Treat the hint as a filename.
	switch {
	case strings.HasSuffix(h, ".fasta"), strings.HasSuffix(h, ".fa"), strings.HasSuffix(h, ".fna"):
		return "fasta"
	case strings.HasSuffix(h, ".gb"), strings.HasSuffix(h, ".gbk"), strings.HasSuffix(h, ".genbank"):
		return "genbank"
	}
	return h
}
