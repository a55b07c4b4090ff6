// v0
// internal/idf/scanner.go
package idf

import (
	"bufio"
	"strings"
)

// Record is a single comma-delimited object declaration from an IDF-like
// document. Fields includes the kind tag at index 0; all fields are trimmed.
type Record struct {
	Kind   string // lower-cased first field
	Fields []string
}

// Field returns the trimmed field at index i, or "" when out of range.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Scanner walks an IDF-like document one line at a time and yields object
// records. It strips `!` comments, trailing semicolons and surrounding
// whitespace, and skips lines that do not look like records. The walk is
// incremental so arbitrarily large documents cost one pass and no extra
// materialization.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner builds a scanner over the raw document text.
func NewScanner(raw string) *Scanner {
	s := bufio.NewScanner(strings.NewReader(raw))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{s: s}
}

// Next returns the next record, or ok=false when the document is exhausted.
func (sc *Scanner) Next() (Record, bool) {
	for sc.s.Scan() {
		line := sc.s.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		line = strings.TrimSuffix(line, ";")
		line = strings.TrimSuffix(line, ",")
		if line == "" || !strings.Contains(line, ",") {
			continue
		}
		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			fields = append(fields, strings.TrimSpace(p))
		}
		kind := strings.ToLower(fields[0])
		if kind == "" {
			continue
		}
		return Record{Kind: kind, Fields: fields}, true
	}
	return Record{}, false
}
