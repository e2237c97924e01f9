// Package vocab converts loosely structured tabular text into vocabulary entries
// and writes entries back out as CSV or JSON.
package vocab

import (
	"strings"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// Parse converts raw delimited text into vocabulary entries.
//
// The first non-empty line decides the delimiter: tab if it contains one, comma otherwise.
// A first row that looks like a "word,ipa,meaning" header is dropped. Rows are mapped by
// column count:
//   - 1 field: word
//   - 2 fields: word, meaning
//   - 3+ fields: word, ipa, meaning (remaining fields joined with a space)
//
// Rows without a word are skipped. Parse never fails; malformed rows degrade to partial entries.
func Parse(text string) []entities.VocabEntry {
	lines := splitLines(text)
	if len(lines) == 0 {
		return []entities.VocabEntry{}
	}

	delim := ","
	if strings.Contains(lines[0], "\t") {
		delim = "\t"
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitFields(line, delim))
	}

	if isHeader(rows[0]) {
		rows = rows[1:]
	}

	entries := make([]entities.VocabEntry, 0, len(rows))
	for _, cols := range rows {
		e := mapColumns(cols)
		if e.Word == "" {
			continue
		}
		entries = append(entries, e)
	}

	return entries
}

// IsWordOnly reports whether entries carry words without any annotation or meaning,
// which is what a single-column list parses into.
func IsWordOnly(entries []entities.VocabEntry) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if e.IPA != "" || e.Meaning != "" {
			return false
		}
	}
	return true
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		// TrimSpace also drops the \r of \r\n line endings.
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func splitFields(line, delim string) []string {
	fields := strings.Split(line, delim)
	for i, f := range fields {
		fields[i] = unquote(strings.TrimSpace(f))
	}
	return fields
}

// unquote strips one outer pair of double quotes. Inner quotes are left as is.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func isHeader(cols []string) bool {
	h := strings.ToLower(strings.Join(cols, ","))
	return strings.Contains(h, "word") &&
		(strings.Contains(h, "meaning") || strings.Contains(h, "ipa"))
}

func mapColumns(cols []string) entities.VocabEntry {
	switch len(cols) {
	case 0:
		return entities.VocabEntry{}
	case 1:
		return entities.VocabEntry{Word: cols[0]}
	case 2:
		return entities.VocabEntry{Word: cols[0], Meaning: cols[1]}
	default:
		return entities.VocabEntry{
			Word:    cols[0],
			IPA:     cols[1],
			Meaning: strings.Join(cols[2:], " "),
		}
	}
}
