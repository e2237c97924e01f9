package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

var csvHeader = []string{"word", "ipa", "meaning"}

var whitespaceRun = regexp.MustCompile(`\s+`)

// WriteCSV writes entries as a "word,ipa,meaning" table. Every field is quoted
// and embedded quotes are doubled, so Parse reads the output back.
func WriteCSV(w io.Writer, entries []entities.VocabEntry) error {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, e := range entries {
		lines = append(lines, quote(e.Word)+","+quote(e.IPA)+","+quote(e.Meaning))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteJSON writes entries as an indented JSON array of {word, ipa, meaning} objects.
func WriteJSON(w io.Writer, entries []entities.VocabEntry) error {
	if entries == nil {
		entries = []entities.VocabEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// FileName builds an export file name from a deck title, e.g. "My deck" -> "My_deck.csv".
func FileName(title, ext string) string {
	base := whitespaceRun.ReplaceAllString(strings.TrimSpace(title), "_")
	if base == "" {
		base = "vocabulary"
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
