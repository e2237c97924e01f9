// Package entities contains domain entities used across the application.
package entities

// VocabEntry is a single word-meaning record parsed from a vocabulary list.
// IPA holds an optional phonetic or transliteration annotation.
type VocabEntry struct {
	Word    string `json:"word"`    // prompt shown to the learner
	IPA     string `json:"ipa"`     // phonetic annotation, may be empty
	Meaning string `json:"meaning"` // gloss used as the correct answer
}

// Eligible reports whether the entry can be used in a quiz.
func (e VocabEntry) Eligible() bool {
	return e.Word != "" && e.Meaning != ""
}
