package entities

import (
	"time"

	"github.com/google/uuid"
)

// TargetLanguage is the language the deck words belong to.
type TargetLanguage string

const (
	LanguageEnglish TargetLanguage = "en"
	LanguageChinese TargetLanguage = "zh"
)

// IPAStyle selects the kind of phonetic annotation requested during enrichment.
type IPAStyle string

const (
	IPAStyleUS     IPAStyle = "us"
	IPAStyleUK     IPAStyle = "uk"
	IPAStylePinyin IPAStyle = "pinyin"
)

// Deck is a titled vocabulary list owned by a user.
type Deck struct {
	ID             uuid.UUID
	UserID         int64
	Title          string `validate:"required,min=1,max=64"`
	Entries        []VocabEntry
	TargetLanguage TargetLanguage `validate:"oneof=en zh"`
	IPAStyle       IPAStyle       `validate:"oneof=us uk pinyin"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDeck creates a deck with a fresh ID and default language settings.
func NewDeck(userID int64, title string, entries []VocabEntry) *Deck {
	now := time.Now()
	return &Deck{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Entries:        entries,
		TargetLanguage: LanguageEnglish,
		IPAStyle:       IPAStyleUS,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EligibleCount returns the number of entries that can appear in a quiz.
func (d *Deck) EligibleCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.Eligible() {
			n++
		}
	}
	return n
}

// Words returns the words of the deck in order.
func (d *Deck) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		words = append(words, e.Word)
	}
	return words
}
