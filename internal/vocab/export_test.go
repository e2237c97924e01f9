package vocab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, []entities.VocabEntry{
		{Word: "cat", IPA: "/kæt/", Meaning: `a "small" feline`},
		{Word: "dog"},
	})
	require.NoError(t, err)

	want := "word,ipa,meaning\n" +
		`"cat","/kæt/","a ""small"" feline"` + "\n" +
		`"dog","",""`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []entities.VocabEntry{{Word: "cat", Meaning: "feline"}}))

	want := "[\n  {\n    \"word\": \"cat\",\n    \"ipa\": \"\",\n    \"meaning\": \"feline\"\n  }\n]"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", buf.String())
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "My_first_deck.csv", FileName("My  first\tdeck", "csv"))
	assert.Equal(t, "deck.json", FileName(" deck ", ".json"))
	assert.Equal(t, "vocabulary.csv", FileName("   ", "csv"))
}
