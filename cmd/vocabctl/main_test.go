package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

const animals = `word,ipa,meaning
cat,/kæt/,кошка
dog,/dɒɡ/,собака
bird,/bɜːd/,птица
fish,/fɪʃ/,рыба
horse,/hɔːs/,лошадь
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	t.Parallel()

	t.Run("json from stdin", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "cat\tкошка\ndog\tсобака\n", "parse", "-")
		require.NoError(t, err)

		var entries []entities.VocabEntry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		assert.Equal(t, []entities.VocabEntry{
			{Word: "cat", Meaning: "кошка"},
			{Word: "dog", Meaning: "собака"},
		}, entries)
	})

	t.Run("csv from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "animals.csv")
		require.NoError(t, os.WriteFile(path, []byte("cat, /kæt/, кошка"), 0o600))

		out, err := execute(t, "", "parse", path, "--format", "csv")
		require.NoError(t, err)
		assert.Equal(t, "word,ipa,meaning\n\"cat\",\"/kæt/\",\"кошка\"", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "cat", "parse", "-", "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "", "parse", filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestQuizCmd(t *testing.T) {
	t.Parallel()

	t.Run("seed makes output reproducible", func(t *testing.T) {
		t.Parallel()

		first, err := execute(t, animals, "quiz", "-", "--kinds", "mcq,tf,fill", "--count", "4", "--seed", "7")
		require.NoError(t, err)
		second, err := execute(t, animals, "quiz", "-", "--kinds", "mcq,tf,fill", "--count", "4", "--seed", "7")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		var qz entities.Quiz
		require.NoError(t, json.Unmarshal([]byte(first), &qz))
		assert.Len(t, qz, 4)
	})

	t.Run("count is capped by eligible entries", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, animals, "quiz", "-", "--kinds", "fill", "--count", "50")
		require.NoError(t, err)

		var qz entities.Quiz
		require.NoError(t, json.Unmarshal([]byte(out), &qz))
		assert.Len(t, qz, 5)
		for _, q := range qz {
			assert.Equal(t, entities.KindFill, q.Kind())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, animals, "quiz", "-", "--kinds", "essay")
		assert.ErrorIs(t, err, entities.ErrUnknownQuestionKind)
	})

	t.Run("empty kinds", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, animals, "quiz", "-", "--kinds", " , ")
		assert.ErrorContains(t, err, "at least one question kind")
	})
}
