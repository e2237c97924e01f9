package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/vocab"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Vocabulary list and quiz tool",
		Long:          "vocabctl turns loosely formatted word lists into normalized entries and quizzes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newQuizCmd())

	return root
}

// readEntries parses the file at path, or stdin when path is "-".
func readEntries(cmd *cobra.Command, path string) ([]entities.VocabEntry, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return vocab.Parse(string(data)), nil
}
