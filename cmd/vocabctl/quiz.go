package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/quiz"
)

func newQuizCmd() *cobra.Command {
	var (
		kinds string
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Generate a quiz from a word list",
		Long: "Generate a quiz from a word list (use - for stdin) and print it as JSON.\n" +
			"The same --seed always yields the same quiz for the same input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qk, err := entities.ParseQuestionKinds(kinds)
			if err != nil {
				return err
			}
			if len(qk) == 0 {
				return fmt.Errorf("at least one question kind is required")
			}

			entries, err := readEntries(cmd, args[0])
			if err != nil {
				return err
			}

			src := quiz.DefaultSource()
			if cmd.Flags().Changed("seed") {
				src = quiz.NewSeededSource(seed)
			}

			qz := quiz.NewGenerator(src).Generate(entries, qk, count)

			data, err := json.MarshalIndent(qz, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal quiz: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&kinds, "kinds", "k", "mcq", "comma separated question kinds: mcq, tf, fill")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "maximum number of questions")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible quiz")

	return cmd
}
