package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/vocab-deck-bot/internal/vocab"
)

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a word list and print normalized entries",
		Long:  "Parse a comma or tab separated word list (use - for stdin) and print it as CSV or JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(cmd, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				return vocab.WriteCSV(cmd.OutOrStdout(), entries)
			case "json":
				return vocab.WriteJSON(cmd.OutOrStdout(), entries)
			default:
				return fmt.Errorf("unknown format %q: want csv or json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: csv or json")

	return cmd
}
