package main

import (
	"errors"

	"github.com/spf13/cobra"

	"quiz-runner/internal/cli"
	"quiz-runner/internal/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [source]",
		Short: "Show recorded quiz sessions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveHistoryPath(cmd)
			if path == "" {
				return errors.New("no history database: set --history or " + historyEnv)
			}

			store, err := history.NewSQLiteStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return cli.PrintHistory(cmd.Context(), store, source, limit, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Int("limit", 10, "maximum number of sessions to list")
	return cmd
}
