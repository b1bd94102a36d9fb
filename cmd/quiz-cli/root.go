package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"quiz-runner/internal/cli"
	"quiz-runner/internal/history"
	"quiz-runner/internal/loader"
	"quiz-runner/internal/opentdb"
)

const (
	historyEnv = "QUIZ_HISTORY_DB"
	seedEnv    = "QUIZ_SEED"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz-cli <source>",
		Short: "Run a multiple-choice quiz in the terminal",
		Long: "quiz-cli asks every question of a quiz in random order and keeps score.\n\n" +
			"<source> is a JSON or YAML question file, or opentdb[:amount] to fetch from Open Trivia DB.\n" +
			"A file literally named history or opentdb must be given with a path, e.g. ./history or ./opentdb.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runQuiz,
	}

	cmd.Flags().Uint64("seed", 0, "seed for a reproducible question and answer order (overrides "+seedEnv+")")
	cmd.Flags().Bool("no-shuffle", false, "keep questions and answers in source order")
	cmd.Flags().Int("amount", 10, "number of questions to fetch for opentdb sources")
	cmd.Flags().Duration("timeout", 10*time.Second, "HTTP timeout for remote sources")
	cmd.PersistentFlags().String("history", "", "SQLite file for session history (overrides "+historyEnv+"; empty disables)")

	cmd.AddCommand(newHistoryCmd())
	return cmd
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "quiz-cli: ", 0)

	amount, _ := cmd.Flags().GetInt("amount")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	deps := cli.Dependencies{
		Loader: loader.New(
			loader.WithFetcher(opentdb.NewClient(&http.Client{Timeout: timeout})),
			loader.WithDefaultAmount(amount),
		),
		Logger: logger,
	}

	if path := resolveHistoryPath(cmd); path != "" {
		store, err := history.NewSQLiteStore(path)
		if err != nil {
			logger.Printf("history disabled: open %s: %v", path, err)
		} else {
			defer store.Close()
			deps.History = store
		}
	}

	return cli.Run(cmd.Context(), cfg, deps, cmd.InOrStdin(), cmd.OutOrStdout())
}

// resolveConfig reads flags with env fallbacks. A flag set on the command
// line always wins over the environment.
func resolveConfig(cmd *cobra.Command, source string) (cli.Config, error) {
	noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
	cfg := cli.Config{
		Source:  source,
		Shuffle: !noShuffle,
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		cfg.SeedSet = true
		return cfg, nil
	}

	if raw := os.Getenv(seedEnv); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return cli.Config{}, &envError{name: seedEnv, value: raw, err: err}
		}
		cfg.Seed = seed
		cfg.SeedSet = true
	}
	return cfg, nil
}

func resolveHistoryPath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("history") {
		path, _ := cmd.Flags().GetString("history")
		return path
	}
	return os.Getenv(historyEnv)
}

type envError struct {
	name  string
	value string
	err   error
}

func (e *envError) Error() string {
	return "invalid " + e.name + "=" + strconv.Quote(e.value) + ": " + e.err.Error()
}

func (e *envError) Unwrap() error { return e.err }
