package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/xwpuz/internal/database"
	"github.com/nao1215/xwpuz/internal/report"
)

// defaultHistoryLimit is how many records history shows by default.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List downloaded puzzles",
		Long: `History lists the puzzles recorded in the history database, most recently
saved first.

Examples:
  xwpuz history
  xwpuz history -n 5
  xwpuz history --markdown > history.md`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Maximum number of records (0 for all)")
	cmd.Flags().BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	out := cmd.OutOrStdout()
	w := report.NewWriter(reportFormat(cfg.JSONReport, cfg.MarkdownReport), out)

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if errors.Is(err, database.ErrNotFound) {
		// Nothing has been downloaded yet.
		_, err = w.WriteHistory(nil)
		return err
	}
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.ListRecords(cmd.Context(), limit)
	if err != nil {
		return err
	}
	_, err = w.WriteHistory(records)
	return err
}

func reportFormat(jsonOut, markdownOut bool) report.Format {
	switch {
	case jsonOut:
		return report.FormatJSON
	case markdownOut:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}
