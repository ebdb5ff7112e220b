package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/xwpuz/internal/puz"
	"github.com/nao1215/xwpuz/internal/report"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.puz>",
		Short: "Show what a .puz file contains",
		Long: `Info decodes a .puz file, verifies its checksums and prints its title,
author, copyright, size and clue count.

Examples:
  xwpuz info Mar724.puz
  xwpuz info --clues Mar724.puz
  xwpuz info --json Mar724.puz`,
		Args: cobra.ExactArgs(1),
		RunE: runInfoCmd,
	}

	cmd.Flags().Bool("clues", false, "Also print every clue")
	cmd.Flags().BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runInfoCmd executes the info command.
func runInfoCmd(cmd *cobra.Command, args []string) error {
	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOut, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOut && markdownOut {
		return errors.New("--json and --markdown cannot be used together")
	}
	clues, err := cmd.Flags().GetBool("clues")
	if err != nil {
		return err
	}

	p, err := puz.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	info := report.NewPuzzleInfo(args[0], p)

	out := cmd.OutOrStdout()
	var w report.Writer
	if format := reportFormat(jsonOut, markdownOut); format == report.FormatText {
		w = report.NewSimpleWriter(out, report.WithClues(clues))
	} else {
		w = report.NewWriter(format, out)
	}
	_, err = w.WritePuzzle(info)
	return err
}
