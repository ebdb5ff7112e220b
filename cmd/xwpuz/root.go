package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for xwpuz. Run without a
// subcommand, it downloads one puzzle.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xwpuz [date]",
		Short: "Download daily crosswords as Across Lite .puz files",
		Long: `xwpuz fetches a daily crossword from xwordinfo and writes it as an
Across Lite .puz file named after the puzzle date (for example Mar724.puz).

The date may be given as a positional argument or with --date:
  (empty), today     today's puzzle
  mon ... sun        the most recent such weekday, today included
  themeless          the most recent Saturday
  3/7                March 7 of the current year
  3/7/24, 3/7/2024   a full date

If the output file already exists nothing is downloaded.

Examples:
  xwpuz
  xwpuz --date sat
  xwpuz 12/25/2023 -o ~/puzzles`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFetchCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .xwpuz in current or home directory)")

	addFetchFlags(cmd)

	cmd.AddCommand(NewLatestCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
