package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/xwpuz/internal/latest"
)

// NewLatestCmd creates the latest command.
func NewLatestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest [dir]",
		Short: "Report the most recent puzzle already downloaded",
		Long: `Latest looks at the .puz files in a directory (default: the current
directory), reads the date from each file name and reports the most recent.

Examples:
  xwpuz latest
  xwpuz latest ~/puzzles
  xwpuz latest --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLatestCmd,
	}

	cmd.Flags().BoolP("all", "a", false, "List every puzzle found, oldest first")

	return cmd
}

// runLatestCmd executes the latest command.
func runLatestCmd(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if all {
		puzzles, err := latest.Scan(dir)
		if err != nil {
			return err
		}
		if len(puzzles) == 0 {
			return latest.ErrNoPuzzles
		}
		for _, p := range puzzles {
			fmt.Fprintf(out, "%s  %-9s  %s\n", p.Date.Format("2006-01-02"), p.Date.Weekday(), p.Name)
		}
		return nil
	}

	p, err := latest.Latest(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, latest.Message(p.Date))
	return nil
}
