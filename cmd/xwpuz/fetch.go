package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/xwpuz/internal/config"
	"github.com/nao1215/xwpuz/internal/database"
	"github.com/nao1215/xwpuz/internal/date"
	xlog "github.com/nao1215/xwpuz/internal/log"
	"github.com/nao1215/xwpuz/internal/pipeline"
	"github.com/nao1215/xwpuz/internal/xwordinfo"
)

// errDateTwice is returned when a date is given both as flag and argument.
var errDateTwice = errors.New("date given both as argument and --date")

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "d", "",
		"Puzzle date: today, a weekday, themeless, M/D, M/D/YY or M/D/YYYY")
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory to write the puzzle file to")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for the download")
	cmd.Flags().Bool("no-history", false,
		"Do not record the download in the history database")
}

// buildFetchConfig creates the Config for a download from all layers.
func buildFetchConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	cfg.Date, err = cmd.Flags().GetString("date")
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		if cmd.Flags().Changed("date") {
			return nil, errDateTwice
		}
		cfg.Date = args[0]
	}

	if cmd.Flags().Changed("output-dir") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if noHistory {
		cfg.SaveHistory = false
	}

	return cfg, nil
}

// runFetchCmd downloads one puzzle.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildFetchConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := xlog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job, err := runFetch(ctx, cfg, date.NewResolver(), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if job.Skipped {
		logger.Info("puzzle already downloaded", "file", job.Path)
	}
	fmt.Fprintln(out, job.Filename())
	return nil
}

// runFetch resolves the date and runs the download pipeline.
func runFetch(ctx context.Context, cfg *config.Config, resolver *date.Resolver, logger *slog.Logger) (*pipeline.Job, error) {
	d, err := resolver.Resolve(cfg.Date)
	if err != nil {
		return nil, err
	}
	logger.Debug("date resolved", "input", cfg.Date, "date", d.String(), "weekday", d.Weekday().String())

	client, err := xwordinfo.NewClient(cfg.APIURL,
		xwordinfo.WithTimeout(cfg.Timeout),
		xwordinfo.WithUserAgent(cfg.UserAgent),
		xwordinfo.WithReferer(cfg.Referer),
		xwordinfo.WithHeaders(cfg.Headers),
		xwordinfo.WithMaxBodySize(cfg.MaxBodySize),
		xwordinfo.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	var recorder pipeline.Recorder
	if cfg.SaveHistory {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			// The puzzle is still worth downloading without history.
			logger.Warn("history disabled", "dir", cfg.DBDir, "error", err)
		} else {
			defer db.Close()
			recorder = db
		}
	}

	job := pipeline.NewJob(d, cfg.OutputDir)
	if err := pipeline.NewDownload(client, recorder, pipeline.WithLogger(logger)).Execute(ctx, job); err != nil {
		return job, err
	}
	return job, nil
}
