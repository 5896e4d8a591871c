package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/path-of-all-things/chrono"
	"github.com/lixenwraith/path-of-all-things/scores"
	"github.com/lixenwraith/path-of-all-things/store"
)

// NewLevelsCommand lists the levels of the configured catalog
func NewLevelsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels and their event counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.load()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg.ContentPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, l := range catalog.Levels {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d events\n", i+1, l.Name, l.Subtitle, len(l.Events))
			}
			return w.Flush()
		},
	}
}

// NewFormatCommand prints years the way cards display them
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <year>...",
		Short: "Format years for display, negative years are in the past",
		Args:  cobra.MinimumNArgs(1),

		// Negative years would otherwise parse as shorthand flags
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if arg == "--" {
					continue
				}
				if arg == "-h" || arg == "--help" {
					return cmd.Help()
				}
				year, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("year %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), chrono.Format(year))
			}
			return nil
		},
	}
}

// NewScoresCommand prints the high score and recent runs
func NewScoresCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score and recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.load()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			board := scores.NewBoard(st)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "High score: %d\n", board.HighScore(ctx))

			runs := board.Recent(ctx, limit)
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d points\t%d levels\t%s\n",
					humanize.Time(r.EndedAt), r.Outcome, r.Score, r.LevelsCleared,
					humanize.RelTime(r.StartedAt, r.EndedAt, "long", "long"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to show")
	return cmd
}

// NewValidateCommand checks a catalog file, or the built-in levels without an argument
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a level catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := rootOpts.load()
				if err != nil {
					return err
				}
				path = cfg.ContentPath
			}

			catalog, err := loadCatalog(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d levels, %d events\n", len(catalog.Levels), catalog.EventCount())
			return nil
		},
	}
}
