package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/path-of-all-things/app"
	"github.com/lixenwraith/path-of-all-things/audio"
	"github.com/lixenwraith/path-of-all-things/config"
	"github.com/lixenwraith/path-of-all-things/content"
	"github.com/lixenwraith/path-of-all-things/deck"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/particle"
	"github.com/lixenwraith/path-of-all-things/scores"
	"github.com/lixenwraith/path-of-all-things/store"
)

type playOptions struct {
	seed    int64
	content string
	noMusic bool
}

// NewPlayCommand creates the command that runs the game in the terminal
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}
			if opts.content != "" {
				cfg.ContentPath = opts.content
			}
			return runPlay(cmd.Context(), cfg, opts.noMusic)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed, 0 seeds from the clock")
	cmd.Flags().StringVar(&opts.content, "content", "", "YAML, JSON or TOML level catalog")
	cmd.Flags().BoolVar(&opts.noMusic, "no-music", false, "start with music muted")
	return cmd
}

func runPlay(ctx context.Context, cfg config.Config, noMusic bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		return err
	}

	st := openStore(cfg.Store)
	defer st.Close()
	board := scores.NewBoard(st)

	clock := engine.SystemClock{}
	sound := audio.NewSoundManager(cfg.Audio, clock)
	if err := sound.Init(); err != nil {
		slog.Warn("audio unavailable, continuing silently", "err", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	particles := particle.DefaultConfig()
	if cfg.Particles.Count > 0 {
		particles.Count = cfg.Particles.Count
	}

	slog.Info("session starting", "levels", len(catalog.Levels), "events", catalog.EventCount(), "seed", cfg.Seed)
	return app.New(ctx, screen, app.Options{
		Catalog:   catalog,
		Rules:     cfg.Rules,
		Rand:      deck.NewRand(cfg.Seed),
		Sound:     sound,
		Board:     board,
		Images:    content.NewResolver(cfg.ImageDir),
		Clock:     clock,
		Particles: particles,
		MuteMusic: noMusic,
	}).Run()
}

// openStore opens the configured backend, falling back to memory so a broken store never blocks play
func openStore(cfg config.StoreConfig) store.Store {
	st, err := store.Open(cfg.Backend, cfg.Path)
	if err != nil {
		slog.Warn("store unavailable, scores will not persist", "backend", cfg.Backend, "path", cfg.Path, "err", err)
		return store.NewMemory()
	}
	return st
}

// loadCatalog reads path, or the built-in levels when path is empty, and validates it
func loadCatalog(path string) (*content.Catalog, error) {
	var (
		catalog *content.Catalog
		err     error
	)
	if path == "" {
		catalog, err = content.Default()
	} else {
		catalog, err = content.Load(path)
	}
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return catalog, nil
}
