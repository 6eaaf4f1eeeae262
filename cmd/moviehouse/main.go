package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/moviehouse/internal/browser"
	"github.com/mmcdole/moviehouse/internal/catalog/tmdb"
	"github.com/mmcdole/moviehouse/internal/config"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/log"
	"github.com/mmcdole/moviehouse/internal/opener"
	"github.com/mmcdole/moviehouse/internal/service"
	"github.com/mmcdole/moviehouse/internal/store"
	"github.com/mmcdole/moviehouse/internal/tui"
	"github.com/urfave/cli/v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "moviehouse",
		Usage:   "Browse the movie catalog and keep a favorites list",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			setupCommand(),
			favoritesCommand(),
		},
	}
}

// loadEnv loads configuration and installs the default logger
func loadEnv(cmd *cli.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	logger.Info("starting moviehouse", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(ctx, cfg, cmd.String("config"), logger)
	}

	st, err := store.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	client := tmdb.NewClient(tmdb.Config{
		BaseURL:           cfg.Catalog.BaseURL,
		APIKey:            cfg.Catalog.APIKey,
		Timeout:           cfg.Catalog.Timeout,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	}, logger)

	// Create services
	catalogSvc := service.NewCatalogService(client, st, cfg.Catalog.Page, logger)
	favoritesSvc := service.NewFavoritesService(st, logger)

	criteria := domain.DefaultCriteria()
	criteria.SortKey = domain.ParseSortKey(cfg.UI.DefaultSort)
	state := browser.New(criteria, favoritesSvc.Load())
	state.SetOverviewLimit(cfg.UI.OverviewLimit)

	model := tui.NewModel(
		state,
		catalogSvc,
		favoritesSvc,
		opener.New(cfg.Opener.Command, cfg.Opener.Args, logger),
		tui.Options{
			ImageBaseURL:   cfg.Catalog.ImageBaseURL,
			PosterSize:     cfg.Catalog.PosterSize,
			ToastDuration:  cfg.UI.ToastDuration,
			RequestTimeout: cfg.Catalog.Timeout,
		},
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
