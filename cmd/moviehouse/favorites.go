package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/service"
	"github.com/mmcdole/moviehouse/internal/store"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
	"github.com/urfave/cli/v3"
)

func favoritesCommand() *cli.Command {
	return &cli.Command{
		Name:  "favorites",
		Usage: "Manage the favorites list",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print saved favorites",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
				},
				Action: withFavorites(func(_ context.Context, cmd *cli.Command, svc *service.FavoritesService) error {
					favs := svc.Load()
					if cmd.Bool("json") {
						return writeFavoritesJSON(os.Stdout, favs)
					}
					writeFavoritesTable(os.Stdout, favs)
					return nil
				}),
			},
			{
				Name:      "remove",
				Usage:     "Remove a favorite by movie ID",
				ArgsUsage: "<id>",
				Action: withFavorites(func(_ context.Context, cmd *cli.Command, svc *service.FavoritesService) error {
					id, err := strconv.Atoi(cmd.Args().First())
					if err != nil || id <= 0 {
						return fmt.Errorf("invalid movie id %q", cmd.Args().First())
					}
					removed, err := svc.Remove(id)
					if err != nil {
						return err
					}
					if !removed {
						fmt.Printf("Movie %d is not in favorites\n", id)
						return nil
					}
					fmt.Printf("✓ Removed movie %d\n", id)
					return nil
				}),
			},
			{
				Name:  "clear",
				Usage: "Remove all favorites",
				Action: withFavorites(func(_ context.Context, _ *cli.Command, svc *service.FavoritesService) error {
					if err := svc.Clear(); err != nil {
						return err
					}
					fmt.Println("✓ Favorites cleared")
					return nil
				}),
			},
		},
	}
}

type favoritesAction func(ctx context.Context, cmd *cli.Command, svc *service.FavoritesService) error

// withFavorites opens the store for the duration of a favorites subcommand
func withFavorites(fn favoritesAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, logger, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		return fn(ctx, cmd, service.NewFavoritesService(st, logger))
	}
}

func writeFavoritesJSON(w io.Writer, favs domain.Favorites) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(favs)
}

func writeFavoritesTable(w io.Writer, favs domain.Favorites) {
	if len(favs) == 0 {
		fmt.Fprintln(w, "No favorites added")
		return
	}

	rows := make([][]string, 0, len(favs))
	for _, m := range favs {
		year := ""
		if y := m.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		rows = append(rows, []string{strconv.Itoa(m.ID), m.Title, year, m.FormattedRating()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.DimStyle).
		Headers("ID", "TITLE", "YEAR", "RATING").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}
