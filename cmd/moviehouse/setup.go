package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/moviehouse/internal/catalog/tmdb"
	"github.com/mmcdole/moviehouse/internal/config"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func setupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Configure the catalog API key",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-verify",
				Usage: "Save the key without checking it against the catalog",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if cmd.Bool("skip-verify") {
				key, err := promptAPIKey()
				if err != nil {
					return err
				}
				return saveAPIKey(cfg, cmd.String("config"), key)
			}
			return runSetupFlow(ctx, cfg, cmd.String("config"), logger)
		},
	}
}

// runSetupFlow prompts for an API key until the catalog accepts one, then saves it
func runSetupFlow(ctx context.Context, cfg *config.Config, configFile string, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to MovieHouse!")
	fmt.Println()
	fmt.Println("An API key for themoviedb.org is required.")
	fmt.Println()

	for {
		key, err := promptAPIKey()
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		err = verifyWithSpinner(ctx, cfg, key, logger)
		if errors.Is(err, domain.ErrAuthFailed) {
			fmt.Println("✗ The catalog rejected this API key. Please try again.")
			fmt.Println()
			continue
		}
		if err != nil {
			return fmt.Errorf("could not reach the catalog: %w", err)
		}

		fmt.Println("✓ API key accepted")
		break
	}

	key := cfg.Catalog.APIKey
	if err := saveAPIKey(cfg, configFile, key); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Run moviehouse again to start the application.")
	return nil
}

// promptAPIKey reads the key without echo when stdin is a terminal
func promptAPIKey() (string, error) {
	fmt.Print("Enter your TMDB API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		keyBytes, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func saveAPIKey(cfg *config.Config, configFile, key string) error {
	cfg.Catalog.APIKey = key
	if err := config.SaveConfig(cfg, configFile); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println("✓ Configuration saved!")
	return nil
}

// verifyWithSpinner checks the key by fetching the genre list. On success
// the key is stored in cfg.
func verifyWithSpinner(ctx context.Context, cfg *config.Config, key string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := tmdb.NewClient(tmdb.Config{
		BaseURL: cfg.Catalog.BaseURL,
		APIKey:  key,
		Timeout: cfg.Catalog.Timeout,
	}, logger)

	resultCh := make(chan error, 1)
	go func() {
		_, err := client.Genres(ctx)
		resultCh <- err
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame])

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err == nil {
				cfg.Catalog.APIKey = key
			}
			return err
		case <-ticker.C:
			frame = (frame + 1) % len(styles.SpinnerFrames)
			fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame])
		}
	}
}
