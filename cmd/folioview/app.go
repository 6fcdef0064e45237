package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/folioview/folioview-cli/internal/api"
	"github.com/folioview/folioview-cli/internal/config"
	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/models"
	"github.com/folioview/folioview-cli/internal/render"
	"github.com/folioview/folioview-cli/internal/sessions"
	"github.com/folioview/folioview-cli/internal/tokenstore"
	"github.com/getsentry/sentry-go"
	"github.com/google/subcommands"
)

// app bundles the loaded configuration and the API client every subcommand
// acts through.
type app struct {
	config config.Config
	client *api.Client
}

// newApp loads the configuration and wires the token store, session and API
// client together. Every subcommand starts here.
func newApp() (*app, error) {
	ch := config.NewConfigHandler()
	cfg, err := ch.Config()
	if err != nil {
		return nil, fmt.Errorf("loading the configuration failed: %w", err)
	}
	if cfg.DebugMode {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Monitoring.Sentry.Enabled {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              string(cfg.Monitoring.Sentry.Dsn),
			TracesSampleRate: cfg.Monitoring.Sentry.SampleRate,
			Environment:      cfg.Monitoring.Sentry.Environment,
		})
		if err != nil {
			slog.Error("sentry initialization failed", "error", err)
		}
	}
	store, err := buildTokenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("token store initialization failed: %w", err)
	}
	session, err := sessions.NewSession(
		sessions.WithTokenStore(store),
		sessions.WithOnInvalidated(func(reason error) {
			slog.Debug("SESSION", "message", "session invalidated", "reason", reason)
			fmt.Fprintln(os.Stderr, "Your session has expired, run 'folioview login' to sign in again.")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("session initialization failed: %w", err)
	}
	client, err := api.NewClient(api.WithConfig(cfg.API), api.WithSession(session))
	if err != nil {
		return nil, fmt.Errorf("API client initialization failed: %w", err)
	}
	return &app{config: cfg, client: client}, nil
}

func buildTokenStore(cfg config.Config) (tokenstore.TokenStore, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return tokenstore.NewMemoryTokenStore(), nil
	case config.SessionStoreFile:
		return tokenstore.NewFileTokenStore(cfg.Session.TokenFile)
	case config.SessionStoreRedis:
		return tokenstore.NewRedisTokenStore(tokenstore.WithRedisConfig(cfg.Redis))
	default:
		return nil, fmt.Errorf("unrecognized session store type %q", cfg.Session.Store)
	}
}

// fail prints the error and picks the exit status. An expired session is a
// usage problem (log in again), not a failure of the tool.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, fverrors.ErrSessionExpired) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. in a pipe with a broken TERM).
func printMarkdown(markdown string) {
	output, err := render.Terminal(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(output)
}

func parseMarket(value string) (models.Market, error) {
	switch models.Market(value) {
	case models.MarketIsrael:
		return models.MarketIsrael, nil
	case models.MarketWorld:
		return models.MarketWorld, nil
	default:
		return "", fmt.Errorf("unrecognized market %q, expected %q or %q", value, models.MarketIsrael, models.MarketWorld)
	}
}
