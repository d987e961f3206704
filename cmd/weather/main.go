package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/avelhart/weather-cli/internal/cli"
	"github.com/avelhart/weather-cli/internal/config"
	"github.com/avelhart/weather-cli/internal/gateway/openweather"
)

var version = "dev"

const (
	apiKeyEnv        = "OPENWEATHER_API_KEY"
	defaultMenuPause = time.Second
)

func main() {
	store, err := config.NewStore()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	apiKey, units := resolveCredentials(store)
	deps := cli.Dependencies{
		Weather: openweather.NewClient(
			openweather.WithAPIKey(apiKey),
			openweather.WithUnits(units),
		),
		Config:    store,
		Input:     os.Stdin,
		MenuPause: defaultMenuPause,
		Units:     units,
		Version:   version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// resolveCredentials prefers the environment over the config file for the
// API key; units only ever come from the config file.
func resolveCredentials(store *config.Store) (string, string) {
	apiKey := strings.TrimSpace(os.Getenv(apiKeyEnv))
	units := ""
	if cfg, err := store.Load(context.Background()); err == nil {
		if apiKey == "" {
			apiKey = strings.TrimSpace(cfg.APIKey)
		}
		units = strings.TrimSpace(cfg.Units)
	}
	return apiKey, units
}
